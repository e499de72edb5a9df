package pwm

import (
	"errors"

	"l0pwm/hal/rcc"
)

var (
	ErrPinNotAttached = errors.New("pwm: pin not attached to this timer")
	ErrPinAttached    = errors.New("pwm: pin already attached")
	ErrChannelInUse   = errors.New("pwm: channel already attached")
	ErrZeroPeriod     = errors.New("pwm: zero period")
)

// dutyOutput is the runtime surface of an assigned channel.
type dutyOutput interface {
	Enable()
	Disable()
	GetDuty() uint16
	SetDuty(uint16)
	GetMaxDuty() uint16
}

// Group presents the assigned channels of one timer through the
// channel-number PWM surface used by tinygo.org/x/drivers (servo, tone).
// Pins are looked up by key K, normally machine.Pin.
type Group[I Instance, K comparable] struct {
	timer *Timer[I]
	slots [4]groupSlot[K]
}

type groupSlot[K comparable] struct {
	pin K
	out dutyOutput
}

// NewGroup returns an empty group for t.
func NewGroup[I Instance, K comparable](t *Timer[I]) *Group[I, K] {
	return &Group[I, K]{timer: t}
}

// Attach makes out reachable through pin and enables it. The output must
// come from the same timer as the group.
func Attach[I Instance, C Channel, P any, K comparable](g *Group[I, K], pin K, out *Output[I, C, P]) error {
	var c C
	slot := &g.slots[c.Index()]
	if slot.out != nil {
		return ErrChannelInUse
	}
	for _, s := range g.slots {
		if s.out != nil && s.pin == pin {
			return ErrPinAttached
		}
	}
	slot.pin = pin
	slot.out = out
	out.Enable()
	return nil
}

// Channel returns the channel number driving pin.
func (g *Group[I, K]) Channel(pin K) (uint8, error) {
	for i, s := range g.slots {
		if s.out != nil && s.pin == pin {
			return uint8(i), nil
		}
	}
	return 0, ErrPinNotAttached
}

// Top is the compare value that keeps an output high for a full period.
func (g *Group[I, K]) Top() uint32 {
	return uint32(g.timer.instance.Registers().ARR.Get()) + 1
}

// Set writes the compare value of channel. Values beyond 16 bits saturate;
// unattached channels are ignored.
func (g *Group[I, K]) Set(channel uint8, value uint32) {
	if int(channel) >= len(g.slots) || g.slots[channel].out == nil {
		return
	}
	if value > 0xFFFF {
		value = 0xFFFF
	}
	g.slots[channel].out.SetDuty(uint16(value))
}

// Get returns the compare value of channel.
func (g *Group[I, K]) Get(channel uint8) uint32 {
	if int(channel) >= len(g.slots) || g.slots[channel].out == nil {
		return 0
	}
	return uint32(g.slots[channel].out.GetDuty())
}

// SetPeriod changes the timer period, in nanoseconds, for every channel.
func (g *Group[I, K]) SetPeriod(period uint64) error {
	if period == 0 {
		return ErrZeroPeriod
	}
	freq := 1e9 / period
	if freq == 0 {
		freq = 1
	}
	return g.timer.SetFrequency(rcc.Hertz(freq))
}

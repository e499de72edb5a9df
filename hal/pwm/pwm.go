package pwm

import "l0pwm/device"

// Pin is satisfied by a pin type that is wired to channel C of timer I. The
// method routes the pin to the channel's output compare signal. The binding
// tables live next to the pin types in hal/gpio.
type Pin[I Instance, C Channel] interface {
	SetupPWM(I, C)
}

// Unassigned is a channel that has not been bound to a pin yet. It offers no
// duty control. Only New creates usable values; a zero Unassigned cannot be
// assigned.
type Unassigned[I Instance, C Channel] struct {
	timer    *Timer[I]
	assigned bool
}

// Output is a channel bound to pin P. The timer's registers are the only
// state; the handle selects them through I and C. Only Assign creates
// usable values; methods on a zero Output panic.
type Output[I Instance, C Channel, P any] struct {
	timer *Timer[I]
	pin   P
}

// Assign binds ch to pin and returns the controllable output. The pin must
// be wired to this (timer, channel) pair, otherwise the call does not
// compile. ch is consumed: assigning it again panics, as does a channel
// that did not come from New.
func Assign[I Instance, C Channel, P Pin[I, C]](ch *Unassigned[I, C], pin P) *Output[I, C, P] {
	if ch == nil || ch.timer == nil {
		panic("pwm: channel not obtained from New")
	}
	state := disableInterrupts()
	if ch.assigned {
		restoreInterrupts(state)
		panic("pwm: channel already assigned")
	}
	ch.assigned = true
	restoreInterrupts(state)

	var c C
	pin.SetupPWM(ch.timer.instance, c)
	return &Output[I, C, P]{timer: ch.timer, pin: pin}
}

func (o *Output[I, C, P]) regs() channelRegs {
	var c C
	return channels[c.Index()]
}

func (o *Output[I, C, P]) tim() *device.TIM_Type {
	if o == nil || o.timer == nil {
		panic("pwm: output not obtained from Assign")
	}
	return o.timer.instance.Registers()
}

// Enable configures PWM mode 1 with preload and turns the output on.
func (o *Output[I, C, P]) Enable() {
	tim := o.tim()
	state := disableInterrupts()
	o.regs().enable(tim)
	restoreInterrupts(state)
}

// Disable turns the output off. Mode and duty are kept.
func (o *Output[I, C, P]) Disable() {
	tim := o.tim()
	state := disableInterrupts()
	o.regs().disable(tim)
	restoreInterrupts(state)
}

// IsEnabled reports whether the channel's output enable bit is set.
func (o *Output[I, C, P]) IsEnabled() bool {
	return o.tim().CCER.HasBits(o.regs().ccxe)
}

// GetDuty returns the compare value.
func (o *Output[I, C, P]) GetDuty() uint16 {
	return o.regs().getDuty(o.tim())
}

// SetDuty writes the compare value. Values above GetMaxDuty keep the output
// high for the whole period.
func (o *Output[I, C, P]) SetDuty(duty uint16) {
	o.regs().setDuty(o.tim(), duty)
}

// GetMaxDuty returns the reload value, the period in ticks minus one.
func (o *Output[I, C, P]) GetMaxDuty() uint16 {
	return uint16(o.tim().ARR.Get())
}

// Pin returns the pin driving this output.
func (o *Output[I, C, P]) Pin() P {
	return o.pin
}

//go:build tinygo

package pwm

import (
	"machine"

	"tinygo.org/x/drivers/servo"
	"tinygo.org/x/drivers/tone"
)

// MachineGroup is a Group keyed by machine pins, usable wherever the
// drivers packages expect a PWM peripheral.
type MachineGroup[I Instance] struct {
	*Group[I, machine.Pin]
}

var (
	_ servo.PWM = MachineGroup[TIM2]{}
	_ tone.PWM  = MachineGroup[TIM2]{}
)

// NewMachineGroup returns an empty machine-pin group for t.
func NewMachineGroup[I Instance](t *Timer[I]) MachineGroup[I] {
	return MachineGroup[I]{NewGroup[I, machine.Pin](t)}
}

// Configure applies the requested period. A zero period keeps the timer's
// current frequency.
func (g MachineGroup[I]) Configure(config machine.PWMConfig) error {
	if config.Period == 0 {
		return nil
	}
	return g.SetPeriod(config.Period)
}

//go:build tinygo && (stm32l0x2 || stm32l072 || stm32l082)

package main

import (
	"machine"

	"tinygo.org/x/drivers/servo"

	"l0pwm/core"
	"l0pwm/hal/gpio"
	"l0pwm/hal/pwm"
	"l0pwm/hal/rcc"
)

// setupOutputs binds PA0..PA3 to TIM2, exposes them as OIDs 0..3 and
// parks the servo on PA0 at its centre position.
func setupOutputs(r *rcc.RCC) (servo.Servo, error) {
	tim, err := pwm.New(pwm.TIM2{}, outputFrequency, r)
	if err != nil {
		return servo.Servo{}, err
	}
	pins := gpio.SplitA(r)

	ch1 := pwm.Assign(tim.Channel1, pins.PA0)
	ch2 := pwm.Assign(tim.Channel2, pins.PA1)
	ch3 := pwm.Assign(tim.Channel3, pins.PA2)
	ch4 := pwm.Assign(tim.Channel4, pins.PA3)

	for oid, out := range []core.PWMOutput{ch1, ch2, ch3, ch4} {
		if err := core.RegisterOutput(uint8(oid), outputNames[oid], out); err != nil {
			return servo.Servo{}, err
		}
	}

	group := pwm.NewMachineGroup(tim)
	if err := pwm.Attach(group.Group, machine.PA0, ch1); err != nil {
		return servo.Servo{}, err
	}
	s, err := servo.New(group, machine.PA0)
	if err != nil {
		return servo.Servo{}, err
	}
	s.SetMicroseconds(servoCenterMicros)
	return s, nil
}

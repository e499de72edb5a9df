package main

import (
	"l0pwm/hal/gpio"
	"l0pwm/hal/pwm"
	"l0pwm/hal/rcc"
)

func main() {
	r := rcc.New(rcc.DefaultConfig())
	pa := gpio.SplitA(r)
	tm, err := pwm.New(pwm.TIM3{}, rcc.KHz(1), r)
	if err != nil {
		panic(err)
	}
	// PA0 drives TIM2 channel 1 only.
	pwm.Assign(tm.Channel1, pa.PA0).Enable()
}

package main

import (
	"l0pwm/hal/gpio"
	"l0pwm/hal/pwm"
	"l0pwm/hal/rcc"
)

func main() {
	r := rcc.New(rcc.DefaultConfig())
	pa := gpio.SplitA(r)
	tm, err := pwm.New(pwm.TIM2{}, rcc.KHz(1), r)
	if err != nil {
		panic(err)
	}
	// PA1 is wired to TIM2 channel 2, not channel 1.
	pwm.Assign(tm.Channel1, pa.PA1).Enable()
}

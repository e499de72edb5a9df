package main

import (
	"l0pwm/hal/gpio"
	"l0pwm/hal/pwm"
	"l0pwm/hal/rcc"
)

func main() {
	r := rcc.New(rcc.DefaultConfig())
	pe := gpio.SplitE(r)
	tm, err := pwm.New(pwm.TIM2{}, rcc.KHz(1), r)
	if err != nil {
		panic(err)
	}
	pwm.Assign(tm.Channel1, pe.PE9).Enable()
}

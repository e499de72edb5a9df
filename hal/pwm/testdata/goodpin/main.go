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
	out := pwm.Assign(tm.Channel1, pa.PA0)
	out.SetDuty(out.GetMaxDuty() / 2)
	out.Enable()
}

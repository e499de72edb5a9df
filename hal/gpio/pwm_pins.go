package gpio

import "l0pwm/hal/pwm"

// Timer channel bindings present on every L0 variant.
//
//	pin  timer channel AF
//	PA0  TIM2  C1      AF2
//	PA1  TIM2  C2      AF2
//	PA2  TIM2  C3      AF2
//	PA3  TIM2  C4      AF2

func (p PA0) SetupPWM(pwm.TIM2, pwm.C1) { p.setAltMode(AF2) }
func (p PA1) SetupPWM(pwm.TIM2, pwm.C2) { p.setAltMode(AF2) }
func (p PA2) SetupPWM(pwm.TIM2, pwm.C3) { p.setAltMode(AF2) }
func (p PA3) SetupPWM(pwm.TIM2, pwm.C4) { p.setAltMode(AF2) }

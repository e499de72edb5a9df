//go:build stm32l072 || stm32l082

package gpio

import "l0pwm/hal/pwm"

//	pin  timer channel AF
//	PA6  TIM3  C1      AF2
//	PA7  TIM3  C2      AF2
//	PB0  TIM3  C3      AF2
//	PB1  TIM3  C4      AF2
//	PB4  TIM3  C1      AF2
//	PB5  TIM3  C2      AF4

func (p PA6) SetupPWM(pwm.TIM3, pwm.C1) { p.setAltMode(AF2) }
func (p PA7) SetupPWM(pwm.TIM3, pwm.C2) { p.setAltMode(AF2) }
func (p PB0) SetupPWM(pwm.TIM3, pwm.C3) { p.setAltMode(AF2) }
func (p PB1) SetupPWM(pwm.TIM3, pwm.C4) { p.setAltMode(AF2) }
func (p PB4) SetupPWM(pwm.TIM3, pwm.C1) { p.setAltMode(AF2) }
func (p PB5) SetupPWM(pwm.TIM3, pwm.C2) { p.setAltMode(AF4) }

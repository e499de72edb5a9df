//go:build stm32l0x2 || stm32l072 || stm32l082

package gpio

import "l0pwm/hal/pwm"

//	pin   timer channel AF
//	PA5   TIM2  C1      AF5
//	PA15  TIM2  C1      AF5
//	PB3   TIM2  C2      AF2
//	PB10  TIM2  C3      AF2
//	PB11  TIM2  C4      AF2

func (p PA5) SetupPWM(pwm.TIM2, pwm.C1)  { p.setAltMode(AF5) }
func (p PA15) SetupPWM(pwm.TIM2, pwm.C1) { p.setAltMode(AF5) }
func (p PB3) SetupPWM(pwm.TIM2, pwm.C2)  { p.setAltMode(AF2) }
func (p PB10) SetupPWM(pwm.TIM2, pwm.C3) { p.setAltMode(AF2) }
func (p PB11) SetupPWM(pwm.TIM2, pwm.C4) { p.setAltMode(AF2) }

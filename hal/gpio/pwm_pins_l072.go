//go:build stm32l072

package gpio

import "l0pwm/hal/pwm"

//	pin   timer channel AF
//	PE9   TIM2  C1      AF0
//	PE10  TIM2  C2      AF0
//	PE11  TIM2  C3      AF0
//	PE12  TIM2  C4      AF0
//	PC6   TIM3  C1      AF2
//	PC7   TIM3  C2      AF2
//	PC8   TIM3  C3      AF2
//	PC9   TIM3  C4      AF2
//	PE3   TIM3  C1      AF2
//	PE4   TIM3  C2      AF2
//	PE5   TIM3  C3      AF2
//	PE6   TIM3  C4      AF2

func (p PE9) SetupPWM(pwm.TIM2, pwm.C1)  { p.setAltMode(AF0) }
func (p PE10) SetupPWM(pwm.TIM2, pwm.C2) { p.setAltMode(AF0) }
func (p PE11) SetupPWM(pwm.TIM2, pwm.C3) { p.setAltMode(AF0) }
func (p PE12) SetupPWM(pwm.TIM2, pwm.C4) { p.setAltMode(AF0) }

func (p PC6) SetupPWM(pwm.TIM3, pwm.C1) { p.setAltMode(AF2) }
func (p PC7) SetupPWM(pwm.TIM3, pwm.C2) { p.setAltMode(AF2) }
func (p PC8) SetupPWM(pwm.TIM3, pwm.C3) { p.setAltMode(AF2) }
func (p PC9) SetupPWM(pwm.TIM3, pwm.C4) { p.setAltMode(AF2) }
func (p PE3) SetupPWM(pwm.TIM3, pwm.C1) { p.setAltMode(AF2) }
func (p PE4) SetupPWM(pwm.TIM3, pwm.C2) { p.setAltMode(AF2) }
func (p PE5) SetupPWM(pwm.TIM3, pwm.C3) { p.setAltMode(AF2) }
func (p PE6) SetupPWM(pwm.TIM3, pwm.C4) { p.setAltMode(AF2) }

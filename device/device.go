// Package device describes the STM32L0 peripheral registers used by the PWM
// driver: the general-purpose timers, the reset and clock controller and the
// GPIO ports. Only the registers the HAL touches are given bit definitions.
package device

// Peripheral base addresses (RM0367 memory map).
const (
	TIM2_BASE  = 0x40000000
	TIM3_BASE  = 0x40000400
	RCC_BASE   = 0x40021000
	GPIOA_BASE = 0x50000000
	GPIOB_BASE = 0x50000400
	GPIOC_BASE = 0x50000800
	GPIOE_BASE = 0x50001000
)

// TIM_Type is the general-purpose timer register block (TIM2/TIM3).
type TIM_Type struct {
	CR1   Register32 // 0x00
	CR2   Register32 // 0x04
	SMCR  Register32 // 0x08
	DIER  Register32 // 0x0C
	SR    Register32 // 0x10
	EGR   Register32 // 0x14
	CCMR1 Register32 // 0x18
	CCMR2 Register32 // 0x1C
	CCER  Register32 // 0x20
	CNT   Register32 // 0x24
	PSC   Register32 // 0x28
	ARR   Register32 // 0x2C
	_     [4]byte
	CCR1  Register32 // 0x34
	CCR2  Register32 // 0x38
	CCR3  Register32 // 0x3C
	CCR4  Register32 // 0x40
	_     [4]byte
	DCR   Register32 // 0x48
	DMAR  Register32 // 0x4C
	OR    Register32 // 0x50
}

// TIM bit definitions
const (
	TIM_CR1_CEN  = 1 << 0
	TIM_CR1_ARPE = 1 << 7

	TIM_EGR_UG = 1 << 0

	// Output compare fields. CCMR1 holds channels 1 and 2, CCMR2 holds 3 and
	// 4 at the same positions.
	TIM_CCMR_OC1PE    = 1 << 3
	TIM_CCMR_OC1M_Pos = 4
	TIM_CCMR_OC2PE    = 1 << 11
	TIM_CCMR_OC2M_Pos = 12
	TIM_CCMR_OCM_Msk  = 0x7
	TIM_CCMR_OCM_PWM1 = 0x6

	TIM_CCER_CC1E = 1 << 0
	TIM_CCER_CC2E = 1 << 4
	TIM_CCER_CC3E = 1 << 8
	TIM_CCER_CC4E = 1 << 12

	TIM_PSC_Msk = 0xFFFF
	TIM_ARR_Msk = 0xFFFF
	TIM_CCR_Msk = 0xFFFF
)

// RCC_Type is the reset and clock control register block.
type RCC_Type struct {
	CR        Register32 // 0x00
	ICSCR     Register32 // 0x04
	CRRCR     Register32 // 0x08
	CFGR      Register32 // 0x0C
	CIER      Register32 // 0x10
	CIFR      Register32 // 0x14
	CICR      Register32 // 0x18
	IOPRSTR   Register32 // 0x1C
	AHBRSTR   Register32 // 0x20
	APB2RSTR  Register32 // 0x24
	APB1RSTR  Register32 // 0x28
	IOPENR    Register32 // 0x2C
	AHBENR    Register32 // 0x30
	APB2ENR   Register32 // 0x34
	APB1ENR   Register32 // 0x38
	IOPSMEN   Register32 // 0x3C
	AHBSMENR  Register32 // 0x40
	APB2SMENR Register32 // 0x44
	APB1SMENR Register32 // 0x48
	CCIPR     Register32 // 0x4C
	CSR       Register32 // 0x50
}

// RCC bit definitions
const (
	RCC_APB1ENR_TIM2EN   = 1 << 0
	RCC_APB1ENR_TIM3EN   = 1 << 1
	RCC_APB1RSTR_TIM2RST = 1 << 0
	RCC_APB1RSTR_TIM3RST = 1 << 1

	RCC_IOPENR_IOPAEN   = 1 << 0
	RCC_IOPENR_IOPBEN   = 1 << 1
	RCC_IOPENR_IOPCEN   = 1 << 2
	RCC_IOPENR_IOPEEN   = 1 << 4
	RCC_IOPRSTR_IOPARST = 1 << 0
	RCC_IOPRSTR_IOPBRST = 1 << 1
	RCC_IOPRSTR_IOPCRST = 1 << 2
	RCC_IOPRSTR_IOPERST = 1 << 4
)

// GPIO_Type is a GPIO port register block.
type GPIO_Type struct {
	MODER   Register32 // 0x00
	OTYPER  Register32 // 0x04
	OSPEEDR Register32 // 0x08
	PUPDR   Register32 // 0x0C
	IDR     Register32 // 0x10
	ODR     Register32 // 0x14
	BSRR    Register32 // 0x18
	LCKR    Register32 // 0x1C
	AFRL    Register32 // 0x20
	AFRH    Register32 // 0x24
	BRR     Register32 // 0x28
}

// GPIO bit definitions
const (
	GPIO_MODER_Msk       = 0x3
	GPIO_MODER_Alternate = 0x2
	GPIO_AFR_Msk         = 0xF
)

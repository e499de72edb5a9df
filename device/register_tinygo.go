//go:build tinygo

package device

import (
	"runtime/volatile"
	"unsafe"
)

// Register32 is a memory-mapped 32-bit hardware register.
type Register32 = volatile.Register32

var (
	TIM2  = (*TIM_Type)(unsafe.Pointer(uintptr(TIM2_BASE)))
	TIM3  = (*TIM_Type)(unsafe.Pointer(uintptr(TIM3_BASE)))
	RCC   = (*RCC_Type)(unsafe.Pointer(uintptr(RCC_BASE)))
	GPIOA = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOA_BASE)))
	GPIOB = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOB_BASE)))
	GPIOC = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOC_BASE)))
	GPIOE = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOE_BASE)))
)

// AfterReset is a no-op on hardware: the reset line itself restores the
// peripheral.
func AfterReset(rstr *Register32, bits uint32) {}

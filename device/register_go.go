//go:build !tinygo

package device

import "sync/atomic"

// Register32 is simulated register memory for host builds. It has the same
// method set as TinyGo's volatile.Register32.
type Register32 struct {
	Reg uint32
}

// Get returns the register value.
func (r *Register32) Get() uint32 {
	return atomic.LoadUint32(&r.Reg)
}

// Set stores v into the register.
func (r *Register32) Set(v uint32) {
	atomic.StoreUint32(&r.Reg, v)
}

// SetBits sets the bits in mask.
func (r *Register32) SetBits(mask uint32) {
	r.Set(r.Get() | mask)
}

// ClearBits clears the bits in mask.
func (r *Register32) ClearBits(mask uint32) {
	r.Set(r.Get() &^ mask)
}

// HasBits reports whether any bit in mask is set.
func (r *Register32) HasBits(mask uint32) bool {
	return r.Get()&mask != 0
}

// ReplaceBits replaces the field mask<<pos with value<<pos.
func (r *Register32) ReplaceBits(value, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | (value&mask)<<pos)
}

// Simulated peripherals. Tests may inspect and reset them directly.
var (
	TIM2  = new(TIM_Type)
	TIM3  = new(TIM_Type)
	RCC   = new(RCC_Type)
	GPIOA = new(GPIO_Type)
	GPIOB = new(GPIO_Type)
	GPIOC = new(GPIO_Type)
	GPIOE = new(GPIO_Type)
)

// AfterReset restores the power-on state of every simulated block selected
// by bits in the given RCC reset register, standing in for the reset line.
func AfterReset(rstr *Register32, bits uint32) {
	switch rstr {
	case &RCC.APB1RSTR:
		if bits&RCC_APB1RSTR_TIM2RST != 0 {
			*TIM2 = TIM_Type{}
		}
		if bits&RCC_APB1RSTR_TIM3RST != 0 {
			*TIM3 = TIM_Type{}
		}
	case &RCC.IOPRSTR:
		if bits&RCC_IOPRSTR_IOPARST != 0 {
			*GPIOA = GPIO_Type{}
		}
		if bits&RCC_IOPRSTR_IOPBRST != 0 {
			*GPIOB = GPIO_Type{}
		}
		if bits&RCC_IOPRSTR_IOPCRST != 0 {
			*GPIOC = GPIO_Type{}
		}
		if bits&RCC_IOPRSTR_IOPERST != 0 {
			*GPIOE = GPIO_Type{}
		}
	}
}

package pwm

import (
	"l0pwm/device"
	"l0pwm/hal/rcc"
)

// Instance is one concrete timer peripheral. Implementations are zero-size
// types, so the register block is resolved from the type alone and handles
// never carry a pointer.
type Instance interface {
	// Registers returns the timer's register block.
	Registers() *device.TIM_Type
	// Enable turns on the timer's clock and pulses its reset line.
	Enable(r *rcc.RCC)
	// ClockFrequency is the timer's input clock in Hz.
	ClockFrequency(r *rcc.RCC) uint32
}

// TIM2 is the general-purpose timer at 0x40000000.
type TIM2 struct{}

func (TIM2) Registers() *device.TIM_Type { return device.TIM2 }

func (TIM2) Enable(r *rcc.RCC) {
	r.Enable(rcc.TIM2)
	r.Reset(rcc.TIM2)
}

func (TIM2) ClockFrequency(r *rcc.RCC) uint32 { return r.Clocks.APB1().Hz() }

// TIM3 is the general-purpose timer at 0x40000400 (stm32l072/l082).
type TIM3 struct{}

func (TIM3) Registers() *device.TIM_Type { return device.TIM3 }

func (TIM3) Enable(r *rcc.RCC) {
	r.Enable(rcc.TIM3)
	r.Reset(rcc.TIM3)
}

func (TIM3) ClockFrequency(r *rcc.RCC) uint32 { return r.Clocks.APB1().Hz() }

// claimed lists the register blocks owned by a running Timer.
var claimed []*device.TIM_Type

func claim(rb *device.TIM_Type) bool {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	for _, c := range claimed {
		if c == rb {
			return false
		}
	}
	claimed = append(claimed, rb)
	return true
}

func release(rb *device.TIM_Type) {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	for i, c := range claimed {
		if c == rb {
			claimed = append(claimed[:i], claimed[i+1:]...)
			return
		}
	}
}

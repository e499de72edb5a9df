// Package rcc is the slice of the reset and clock controller the PWM driver
// needs: peripheral clock gating, reset pulses and the bus frequencies the
// clock tree was configured for. It does not compute clock trees.
package rcc

import "l0pwm/device"

// Hertz is a frequency in Hz.
type Hertz uint32

// Hz returns h as a plain integer.
func (h Hertz) Hz() uint32 { return uint32(h) }

// KHz returns n kilohertz.
func KHz(n uint32) Hertz { return Hertz(n * 1000) }

// MHz returns n megahertz.
func MHz(n uint32) Hertz { return Hertz(n * 1000000) }

// Bus selects the enable/reset register pair a peripheral lives on.
type Bus uint8

const (
	BusIOP Bus = iota
	BusAPB1
)

// Peripheral identifies the clock-enable and reset bits of one peripheral.
type Peripheral struct {
	Name string
	Bus  Bus
	Bit  uint32
}

// Peripherals used by the HAL. The enable and reset bits share positions
// on the L0, so one Bit describes both.
var (
	TIM2  = Peripheral{Name: "TIM2", Bus: BusAPB1, Bit: device.RCC_APB1ENR_TIM2EN}
	TIM3  = Peripheral{Name: "TIM3", Bus: BusAPB1, Bit: device.RCC_APB1ENR_TIM3EN}
	GPIOA = Peripheral{Name: "GPIOA", Bus: BusIOP, Bit: device.RCC_IOPENR_IOPAEN}
	GPIOB = Peripheral{Name: "GPIOB", Bus: BusIOP, Bit: device.RCC_IOPENR_IOPBEN}
	GPIOC = Peripheral{Name: "GPIOC", Bus: BusIOP, Bit: device.RCC_IOPENR_IOPCEN}
	GPIOE = Peripheral{Name: "GPIOE", Bus: BusIOP, Bit: device.RCC_IOPENR_IOPEEN}
)

// Config is the clock tree the system was started with.
type Config struct {
	SysClk Hertz
	APB1   Hertz
	APB2   Hertz
}

// DefaultConfig is the reset clock tree: MSI at 2.097 MHz, no bus dividers.
func DefaultConfig() Config {
	return Config{SysClk: 2097000, APB1: 2097000, APB2: 2097000}
}

// Clocks holds the frozen bus frequencies.
type Clocks struct {
	sys, apb1, apb2 Hertz
}

func (c Clocks) SysClk() Hertz { return c.sys }
func (c Clocks) APB1() Hertz   { return c.apb1 }
func (c Clocks) APB2() Hertz   { return c.apb2 }

// RCC gives access to the reset and clock controller.
type RCC struct {
	rb     *device.RCC_Type
	Clocks Clocks
}

// New records the clock configuration and returns the controller.
func New(cfg Config) *RCC {
	return &RCC{
		rb:     device.RCC,
		Clocks: Clocks{sys: cfg.SysClk, apb1: cfg.APB1, apb2: cfg.APB2},
	}
}

// Enable turns on the peripheral's bus clock.
func (r *RCC) Enable(p Peripheral) {
	r.enr(p.Bus).SetBits(p.Bit)
}

// Reset pulses the peripheral's reset line, returning its registers to the
// power-on state.
func (r *RCC) Reset(p Peripheral) {
	rstr := r.rstr(p.Bus)
	rstr.SetBits(p.Bit)
	rstr.ClearBits(p.Bit)
	device.AfterReset(rstr, p.Bit)
}

// IsEnabled reports whether the peripheral's bus clock is on.
func (r *RCC) IsEnabled(p Peripheral) bool {
	return r.enr(p.Bus).HasBits(p.Bit)
}

func (r *RCC) enr(b Bus) *device.Register32 {
	if b == BusAPB1 {
		return &r.rb.APB1ENR
	}
	return &r.rb.IOPENR
}

func (r *RCC) rstr(b Bus) *device.Register32 {
	if b == BusAPB1 {
		return &r.rb.APB1RSTR
	}
	return &r.rb.IOPRSTR
}

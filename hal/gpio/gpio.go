// Package gpio hands out the STM32L0 port pins as distinct types. Each pin
// type carries the PWM bindings the silicon wires to it (pwm_pins*.go), so
// routing a pin to a timer channel is checked when the program is built.
package gpio

import "l0pwm/device"

// AltMode selects one of the alternate functions of a pin.
type AltMode uint8

const (
	AF0 AltMode = iota
	AF1
	AF2
	AF3
	AF4
	AF5
	AF6
	AF7
)

// Pin is a single line of a port. Concrete pin types embed it.
type Pin struct {
	port *device.GPIO_Type
	name byte
	n    uint8
}

// Number is the pin's position within its port.
func (p Pin) Number() uint8 { return p.n }

// String returns the pin name, e.g. "PA5".
func (p Pin) String() string {
	if p.n < 10 {
		return string([]byte{'P', p.name, '0' + p.n})
	}
	return string([]byte{'P', p.name, '1', '0' + p.n - 10})
}

// regs returns the pin's port. Pins only come from a Split call; a zero
// value has no port and must not touch GPIO registers.
func (p Pin) regs() *device.GPIO_Type {
	if p.port == nil {
		panic("gpio: pin not obtained from a port split")
	}
	return p.port
}

// AltMode returns the alternate function currently selected.
func (p Pin) AltMode() AltMode {
	port := p.regs()
	if p.n < 8 {
		return AltMode(port.AFRL.Get() >> (4 * p.n) & device.GPIO_AFR_Msk)
	}
	return AltMode(port.AFRH.Get() >> (4 * (p.n - 8)) & device.GPIO_AFR_Msk)
}

// IsAlternate reports whether the pin is in alternate function mode.
func (p Pin) IsAlternate() bool {
	return p.regs().MODER.Get()>>(2*p.n)&device.GPIO_MODER_Msk == device.GPIO_MODER_Alternate
}

// setAltMode selects af and switches the pin to alternate function mode.
// The function is selected first so the pin never drives the wrong signal.
func (p Pin) setAltMode(af AltMode) {
	port := p.regs()
	if p.n < 8 {
		port.AFRL.ReplaceBits(uint32(af), device.GPIO_AFR_Msk, 4*p.n)
	} else {
		port.AFRH.ReplaceBits(uint32(af), device.GPIO_AFR_Msk, 4*(p.n-8))
	}
	port.MODER.ReplaceBits(device.GPIO_MODER_Alternate, device.GPIO_MODER_Msk, 2*p.n)
}

// ports records which ports have been split.
var ports uint8

func take(bit uint8) {
	if ports&bit != 0 {
		panic("gpio: port already split")
	}
	ports |= bit
}

package gpio

import (
	"l0pwm/device"
	"l0pwm/hal/rcc"
)

// Pins with a timer binding on at least one L0 variant.
type (
	PA0  struct{ Pin }
	PA1  struct{ Pin }
	PA2  struct{ Pin }
	PA3  struct{ Pin }
	PA5  struct{ Pin }
	PA6  struct{ Pin }
	PA7  struct{ Pin }
	PA15 struct{ Pin }

	PB0  struct{ Pin }
	PB1  struct{ Pin }
	PB3  struct{ Pin }
	PB4  struct{ Pin }
	PB5  struct{ Pin }
	PB10 struct{ Pin }
	PB11 struct{ Pin }

	PC6 struct{ Pin }
	PC7 struct{ Pin }
	PC8 struct{ Pin }
	PC9 struct{ Pin }

	PE3  struct{ Pin }
	PE4  struct{ Pin }
	PE5  struct{ Pin }
	PE6  struct{ Pin }
	PE9  struct{ Pin }
	PE10 struct{ Pin }
	PE11 struct{ Pin }
	PE12 struct{ Pin }
)

// PortA holds the pins of GPIOA.
type PortA struct {
	PA0  PA0
	PA1  PA1
	PA2  PA2
	PA3  PA3
	PA5  PA5
	PA6  PA6
	PA7  PA7
	PA15 PA15
}

// PortB holds the pins of GPIOB.
type PortB struct {
	PB0  PB0
	PB1  PB1
	PB3  PB3
	PB4  PB4
	PB5  PB5
	PB10 PB10
	PB11 PB11
}

// PortC holds the pins of GPIOC.
type PortC struct {
	PC6 PC6
	PC7 PC7
	PC8 PC8
	PC9 PC9
}

// PortE holds the pins of GPIOE.
type PortE struct {
	PE3  PE3
	PE4  PE4
	PE5  PE5
	PE6  PE6
	PE9  PE9
	PE10 PE10
	PE11 PE11
	PE12 PE12
}

func pinA(n uint8) Pin { return Pin{port: device.GPIOA, name: 'A', n: n} }
func pinB(n uint8) Pin { return Pin{port: device.GPIOB, name: 'B', n: n} }
func pinC(n uint8) Pin { return Pin{port: device.GPIOC, name: 'C', n: n} }
func pinE(n uint8) Pin { return Pin{port: device.GPIOE, name: 'E', n: n} }

// SplitA enables GPIOA and returns its pins. It panics if called twice.
func SplitA(r *rcc.RCC) PortA {
	take(1 << 0)
	r.Enable(rcc.GPIOA)
	return PortA{
		PA0: PA0{pinA(0)}, PA1: PA1{pinA(1)}, PA2: PA2{pinA(2)}, PA3: PA3{pinA(3)},
		PA5: PA5{pinA(5)}, PA6: PA6{pinA(6)}, PA7: PA7{pinA(7)}, PA15: PA15{pinA(15)},
	}
}

// SplitB enables GPIOB and returns its pins. It panics if called twice.
func SplitB(r *rcc.RCC) PortB {
	take(1 << 1)
	r.Enable(rcc.GPIOB)
	return PortB{
		PB0: PB0{pinB(0)}, PB1: PB1{pinB(1)}, PB3: PB3{pinB(3)}, PB4: PB4{pinB(4)},
		PB5: PB5{pinB(5)}, PB10: PB10{pinB(10)}, PB11: PB11{pinB(11)},
	}
}

// SplitC enables GPIOC and returns its pins. It panics if called twice.
func SplitC(r *rcc.RCC) PortC {
	take(1 << 2)
	r.Enable(rcc.GPIOC)
	return PortC{PC6: PC6{pinC(6)}, PC7: PC7{pinC(7)}, PC8: PC8{pinC(8)}, PC9: PC9{pinC(9)}}
}

// SplitE enables GPIOE and returns its pins. It panics if called twice.
func SplitE(r *rcc.RCC) PortE {
	take(1 << 4)
	r.Enable(rcc.GPIOE)
	return PortE{
		PE3: PE3{pinE(3)}, PE4: PE4{pinE(4)}, PE5: PE5{pinE(5)}, PE6: PE6{pinE(6)},
		PE9: PE9{pinE(9)}, PE10: PE10{pinE(10)}, PE11: PE11{pinE(11)}, PE12: PE12{pinE(12)},
	}
}

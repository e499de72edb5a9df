package gpio

import (
	"testing"

	"l0pwm/device"
	"l0pwm/hal/pwm"
	"l0pwm/hal/rcc"
)

func resetPorts() {
	ports = 0
	*device.GPIOA = device.GPIO_Type{}
	*device.GPIOB = device.GPIO_Type{}
	*device.RCC = device.RCC_Type{}
}

func TestSplitEnablesPortClock(t *testing.T) {
	resetPorts()
	r := rcc.New(rcc.DefaultConfig())

	pa := SplitA(r)
	if !r.IsEnabled(rcc.GPIOA) {
		t.Error("GPIOA clock not enabled by SplitA")
	}
	if pa.PA3.Number() != 3 {
		t.Errorf("PA3.Number() = %d", pa.PA3.Number())
	}
}

func TestSplitTwicePanics(t *testing.T) {
	resetPorts()
	r := rcc.New(rcc.DefaultConfig())
	SplitB(r)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on second SplitB")
		}
	}()
	SplitB(r)
}

func TestPinNames(t *testing.T) {
	tests := []struct {
		pin  Pin
		want string
	}{
		{pinA(0), "PA0"},
		{pinA(15), "PA15"},
		{pinB(10), "PB10"},
		{pinE(3), "PE3"},
	}
	for _, tt := range tests {
		if got := tt.pin.String(); got != tt.want {
			t.Errorf("String() = %q, expected %q", got, tt.want)
		}
	}
}

func TestSetupPWMSelectsAlternateFunction(t *testing.T) {
	resetPorts()
	r := rcc.New(rcc.DefaultConfig())
	pa := SplitA(r)

	device.GPIOA.AFRL.Set(0xFFFF_FFFF)
	pa.PA2.SetupPWM(pwm.TIM2{}, pwm.C3{})

	if !pa.PA2.IsAlternate() {
		t.Errorf("PA2 not in alternate mode, MODER=%#x", device.GPIOA.MODER.Get())
	}
	if pa.PA2.AltMode() != AF2 {
		t.Errorf("PA2 alternate function = %d, expected AF2", pa.PA2.AltMode())
	}
	// Neighbouring fields are untouched.
	if pa.PA1.AltMode() != AltMode(0xF) {
		t.Errorf("PA1 AFR field changed to %d", pa.PA1.AltMode())
	}
	if pa.PA1.IsAlternate() {
		t.Error("PA1 switched to alternate mode")
	}
}

func TestHighPinUsesAFRH(t *testing.T) {
	p := pinB(11)
	*device.GPIOB = device.GPIO_Type{}

	p.setAltMode(AF2)

	if device.GPIOB.AFRL.Get() != 0 {
		t.Errorf("AFRL = %#x, expected untouched", device.GPIOB.AFRL.Get())
	}
	if want := uint32(AF2) << 12; device.GPIOB.AFRH.Get() != want {
		t.Errorf("AFRH = %#x, expected %#x", device.GPIOB.AFRH.Get(), want)
	}
	if want := uint32(device.GPIO_MODER_Alternate) << 22; device.GPIOB.MODER.Get() != want {
		t.Errorf("MODER = %#x, expected %#x", device.GPIOB.MODER.Get(), want)
	}
}

func TestZeroPinPanics(t *testing.T) {
	resetPorts()

	tests := []struct {
		name string
		fn   func()
	}{
		{"PA0 SetupPWM", func() { PA0{}.SetupPWM(pwm.TIM2{}, pwm.C1{}) }},
		{"PA3 SetupPWM", func() { PA3{}.SetupPWM(pwm.TIM2{}, pwm.C4{}) }},
		{"setAltMode high pin", func() { PB11{}.setAltMode(AF2) }},
		{"AltMode", func() { PA2{}.AltMode() }},
		{"IsAlternate", func() { PA2{}.IsAlternate() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s on a zero pin did not panic", tt.name)
				}
			}()
			tt.fn()
		})
	}

	if device.GPIOA.MODER.Get() != 0 || device.GPIOB.MODER.Get() != 0 {
		t.Error("zero pin changed a port")
	}
}

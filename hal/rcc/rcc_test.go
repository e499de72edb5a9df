package rcc

import (
	"testing"

	"l0pwm/device"
)

func TestEnableSetsBusBit(t *testing.T) {
	*device.RCC = device.RCC_Type{}
	r := New(Config{APB1: MHz(32)})

	r.Enable(TIM3)
	if !device.RCC.APB1ENR.HasBits(device.RCC_APB1ENR_TIM3EN) {
		t.Error("TIM3EN not set after Enable")
	}
	if device.RCC.IOPENR.Get() != 0 {
		t.Errorf("IOPENR = %#x, expected untouched", device.RCC.IOPENR.Get())
	}

	r.Enable(GPIOB)
	if !r.IsEnabled(GPIOB) {
		t.Error("GPIOB clock not enabled")
	}
}

func TestResetLeavesLineReleased(t *testing.T) {
	*device.RCC = device.RCC_Type{}
	r := New(DefaultConfig())
	device.TIM2.PSC.Set(7)

	r.Reset(TIM2)

	if device.RCC.APB1RSTR.Get() != 0 {
		t.Errorf("APB1RSTR = %#x, reset line must be released", device.RCC.APB1RSTR.Get())
	}
	if device.TIM2.PSC.Get() != 0 {
		t.Errorf("TIM2.PSC = %d, expected power-on value", device.TIM2.PSC.Get())
	}
}

func TestHertzHelpers(t *testing.T) {
	if MHz(32).Hz() != 32000000 {
		t.Errorf("MHz(32) = %d", MHz(32).Hz())
	}
	if KHz(1) != 1000 {
		t.Errorf("KHz(1) = %d", KHz(1))
	}
	r := New(Config{SysClk: MHz(32), APB1: MHz(16), APB2: MHz(8)})
	if r.Clocks.APB1() != MHz(16) || r.Clocks.APB2() != MHz(8) || r.Clocks.SysClk() != MHz(32) {
		t.Errorf("unexpected clocks: %+v", r.Clocks)
	}
}

package pwm

import (
	"errors"
	"testing"

	"l0pwm/device"
	"l0pwm/hal/rcc"
)

func newTestTimer(t *testing.T, freq rcc.Hertz) *Timer[TIM2] {
	t.Helper()
	ResetClaims()
	*device.TIM2 = device.TIM_Type{}
	*device.RCC = device.RCC_Type{}

	tm, err := New(TIM2{}, freq, rcc.New(rcc.Config{APB1: rcc.MHz(32)}))
	if err != nil {
		t.Fatalf("New(TIM2, %d Hz) failed: %v", freq, err)
	}
	return tm
}

func TestPrescale(t *testing.T) {
	tests := []struct {
		clk, freq uint32
		psc, arr  uint16
	}{
		{32000000, 1000, 0, 31999},
		{32000000, 1, 488, 65438},
		{32000000, 32000000, 0, 0},
		{16000000, 50, 4, 63999},
		{2097000, 50, 0, 41939},
		{65536, 1, 0, 65535},
		{65537, 1, 1, 32767},
	}
	for _, tt := range tests {
		psc, arr, err := Prescale(tt.clk, tt.freq)
		if err != nil {
			t.Errorf("Prescale(%d, %d) failed: %v", tt.clk, tt.freq, err)
			continue
		}
		if psc != tt.psc || arr != tt.arr {
			t.Errorf("Prescale(%d, %d) = (%d, %d), expected (%d, %d)",
				tt.clk, tt.freq, psc, arr, tt.psc, tt.arr)
		}
	}
}

func TestPrescaleErrors(t *testing.T) {
	if _, _, err := Prescale(32000000, 0); !errors.Is(err, ErrZeroFrequency) {
		t.Errorf("zero frequency: got %v, expected ErrZeroFrequency", err)
	}
	if _, _, err := Prescale(32000000, 32000001); !errors.Is(err, ErrUnrepresentable) {
		t.Errorf("frequency above clock: got %v, expected ErrUnrepresentable", err)
	}
}

func TestPrescalePeriodBound(t *testing.T) {
	clocks := []uint32{2097000, 16000000, 32000000, 0xFFFFFFFF}
	freqs := []uint32{1, 3, 7, 50, 440, 999, 1000, 20000, 100000, 1000000}

	for _, clk := range clocks {
		for _, freq := range freqs {
			psc, arr, err := Prescale(clk, freq)
			if err != nil {
				t.Errorf("Prescale(%d, %d) failed: %v", clk, freq, err)
				continue
			}
			ticks := uint64(clk / freq)
			period := (uint64(psc) + 1) * (uint64(arr) + 1)
			if period > ticks {
				t.Errorf("clk=%d freq=%d: period %d exceeds %d ticks", clk, freq, period, ticks)
			}
			if ticks-period > uint64(psc) {
				t.Errorf("clk=%d freq=%d: period %d short of %d ticks by more than psc=%d",
					clk, freq, period, ticks, psc)
			}
		}
	}
}

func TestNewProgramsTimer(t *testing.T) {
	tm := newTestTimer(t, rcc.KHz(1))
	rb := device.TIM2

	if rb.PSC.Get() != 0 {
		t.Errorf("PSC = %d, expected 0", rb.PSC.Get())
	}
	if rb.ARR.Get() != 31999 {
		t.Errorf("ARR = %d, expected 31999", rb.ARR.Get())
	}
	if !rb.CR1.HasBits(device.TIM_CR1_CEN) {
		t.Error("counter not enabled")
	}
	if !rb.CR1.HasBits(device.TIM_CR1_ARPE) {
		t.Error("reload not buffered")
	}
	if !rb.EGR.HasBits(device.TIM_EGR_UG) {
		t.Error("no update event after programming PSC and ARR")
	}
	if !device.RCC.APB1ENR.HasBits(device.RCC_APB1ENR_TIM2EN) {
		t.Error("TIM2 clock not enabled")
	}
	if device.RCC.APB1RSTR.Get() != 0 {
		t.Errorf("APB1RSTR = %#x, reset must be released", device.RCC.APB1RSTR.Get())
	}
	if tm.Frequency() != rcc.KHz(1) {
		t.Errorf("Frequency() = %d, expected 1000", tm.Frequency())
	}
}

func TestNewStartsFromResetState(t *testing.T) {
	ResetClaims()
	device.TIM2.CCER.Set(device.TIM_CCER_CC3E)
	device.TIM2.CCR3.Set(500)

	tm, err := New(TIM2{}, rcc.KHz(2), rcc.New(rcc.Config{APB1: rcc.MHz(32)}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	_ = tm
	if device.TIM2.CCER.Get() != 0 || device.TIM2.CCR3.Get() != 0 {
		t.Errorf("stale channel state survived reset: CCER=%#x CCR3=%d",
			device.TIM2.CCER.Get(), device.TIM2.CCR3.Get())
	}
}

func TestNewZeroFrequency(t *testing.T) {
	ResetClaims()
	_, err := New(TIM2{}, 0, rcc.New(rcc.Config{APB1: rcc.MHz(32)}))
	if !errors.Is(err, ErrZeroFrequency) {
		t.Errorf("got %v, expected ErrZeroFrequency", err)
	}
}

func TestNewInstanceInUse(t *testing.T) {
	newTestTimer(t, rcc.KHz(1))

	_, err := New(TIM2{}, rcc.KHz(1), rcc.New(rcc.Config{APB1: rcc.MHz(32)}))
	if !errors.Is(err, ErrInstanceInUse) {
		t.Errorf("second New(TIM2): got %v, expected ErrInstanceInUse", err)
	}

	// A different instance is independent.
	*device.TIM3 = device.TIM_Type{}
	if _, err := New(TIM3{}, rcc.KHz(1), rcc.New(rcc.Config{APB1: rcc.MHz(32)})); err != nil {
		t.Errorf("New(TIM3) failed: %v", err)
	}
}

func TestNewUnrepresentableReleasesInstance(t *testing.T) {
	ResetClaims()
	r := rcc.New(rcc.Config{APB1: rcc.MHz(1)})

	_, err := New(TIM2{}, rcc.MHz(2), r)
	if !errors.Is(err, ErrUnrepresentable) {
		t.Fatalf("got %v, expected ErrUnrepresentable", err)
	}
	if _, err := New(TIM2{}, rcc.KHz(1), r); err != nil {
		t.Errorf("instance not released after failed New: %v", err)
	}
}

func TestSetFrequency(t *testing.T) {
	tm := newTestTimer(t, rcc.KHz(1))

	device.TIM2.EGR.Set(0)
	if err := tm.SetFrequency(50); err != nil {
		t.Fatalf("SetFrequency(50) failed: %v", err)
	}
	if !device.TIM2.EGR.HasBits(device.TIM_EGR_UG) {
		t.Error("SetFrequency did not generate an update event")
	}
	// 32 MHz / 50 Hz = 640000 ticks -> psc 9, arr 63999
	if device.TIM2.PSC.Get() != 9 || device.TIM2.ARR.Get() != 63999 {
		t.Errorf("PSC=%d ARR=%d, expected 9 and 63999", device.TIM2.PSC.Get(), device.TIM2.ARR.Get())
	}
	if tm.Frequency() != 50 {
		t.Errorf("Frequency() = %d, expected 50", tm.Frequency())
	}

	if err := tm.SetFrequency(0); !errors.Is(err, ErrZeroFrequency) {
		t.Errorf("SetFrequency(0): got %v", err)
	}
	if device.TIM2.ARR.Get() != 63999 {
		t.Error("failed SetFrequency changed the reload register")
	}
}

// At 32 MHz every frequency down to 1 Hz fits the 16-bit prescaler, so the
// lowest frequency that fails is the first one above the timer clock.
func TestNewFrequencyLimitsAt32MHz(t *testing.T) {
	tests := []struct {
		freq    rcc.Hertz
		wantErr error
		psc     uint32
		arr     uint32
	}{
		{1, nil, 488, 65438},
		{488, nil, 1, 32785},
		{rcc.MHz(32), nil, 0, 0},
		{rcc.MHz(32) + 1, ErrUnrepresentable, 0, 0},
		{0xFFFFFFFF, ErrUnrepresentable, 0, 0},
	}

	for _, tt := range tests {
		ResetClaims()
		*device.TIM2 = device.TIM_Type{}
		*device.RCC = device.RCC_Type{}
		_, err := New(TIM2{}, tt.freq, rcc.New(rcc.Config{APB1: rcc.MHz(32)}))
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("New(%d Hz): got %v, expected %v", tt.freq, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if device.TIM2.PSC.Get() != tt.psc || device.TIM2.ARR.Get() != tt.arr {
			t.Errorf("New(%d Hz): PSC=%d ARR=%d, expected %d and %d",
				tt.freq, device.TIM2.PSC.Get(), device.TIM2.ARR.Get(), tt.psc, tt.arr)
		}
	}
}

// Package pwm drives the channels of an STM32L0 general-purpose timer as
// edge-aligned PWM outputs (PWM mode 1, active high).
//
// A Timer is created for one Instance at a fixed frequency and hands out
// four Unassigned channels. Assign binds a channel to a pin that is wired to
// it on the selected silicon; pins without such a binding do not satisfy
// Pin[I, C], so the mistake is a compile error. Only the resulting Output
// exposes duty-cycle control.
package pwm

import (
	"errors"
	"fmt"

	"l0pwm/device"
	"l0pwm/hal/rcc"
)

var (
	ErrZeroFrequency   = errors.New("pwm: zero frequency")
	ErrUnrepresentable = errors.New("pwm: frequency not representable")
	ErrInstanceInUse   = errors.New("pwm: timer instance already in use")
)

// Timer is a running timer together with its four channels.
type Timer[I Instance] struct {
	instance I
	clk      uint32

	Channel1 *Unassigned[I, C1]
	Channel2 *Unassigned[I, C2]
	Channel3 *Unassigned[I, C3]
	Channel4 *Unassigned[I, C4]
}

// New resets the timer, programs it for the given output frequency and
// starts the counter. Each instance can back at most one Timer.
func New[I Instance](instance I, frequency rcc.Hertz, r *rcc.RCC) (*Timer[I], error) {
	if frequency == 0 {
		return nil, ErrZeroFrequency
	}
	rb := instance.Registers()
	if !claim(rb) {
		return nil, ErrInstanceInUse
	}

	instance.Enable(r)

	clk := instance.ClockFrequency(r)
	psc, arr, err := Prescale(clk, frequency.Hz())
	if err != nil {
		release(rb)
		return nil, err
	}
	rb.PSC.Set(uint32(psc))
	rb.ARR.Set(uint32(arr))
	rb.CR1.Set(device.TIM_CR1_ARPE)
	// Load PSC and ARR now rather than at the first overflow.
	rb.EGR.Set(device.TIM_EGR_UG)
	rb.CR1.SetBits(device.TIM_CR1_CEN)

	t := &Timer[I]{instance: instance, clk: clk}
	t.Channel1 = &Unassigned[I, C1]{timer: t}
	t.Channel2 = &Unassigned[I, C2]{timer: t}
	t.Channel3 = &Unassigned[I, C3]{timer: t}
	t.Channel4 = &Unassigned[I, C4]{timer: t}
	return t, nil
}

// Prescale derives the prescaler and auto-reload values for a timer clocked
// at clk to overflow at freq. The counter period is (psc+1)*(arr+1) ticks,
// which never exceeds clk/freq and falls short of it by less than psc+1
// ticks.
func Prescale(clk, freq uint32) (psc, arr uint16, err error) {
	if freq == 0 {
		return 0, 0, ErrZeroFrequency
	}
	ticks := clk / freq
	if ticks == 0 {
		return 0, 0, fmt.Errorf("%w: %d Hz is above the %d Hz timer clock", ErrUnrepresentable, freq, clk)
	}

	// ceil(ticks / 2^16) - 1
	p := (ticks - 1) >> 16
	if p > device.TIM_PSC_Msk {
		return 0, 0, fmt.Errorf("%w: prescaler %d exceeds 16 bits", ErrUnrepresentable, p)
	}
	a := ticks/(p+1) - 1
	if a > device.TIM_ARR_Msk {
		return 0, 0, fmt.Errorf("%w: reload %d exceeds 16 bits", ErrUnrepresentable, a)
	}
	return uint16(p), uint16(a), nil
}

// SetFrequency reprograms the prescaler and reload for a new frequency
// without resetting the timer. Duty values are not rescaled. The update
// event restarts the current period so the counter never runs past a
// lowered reload value.
func (t *Timer[I]) SetFrequency(frequency rcc.Hertz) error {
	psc, arr, err := Prescale(t.clk, frequency.Hz())
	if err != nil {
		return err
	}
	rb := t.instance.Registers()
	rb.PSC.Set(uint32(psc))
	rb.ARR.Set(uint32(arr))
	rb.EGR.Set(device.TIM_EGR_UG)
	return nil
}

// Frequency returns the output frequency the registers currently produce.
func (t *Timer[I]) Frequency() rcc.Hertz {
	rb := t.instance.Registers()
	period := (rb.PSC.Get() + 1) * (rb.ARR.Get() + 1)
	return rcc.Hertz(t.clk / period)
}

// Instance returns the timer peripheral the Timer owns.
func (t *Timer[I]) Instance() I {
	return t.instance
}

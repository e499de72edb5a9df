package pwm

import "l0pwm/device"

// Channel is one of the four capture/compare channels of a timer. The four
// implementations differ only in which registers and bits they select.
type Channel interface {
	// Index is the zero-based slot of the channel.
	Index() int
}

// C1 is capture/compare channel 1.
type C1 struct{}

// C2 is capture/compare channel 2.
type C2 struct{}

// C3 is capture/compare channel 3.
type C3 struct{}

// C4 is capture/compare channel 4.
type C4 struct{}

func (C1) Index() int { return 0 }
func (C2) Index() int { return 1 }
func (C3) Index() int { return 2 }
func (C4) Index() int { return 3 }

// channelRegs names the register fields one channel owns.
type channelRegs struct {
	ccmr  func(*device.TIM_Type) *device.Register32
	ccr   func(*device.TIM_Type) *device.Register32
	ocpe  uint32
	ocmAt uint8
	ccxe  uint32
}

func ccmr1(t *device.TIM_Type) *device.Register32 { return &t.CCMR1 }
func ccmr2(t *device.TIM_Type) *device.Register32 { return &t.CCMR2 }

var channels = [4]channelRegs{
	{ccmr: ccmr1, ccr: func(t *device.TIM_Type) *device.Register32 { return &t.CCR1 },
		ocpe: device.TIM_CCMR_OC1PE, ocmAt: device.TIM_CCMR_OC1M_Pos, ccxe: device.TIM_CCER_CC1E},
	{ccmr: ccmr1, ccr: func(t *device.TIM_Type) *device.Register32 { return &t.CCR2 },
		ocpe: device.TIM_CCMR_OC2PE, ocmAt: device.TIM_CCMR_OC2M_Pos, ccxe: device.TIM_CCER_CC2E},
	{ccmr: ccmr2, ccr: func(t *device.TIM_Type) *device.Register32 { return &t.CCR3 },
		ocpe: device.TIM_CCMR_OC1PE, ocmAt: device.TIM_CCMR_OC1M_Pos, ccxe: device.TIM_CCER_CC3E},
	{ccmr: ccmr2, ccr: func(t *device.TIM_Type) *device.Register32 { return &t.CCR4 },
		ocpe: device.TIM_CCMR_OC2PE, ocmAt: device.TIM_CCMR_OC2M_Pos, ccxe: device.TIM_CCER_CC4E},
}

// disable clears the channel's output enable.
func (c channelRegs) disable(tim *device.TIM_Type) {
	tim.CCER.ClearBits(c.ccxe)
}

// enable selects PWM mode 1 with preload in one write, then turns the
// output on. The mode must be in place before CCxE is set.
func (c channelRegs) enable(tim *device.TIM_Type) {
	ccmr := c.ccmr(tim)
	v := ccmr.Get()
	v &^= device.TIM_CCMR_OCM_Msk << c.ocmAt
	v |= device.TIM_CCMR_OCM_PWM1<<c.ocmAt | c.ocpe
	ccmr.Set(v)
	tim.CCER.SetBits(c.ccxe)
}

func (c channelRegs) getDuty(tim *device.TIM_Type) uint16 {
	return uint16(c.ccr(tim).Get() & device.TIM_CCR_Msk)
}

func (c channelRegs) setDuty(tim *device.TIM_Type, duty uint16) {
	c.ccr(tim).Set(uint32(duty))
}

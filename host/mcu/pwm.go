package mcu

import "fmt"

// OutputInfo is one entry of list_pwm
type OutputInfo struct {
	OID  uint8
	Name string
}

// OutputState is the pwm_state of one output
type OutputState struct {
	OID     uint8
	Enabled bool
	Duty    uint16
	Max     uint16
}

// Percent returns the duty as a percentage of the period
func (s OutputState) Percent() float64 {
	if uint32(s.Duty) > uint32(s.Max) {
		return 100
	}
	return float64(s.Duty) * 100 / (float64(s.Max) + 1)
}

// ListOutputs returns the outputs the firmware exposes, in OID order
func (c *Client) ListOutputs() ([]OutputInfo, error) {
	resps, err := c.Query("list_pwm")
	if err != nil {
		return nil, err
	}
	var out []OutputInfo
	for _, r := range resps {
		if r.Name != "pwm_output" {
			continue
		}
		out = append(out, OutputInfo{OID: uint8(r.Uint("oid")), Name: string(r.Bytes("name"))})
	}
	return out, nil
}

// GetOutput reads the state of one output
func (c *Client) GetOutput(oid uint8) (OutputState, error) {
	resps, err := c.Query("get_pwm", oid)
	if err != nil {
		return OutputState{}, err
	}
	for _, r := range resps {
		if r.Name == "pwm_state" && uint8(r.Uint("oid")) == oid {
			return OutputState{
				OID:     oid,
				Enabled: r.Bool("enabled"),
				Duty:    uint16(r.Uint("duty")),
				Max:     uint16(r.Uint("max")),
			}, nil
		}
	}
	return OutputState{}, fmt.Errorf("get_pwm oid %d: %w", oid, ErrNoReply)
}

// SetDuty writes a raw compare value
func (c *Client) SetDuty(oid uint8, duty uint16) error {
	return c.Send("set_pwm", oid, duty)
}

// SetFraction sets the duty in thousandths of the period
func (c *Client) SetFraction(oid uint8, permille uint16) error {
	return c.Send("set_pwm_fraction", oid, permille)
}

func (c *Client) Enable(oid uint8) error {
	return c.Send("enable_pwm", oid)
}

func (c *Client) Disable(oid uint8) error {
	return c.Send("disable_pwm", oid)
}

// EmergencyStop disables every output on the firmware
func (c *Client) EmergencyStop() error {
	return c.Send("emergency_stop")
}

package core

import (
	"fmt"

	"l0pwm/protocol"
)

// FractionScale is the full scale of set_pwm_fraction
const FractionScale = 1000

// InitPWMCommands registers the output control commands
func InitPWMCommands() {
	RegisterCommand("get_pwm", "oid=%c", handleGetPWM)
	RegisterResponse("pwm_state", "oid=%c enabled=%c duty=%hu max=%hu")

	RegisterCommand("set_pwm", "oid=%c duty=%hu", handleSetPWM)
	RegisterCommand("set_pwm_fraction", "oid=%c permille=%hu", handleSetPWMFraction)
	RegisterCommand("enable_pwm", "oid=%c", handleEnablePWM)
	RegisterCommand("disable_pwm", "oid=%c", handleDisablePWM)

	RegisterCommand("list_pwm", "", handleListPWM)
	RegisterResponse("pwm_output", "oid=%c name=%*s")

	RegisterConstant("PWM_FRACTION_SCALE", FractionScale)
}

// decodeOutput reads an oid argument and resolves it
func decodeOutput(data *[]byte) (uint8, PWMOutput, error) {
	v, err := protocol.DecodeVLQUint(data)
	if err != nil {
		return 0, nil, err
	}
	if v > 0xFF {
		return 0, nil, fmt.Errorf("%w: oid %d", ErrBadArgument, v)
	}
	oid := uint8(v)
	out, err := LookupOutput(oid)
	return oid, out, err
}

// Format: get_pwm oid=%c
func handleGetPWM(data *[]byte) error {
	oid, out, err := decodeOutput(data)
	if err != nil {
		return err
	}
	sendPWMState(oid, out)
	return nil
}

func sendPWMState(oid uint8, out PWMOutput) {
	enabled := out.IsEnabled()
	duty := out.GetDuty()
	maxDuty := out.GetMaxDuty()
	SendResponse("pwm_state", func(o *protocol.Output) {
		protocol.EncodeVLQUint(o, uint32(oid))
		protocol.EncodeVLQBool(o, enabled)
		protocol.EncodeVLQUint(o, uint32(duty))
		protocol.EncodeVLQUint(o, uint32(maxDuty))
	})
}

// Format: set_pwm oid=%c duty=%hu
//
// The duty is written as is; values above max hold the output at 100%.
func handleSetPWM(data *[]byte) error {
	_, out, err := decodeOutput(data)
	if err != nil {
		return err
	}
	duty, err := protocol.DecodeVLQUint(data)
	if err != nil {
		return err
	}
	if duty > 0xFFFF {
		return fmt.Errorf("%w: duty %d", ErrBadArgument, duty)
	}
	if IsShutdown() {
		return ErrShutdown
	}
	out.SetDuty(uint16(duty))
	return nil
}

// Format: set_pwm_fraction oid=%c permille=%hu
func handleSetPWMFraction(data *[]byte) error {
	_, out, err := decodeOutput(data)
	if err != nil {
		return err
	}
	permille, err := protocol.DecodeVLQUint(data)
	if err != nil {
		return err
	}
	if IsShutdown() {
		return ErrShutdown
	}
	out.SetDuty(FractionToDuty(permille, out.GetMaxDuty()))
	return nil
}

// FractionToDuty scales permille (saturated at FractionScale) onto 0..maxDuty
func FractionToDuty(permille uint32, maxDuty uint16) uint16 {
	if permille > FractionScale {
		permille = FractionScale
	}
	return uint16(permille * uint32(maxDuty) / FractionScale)
}

// Format: enable_pwm oid=%c
func handleEnablePWM(data *[]byte) error {
	_, out, err := decodeOutput(data)
	if err != nil {
		return err
	}
	if IsShutdown() {
		return ErrShutdown
	}
	out.Enable()
	return nil
}

// Format: disable_pwm oid=%c
func handleDisablePWM(data *[]byte) error {
	_, out, err := decodeOutput(data)
	if err != nil {
		return err
	}
	out.Disable()
	return nil
}

// Format: list_pwm
func handleListPWM(_ *[]byte) error {
	for _, oid := range OutputOIDs() {
		oid, name := oid, OutputName(oid)
		SendResponse("pwm_output", func(o *protocol.Output) {
			protocol.EncodeVLQUint(o, uint32(oid))
			protocol.EncodeVLQBytes(o, []byte(name))
		})
	}
	return nil
}

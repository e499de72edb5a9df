package core

import (
	"errors"
	"sync/atomic"

	"l0pwm/protocol"
)

var (
	ErrShutdown    = errors.New("core: firmware is shut down")
	ErrBadArgument = errors.New("core: argument out of range")
)

// commandErrorMax bounds the message text of a command_error report so it
// fits a frame next to other queued responses.
const commandErrorMax = 40

var isShutdown uint32 // atomic bool

// InitCoreCommands registers the protocol level commands. identify_response
// and identify must keep IDs 0 and 1: the host knows them before it has
// downloaded the dictionary.
func InitCoreCommands() {
	RegisterResponse("identify_response", "offset=%u data=%*s")
	RegisterCommand("identify", "offset=%u count=%c", handleIdentify)

	RegisterCommand("emergency_stop", "", handleEmergencyStop)
	RegisterCommand("get_config", "", handleGetConfig)
	RegisterResponse("config", "is_shutdown=%c outputs=%c")
	RegisterCommand("set_debug", "enable=%c", handleSetDebug)
	RegisterResponse("command_error", "cmd=%u msg=%*s")
}

// handleIdentify returns a chunk of the dictionary
func handleIdentify(data *[]byte) error {
	offset, err := protocol.DecodeVLQUint(data)
	if err != nil {
		return err
	}
	count, err := protocol.DecodeVLQUint(data)
	if err != nil {
		return err
	}
	if count > 0xFF {
		return ErrBadArgument
	}
	chunk := GetGlobalDictionary().GetChunk(offset, uint8(count))

	SendResponse("identify_response", func(o *protocol.Output) {
		protocol.EncodeVLQUint(o, offset)
		protocol.EncodeVLQBytes(o, chunk)
	})
	return nil
}

func handleEmergencyStop(_ *[]byte) error {
	TryShutdown("emergency_stop")
	return nil
}

func handleGetConfig(_ *[]byte) error {
	n := len(OutputOIDs())
	SendResponse("config", func(o *protocol.Output) {
		protocol.EncodeVLQBool(o, IsShutdown())
		protocol.EncodeVLQUint(o, uint32(n))
	})
	return nil
}

func handleSetDebug(data *[]byte) error {
	enable, err := protocol.DecodeVLQUint(data)
	if err != nil {
		return err
	}
	SetDebugEnabled(enable != 0)
	return nil
}

// ReportCommandError tells the host that command cmdID failed with err. The
// transport calls it for any handler error, so a rejected request is never
// mistaken for success.
func ReportCommandError(cmdID uint16, err error) {
	msg := err.Error()
	if len(msg) > commandErrorMax {
		msg = msg[:commandErrorMax]
	}
	DebugPrintln("[CORE] command " + itoa(int(cmdID)) + " failed: " + msg)
	SendResponse("command_error", func(o *protocol.Output) {
		protocol.EncodeVLQUint(o, uint32(cmdID))
		protocol.EncodeVLQBytes(o, []byte(msg))
	})
}

// TryShutdown disables every output and refuses further output changes
// until ResetFirmwareState.
func TryShutdown(reason string) {
	atomic.StoreUint32(&isShutdown, 1)
	ShutdownAllOutputs()
	DebugPrintln("[CORE] shutdown: " + reason)
}

func IsShutdown() bool {
	return atomic.LoadUint32(&isShutdown) != 0
}

// ResetFirmwareState clears the shutdown flag. Called when the host restarts
// its sequence numbering.
func ResetFirmwareState() {
	atomic.StoreUint32(&isShutdown, 0)
}

//go:build tinygo && (stm32l0x2 || stm32l072 || stm32l082)

package main

import (
	"machine"
	"time"

	"l0pwm/core"
	"l0pwm/hal/rcc"
	"l0pwm/protocol"
)

var transport *protocol.Transport

func main() {
	machine.Serial.Configure(machine.UARTConfig{BaudRate: baudRate})

	core.InitCoreCommands()
	core.InitPWMCommands()
	core.RegisterResponse("debug_output", "msg=%*s")
	core.RegisterConstant("MCU", mcuName)

	r := rcc.New(clockConfig)
	core.RegisterConstant("CLOCK_FREQ", r.Clocks.APB1().Hz())

	if _, err := setupOutputs(r); err != nil {
		for {
			println("pwm setup failed:", err.Error())
			time.Sleep(time.Second)
		}
	}

	transport = protocol.NewTransport(writeSerial, core.DispatchCommand)
	transport.OnReset = core.ResetFirmwareState
	transport.OnCommandError = core.ReportCommandError
	core.SetResponder(transport)

	// Debug lines travel to the host as responses of the command being run.
	core.SetDebugWriter(func(s string) {
		if len(s) > debugMsgMax {
			s = s[:debugMsgMax]
		}
		core.SendResponse("debug_output", func(o *protocol.Output) {
			protocol.EncodeVLQBytes(o, []byte(s))
		})
	})

	serialLoop()
}

// serialLoop feeds received bytes to the transport. Unconsumed bytes are a
// partial frame and stay buffered.
func serialLoop() {
	buf := make([]byte, 0, 2*protocol.MessageLengthMax)
	for {
		for machine.Serial.Buffered() > 0 {
			b, err := machine.Serial.ReadByte()
			if err != nil {
				break
			}
			if len(buf) == cap(buf) {
				buf = buf[:0]
			}
			buf = append(buf, b)
		}
		if len(buf) > 0 {
			n := transport.Receive(buf)
			buf = buf[:copy(buf, buf[n:])]
		}
		time.Sleep(time.Millisecond)
	}
}

func writeSerial(frame []byte) {
	machine.Serial.Write(frame)
}

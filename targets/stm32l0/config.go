//go:build tinygo && (stm32l0x2 || stm32l072 || stm32l082)

package main

import "l0pwm/hal/rcc"

const (
	baudRate = 115200

	// All four TIM2 channels share one period. 50 Hz suits the servo on
	// channel 1 and is slow enough for LEDs and fan drivers.
	outputFrequency = rcc.Hertz(50)

	// Neutral position of a standard hobby servo
	servoCenterMicros = 1500

	// debug_output payloads must fit in a single frame
	debugMsgMax = 48
)

// Names reported by list_pwm, indexed by OID
var outputNames = [4]string{"servo", "pa1", "pa2", "pa3"}

var clockConfig = rcc.DefaultConfig()

// Package protocol implements the framing and integer encoding of the
// Klipper serial protocol used to control the PWM outputs from a host.
//
// A frame is
//
//	len seq payload... crc_hi crc_lo 0x7E
//
// where len counts the whole frame, seq carries the destination bits and a
// four-bit sequence number, and the payload is a run of commands, each a
// VLQ command ID followed by VLQ-encoded arguments.
package protocol

// Version of the firmware protocol surface
const Version = "0.1.0"

const (
	MessageHeaderSize  = 2
	MessageTrailerSize = 3
	MessageLengthMin   = MessageHeaderSize + MessageTrailerSize
	MessageLengthMax   = 64
	MessagePayloadMax  = MessageLengthMax - MessageLengthMin

	MessagePositionLen = 0
	MessagePositionSeq = 1
	MessageValueSync   = 0x7E

	// MessageDest marks frames sent by the host.
	MessageDest    = 0x10
	MessageSeqMask = 0x0F
)

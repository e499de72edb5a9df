package protocol

import "errors"

var (
	ErrNeedMore   = errors.New("protocol: incomplete frame")
	ErrBadLength  = errors.New("protocol: invalid frame length")
	ErrBadSync    = errors.New("protocol: missing sync byte")
	ErrBadCRC     = errors.New("protocol: crc mismatch")
	ErrPayloadLen = errors.New("protocol: payload too large")
)

// EncodeFrame wraps payload into a frame with the given sequence byte.
func EncodeFrame(seq uint8, payload []byte) ([]byte, error) {
	if len(payload) > MessagePayloadMax {
		return nil, ErrPayloadLen
	}
	n := len(payload) + MessageLengthMin
	frame := make([]byte, 0, n)
	frame = append(frame, byte(n), seq)
	frame = append(frame, payload...)
	crc := CRC16(frame)
	return append(frame, byte(crc>>8), byte(crc), MessageValueSync), nil
}

// DecodeFrame parses the frame at the start of data. It returns the
// sequence byte, the payload (aliasing data) and the frame length. With
// ErrNeedMore the caller should wait for more bytes; any other error means
// the leading bytes are not a valid frame.
func DecodeFrame(data []byte) (seq uint8, payload []byte, n int, err error) {
	if len(data) < MessageLengthMin {
		return 0, nil, 0, ErrNeedMore
	}
	n = int(data[MessagePositionLen])
	if n < MessageLengthMin || n > MessageLengthMax {
		return 0, nil, 0, ErrBadLength
	}
	if len(data) < n {
		return 0, nil, 0, ErrNeedMore
	}
	if data[n-1] != MessageValueSync {
		return 0, nil, 0, ErrBadSync
	}
	want := uint16(data[n-3])<<8 | uint16(data[n-2])
	if CRC16(data[:n-MessageTrailerSize]) != want {
		return 0, nil, 0, ErrBadCRC
	}
	return data[MessagePositionSeq], data[MessageHeaderSize : n-MessageTrailerSize], n, nil
}

package protocol

import "errors"

var (
	ErrInvalidVLQ     = errors.New("protocol: invalid VLQ encoding")
	ErrBufferTooSmall = errors.New("protocol: truncated argument")
	ErrPayloadFull    = errors.New("protocol: payload exceeds frame size")
)

// Output accumulates a frame payload.
type Output struct {
	buf [MessagePayloadMax]byte
	n   int
	err error
}

// Bytes returns the encoded payload.
func (o *Output) Bytes() []byte { return o.buf[:o.n] }

// Len returns the number of encoded bytes.
func (o *Output) Len() int { return o.n }

// Err reports whether any write overflowed the payload.
func (o *Output) Err() error { return o.err }

// Reset empties the payload.
func (o *Output) Reset() {
	o.n = 0
	o.err = nil
}

func (o *Output) put(p ...byte) {
	if o.n+len(p) > len(o.buf) {
		o.err = ErrPayloadFull
		return
	}
	o.n += copy(o.buf[o.n:], p)
}

// EncodeVLQInt appends v using Klipper's variable length encoding: seven
// bits per byte, most significant first, high bit set on all but the last.
func EncodeVLQInt(o *Output, v int32) {
	var tmp [5]byte
	i := 0
	if v < -(1<<26) || v >= 3<<26 {
		tmp[i] = byte(v>>28)&0x7F | 0x80
		i++
	}
	if v < -(1<<19) || v >= 3<<19 {
		tmp[i] = byte(v>>21)&0x7F | 0x80
		i++
	}
	if v < -(1<<12) || v >= 3<<12 {
		tmp[i] = byte(v>>14)&0x7F | 0x80
		i++
	}
	if v < -(1<<5) || v >= 3<<5 {
		tmp[i] = byte(v>>7)&0x7F | 0x80
		i++
	}
	tmp[i] = byte(v) & 0x7F
	o.put(tmp[:i+1]...)
}

// EncodeVLQUint appends an unsigned value.
func EncodeVLQUint(o *Output, v uint32) {
	EncodeVLQInt(o, int32(v))
}

// EncodeVLQBool appends a boolean as 0 or 1.
func EncodeVLQBool(o *Output, b bool) {
	if b {
		EncodeVLQInt(o, 1)
		return
	}
	EncodeVLQInt(o, 0)
}

// EncodeVLQBytes appends a length-prefixed byte string.
func EncodeVLQBytes(o *Output, p []byte) {
	EncodeVLQUint(o, uint32(len(p)))
	o.put(p...)
}

// DecodeVLQInt reads one value from the front of *data and advances it.
func DecodeVLQInt(data *[]byte) (int32, error) {
	d := *data
	if len(d) == 0 {
		return 0, ErrBufferTooSmall
	}
	c := uint32(d[0])
	v := c & 0x7F
	if c&0x60 == 0x60 {
		v |= ^uint32(0x1F)
	}
	i := 1
	for c&0x80 != 0 {
		if i >= len(d) {
			return 0, ErrBufferTooSmall
		}
		if i == 5 {
			return 0, ErrInvalidVLQ
		}
		c = uint32(d[i])
		v = v<<7 | c&0x7F
		i++
	}
	*data = d[i:]
	return int32(v), nil
}

// DecodeVLQUint reads an unsigned value.
func DecodeVLQUint(data *[]byte) (uint32, error) {
	v, err := DecodeVLQInt(data)
	return uint32(v), err
}

// DecodeVLQBytes reads a length-prefixed byte string. The result aliases
// the input.
func DecodeVLQBytes(data *[]byte) ([]byte, error) {
	n, err := DecodeVLQUint(data)
	if err != nil {
		return nil, err
	}
	if uint32(len(*data)) < n {
		return nil, ErrBufferTooSmall
	}
	p := (*data)[:n]
	*data = (*data)[n:]
	return p, nil
}

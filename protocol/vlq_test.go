package protocol

import (
	"bytes"
	"testing"
)

func TestVLQRoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 31, 32, 95, 96, -32, -33, 127, 128, 4095, 65535,
		-65535, 1000000, -1000000, 1 << 30, -(1 << 30)}
	for _, v := range values {
		var o Output
		EncodeVLQInt(&o, v)
		data := o.Bytes()
		got, err := DecodeVLQInt(&data)
		if err != nil {
			t.Errorf("decode %d: %v", v, err)
			continue
		}
		if got != v {
			t.Errorf("round trip %d -> % x -> %d", v, o.Bytes(), got)
		}
		if len(data) != 0 {
			t.Errorf("%d: %d bytes left after decode", v, len(data))
		}
	}
}

func TestVLQKnownEncodings(t *testing.T) {
	tests := []struct {
		v    uint32
		want []byte
	}{
		{0, []byte{0x00}},
		{95, []byte{0x5F}},
		{96, []byte{0x80, 0x60}},
		{31999, []byte{0x81, 0xF9, 0x7F}},
		{65535, []byte{0x83, 0xFF, 0x7F}},
	}
	for _, tt := range tests {
		var o Output
		EncodeVLQUint(&o, tt.v)
		if !bytes.Equal(o.Bytes(), tt.want) {
			t.Errorf("EncodeVLQUint(%d) = % x, expected % x", tt.v, o.Bytes(), tt.want)
		}
	}
}

func TestVLQDecodeErrors(t *testing.T) {
	empty := []byte{}
	if _, err := DecodeVLQUint(&empty); err != ErrBufferTooSmall {
		t.Errorf("empty input: got %v", err)
	}
	truncated := []byte{0x81, 0xF9}
	if _, err := DecodeVLQUint(&truncated); err != ErrBufferTooSmall {
		t.Errorf("truncated input: got %v", err)
	}
	if len(truncated) != 2 {
		t.Error("failed decode advanced the input")
	}
	long := []byte{0x81, 0x81, 0x81, 0x81, 0x81, 0x01}
	if _, err := DecodeVLQUint(&long); err != ErrInvalidVLQ {
		t.Errorf("overlong input: got %v", err)
	}
}

func TestVLQBytes(t *testing.T) {
	var o Output
	EncodeVLQBytes(&o, []byte("pwm0"))
	EncodeVLQUint(&o, 7)

	data := o.Bytes()
	s, err := DecodeVLQBytes(&data)
	if err != nil || string(s) != "pwm0" {
		t.Fatalf("DecodeVLQBytes = %q, %v", s, err)
	}
	v, err := DecodeVLQUint(&data)
	if err != nil || v != 7 {
		t.Errorf("trailing value = %d, %v", v, err)
	}
}

func TestOutputOverflow(t *testing.T) {
	var o Output
	EncodeVLQBytes(&o, make([]byte, MessagePayloadMax))
	if o.Err() != ErrPayloadFull {
		t.Errorf("Err() = %v, expected ErrPayloadFull", o.Err())
	}
}

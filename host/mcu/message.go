package mcu

import (
	"fmt"
	"strconv"
	"strings"

	"l0pwm/protocol"
)

// Response is a decoded MCU to host message
type Response struct {
	Name string
	msg  *Message
	args map[string]any
}

// Uint returns an integer argument, or 0 when absent
func (r *Response) Uint(name string) uint32 {
	switch v := r.args[name].(type) {
	case uint32:
		return v
	case int32:
		return uint32(v)
	}
	return 0
}

// Int returns a signed integer argument
func (r *Response) Int(name string) int32 { return int32(r.Uint(name)) }

// Bytes returns a buffer argument
func (r *Response) Bytes(name string) []byte {
	b, _ := r.args[name].([]byte)
	return b
}

// Bool returns an integer argument as a flag
func (r *Response) Bool(name string) bool { return r.Uint(name) != 0 }

func (r *Response) String() string {
	var b strings.Builder
	b.WriteString(r.Name)
	for _, p := range r.msg.Params {
		b.WriteByte(' ')
		b.WriteString(p.Name)
		b.WriteByte('=')
		switch v := r.args[p.Name].(type) {
		case []byte:
			b.WriteString(strconv.Quote(string(v)))
		default:
			fmt.Fprint(&b, v)
		}
	}
	return b.String()
}

// Encode appends the message ID and args to o. Integer args may be any
// Go integer type; buffer args are string or []byte.
func (m *Message) Encode(o *protocol.Output, args ...any) error {
	if len(args) != len(m.Params) {
		return fmt.Errorf("%s: expected %d arguments, got %d", m.Name, len(m.Params), len(args))
	}
	protocol.EncodeVLQUint(o, uint32(m.ID))
	for i, p := range m.Params {
		if p.IsBytes() {
			switch v := args[i].(type) {
			case string:
				protocol.EncodeVLQBytes(o, []byte(v))
			case []byte:
				protocol.EncodeVLQBytes(o, v)
			default:
				return fmt.Errorf("%s: %s must be a string, got %T", m.Name, p.Name, args[i])
			}
			continue
		}
		v, err := toInt32(args[i])
		if err != nil {
			return fmt.Errorf("%s: %s: %w", m.Name, p.Name, err)
		}
		protocol.EncodeVLQInt(o, v)
	}
	return o.Err()
}

func toInt32(v any) (int32, error) {
	switch v := v.(type) {
	case int:
		return int32(v), nil
	case int32:
		return v, nil
	case int64:
		return int32(v), nil
	case uint:
		return int32(v), nil
	case uint8:
		return int32(v), nil
	case uint16:
		return int32(v), nil
	case uint32:
		return int32(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("not an integer: %T", v)
}

// decode reads m's arguments from the front of data
func (m *Message) decode(data *[]byte) (*Response, error) {
	r := &Response{Name: m.Name, msg: m, args: make(map[string]any, len(m.Params))}
	for _, p := range m.Params {
		switch {
		case p.IsBytes():
			b, err := protocol.DecodeVLQBytes(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %s: %w", m.Name, p.Name, err)
			}
			r.args[p.Name] = append([]byte(nil), b...)
		case p.IsSigned():
			v, err := protocol.DecodeVLQInt(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %s: %w", m.Name, p.Name, err)
			}
			r.args[p.Name] = v
		default:
			v, err := protocol.DecodeVLQUint(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %s: %w", m.Name, p.Name, err)
			}
			r.args[p.Name] = v
		}
	}
	return r, nil
}

// DecodePayload splits a frame payload into responses
func (d *Dictionary) DecodePayload(payload []byte) ([]*Response, error) {
	var out []*Response
	for len(payload) > 0 {
		id, err := protocol.DecodeVLQUint(&payload)
		if err != nil {
			return out, err
		}
		m, ok := d.Message(uint16(id))
		if !ok {
			return out, fmt.Errorf("unknown message id %d", id)
		}
		r, err := m.decode(&payload)
		if err != nil {
			return out, err
		}
		out = append(out, r)
	}
	return out, nil
}

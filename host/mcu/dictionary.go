package mcu

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Param is one "name=%fmt" field of a message format
type Param struct {
	Name string
	Type string // "%u", "%i", "%c", "%hu", "%hi", "%*s" or "%.*s"
}

// IsBytes reports whether the parameter is a length-prefixed buffer
func (p Param) IsBytes() bool { return p.Type == "%*s" || p.Type == "%.*s" }

// IsSigned reports whether the parameter decodes as a signed integer
func (p Param) IsSigned() bool { return p.Type == "%i" || p.Type == "%hi" }

// Message is one dictionary entry
type Message struct {
	ID     uint16
	Name   string
	Params []Param
}

// Dictionary is the parsed identify download
type Dictionary struct {
	Version   string
	Constants map[string]string
	Messages  []*Message
	byName    map[string]*Message
}

// bootstrap holds the two messages the firmware always registers first
var bootstrap = mustParse("identify_response offset=%u data=%*s\nidentify offset=%u count=%c\n")

// ParseDictionary parses the firmware's dictionary text
func ParseDictionary(data []byte) (*Dictionary, error) {
	d := &Dictionary{
		Constants: make(map[string]string),
		byName:    make(map[string]*Message),
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			name, value, _ := strings.Cut(line[1:], " ")
			if name == "version" {
				d.Version = value
			} else {
				d.Constants[name] = value
			}
			continue
		}
		msg, err := parseMessage(line)
		if err != nil {
			return nil, err
		}
		msg.ID = uint16(len(d.Messages))
		if _, dup := d.byName[msg.Name]; dup {
			return nil, fmt.Errorf("duplicate message %q", msg.Name)
		}
		d.Messages = append(d.Messages, msg)
		d.byName[msg.Name] = msg
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func mustParse(text string) *Dictionary {
	d, err := ParseDictionary([]byte(text))
	if err != nil {
		panic(err)
	}
	return d
}

func parseMessage(line string) (*Message, error) {
	fields := strings.Fields(line)
	msg := &Message{Name: fields[0]}
	for _, f := range fields[1:] {
		name, typ, ok := strings.Cut(f, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("message %s: malformed parameter %q", msg.Name, f)
		}
		switch typ {
		case "%u", "%i", "%c", "%hu", "%hi", "%*s", "%.*s":
		default:
			return nil, fmt.Errorf("message %s: unsupported type %q", msg.Name, typ)
		}
		msg.Params = append(msg.Params, Param{Name: name, Type: typ})
	}
	return msg, nil
}

// Lookup finds a message by name
func (d *Dictionary) Lookup(name string) (*Message, bool) {
	m, ok := d.byName[name]
	return m, ok
}

// Message returns the message with the given ID
func (d *Dictionary) Message(id uint16) (*Message, bool) {
	if int(id) >= len(d.Messages) {
		return nil, false
	}
	return d.Messages[id], true
}

// ConstantNames returns the constant names in sorted order
func (d *Dictionary) ConstantNames() []string {
	names := maps.Keys(d.Constants)
	slices.Sort(names)
	return names
}

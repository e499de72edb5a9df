package core

import (
	"strconv"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"l0pwm/protocol"
)

// Dictionary is the text the host downloads with identify. Lines starting
// with '#' carry the version and constants; every other line is a message
// from the registry and its position is the message ID.
type Dictionary struct {
	mu        sync.RWMutex
	reg       *CommandRegistry
	version   string
	constants map[string]string
}

var globalDictionary = NewDictionary(globalRegistry)

func NewDictionary(reg *CommandRegistry) *Dictionary {
	return &Dictionary{
		reg:       reg,
		version:   "l0pwm-" + protocol.Version,
		constants: make(map[string]string),
	}
}

// RegisterConstant adds a constant to the global dictionary
func RegisterConstant(name string, value any) {
	globalDictionary.AddConstant(name, value)
}

func GetGlobalDictionary() *Dictionary { return globalDictionary }

func (d *Dictionary) AddConstant(name string, value any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.constants[name] = valueToString(value)
}

// Generate renders the dictionary. Constants are sorted by name.
func (d *Dictionary) Generate() []byte {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var b strings.Builder
	b.WriteString("#version ")
	b.WriteString(d.version)
	b.WriteByte('\n')

	names := maps.Keys(d.constants)
	slices.Sort(names)
	for _, name := range names {
		b.WriteByte('#')
		b.WriteString(name)
		b.WriteByte(' ')
		b.WriteString(d.constants[name])
		b.WriteByte('\n')
	}
	b.WriteString(d.reg.GetDictionary())
	return []byte(b.String())
}

// GetChunk returns at most count bytes starting at offset; past the end it
// returns an empty chunk, which tells the host the download is complete.
func (d *Dictionary) GetChunk(offset uint32, count uint8) []byte {
	data := d.Generate()
	if offset >= uint32(len(data)) {
		return []byte{}
	}
	end := offset + uint32(count)
	if end > uint32(len(data)) {
		end = uint32(len(data))
	}
	return data[offset:end]
}

func valueToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case bool:
		return strconv.FormatBool(val)
	}
	return ""
}

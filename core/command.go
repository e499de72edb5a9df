package core

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"l0pwm/protocol"
)

var ErrUnknownCommand = errors.New("core: unknown command")

// CommandHandler decodes its own arguments from data and executes
type CommandHandler func(data *[]byte) error

// Command is one dictionary entry. Responses have no handler.
type Command struct {
	ID      uint16
	Name    string
	Format  string // e.g. "oid=%c duty=%hu"
	Handler CommandHandler
}

// IsResponse reports whether the entry is an MCU to host message
func (c *Command) IsResponse() bool { return c.Handler == nil }

// CommandRegistry allocates message IDs in registration order
type CommandRegistry struct {
	mu         sync.RWMutex
	commands   []*Command
	nameToID   map[string]uint16
	dictionary string
}

var globalRegistry = NewCommandRegistry()

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{nameToID: make(map[string]uint16)}
}

// RegisterCommand adds a host to MCU command to the global registry
func RegisterCommand(name, format string, handler CommandHandler) uint16 {
	return globalRegistry.Register(name, format, handler)
}

// RegisterResponse adds an MCU to host message to the global registry
func RegisterResponse(name, format string) uint16 {
	return globalRegistry.Register(name, format, nil)
}

// Register adds a message and returns its ID. Registering a name twice
// returns the existing ID.
func (r *CommandRegistry) Register(name, format string, handler CommandHandler) uint16 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.nameToID[name]; ok {
		return id
	}
	id := uint16(len(r.commands))
	r.commands = append(r.commands, &Command{
		ID:      id,
		Name:    name,
		Format:  format,
		Handler: handler,
	})
	r.nameToID[name] = id
	r.rebuildDictionary()
	return id
}

func (r *CommandRegistry) GetCommand(id uint16) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if int(id) >= len(r.commands) {
		return nil, false
	}
	return r.commands[id], true
}

func (r *CommandRegistry) GetCommandByName(name string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.nameToID[name]
	if !ok {
		return nil, false
	}
	return r.commands[id], true
}

func (r *CommandRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// Dispatch runs the handler for cmdID. It has the protocol.CommandHandler
// signature so a registry can drive a Transport directly.
func (r *CommandRegistry) Dispatch(cmdID uint16, data *[]byte) error {
	cmd, ok := r.GetCommand(cmdID)
	if !ok || cmd.IsResponse() {
		return ErrUnknownCommand
	}
	DebugPrintln("[CMD] " + cmd.Name)
	return cmd.Handler(data)
}

// GetDictionary returns one "name format" line per message, in ID order
func (r *CommandRegistry) GetDictionary() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dictionary
}

// must be called with lock held
func (r *CommandRegistry) rebuildDictionary() {
	var b strings.Builder
	for _, cmd := range r.commands {
		b.WriteString(cmd.Name)
		if cmd.Format != "" {
			b.WriteByte(' ')
			b.WriteString(cmd.Format)
		}
		b.WriteByte('\n')
	}
	r.dictionary = b.String()
}

func GetGlobalRegistry() *CommandRegistry { return globalRegistry }

// DispatchCommand dispatches through the global registry
func DispatchCommand(cmdID uint16, data *[]byte) error {
	return globalRegistry.Dispatch(cmdID, data)
}

// Responder queues response messages for the host
type Responder interface {
	Respond(cmdID uint16, args func(o *protocol.Output))
}

var globalResponder Responder

// SetResponder installs the sink for responses, normally a *protocol.Transport
func SetResponder(r Responder) {
	globalResponder = r
}

// SendResponse encodes a registered response. Unregistered names panic.
func SendResponse(name string, args func(o *protocol.Output)) {
	cmd, ok := globalRegistry.GetCommandByName(name)
	if !ok || !cmd.IsResponse() {
		panic("response not registered: " + name)
	}
	if globalResponder == nil {
		return
	}
	globalResponder.Respond(cmd.ID, args)
}

func itoa(n int) string { return strconv.Itoa(n) }

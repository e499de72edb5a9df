package core

import (
	"testing"

	"l0pwm/protocol"
)

// resetCore gives each test a fresh registry with the standard commands
func resetCore(t *testing.T) *recordingResponder {
	t.Helper()
	globalRegistry = NewCommandRegistry()
	globalDictionary = NewDictionary(globalRegistry)
	outputs = make(map[uint8]registeredOutput)
	ResetFirmwareState()
	SetDebugEnabled(false)
	SetDebugWriter(nil)
	InitCoreCommands()
	InitPWMCommands()

	r := &recordingResponder{}
	SetResponder(r)
	t.Cleanup(func() { SetResponder(nil) })
	return r
}

type response struct {
	name string
	data []byte
}

type recordingResponder struct {
	responses []response
}

func (r *recordingResponder) Respond(cmdID uint16, args func(o *protocol.Output)) {
	var o protocol.Output
	if args != nil {
		args(&o)
	}
	cmd, _ := globalRegistry.GetCommand(cmdID)
	r.responses = append(r.responses, response{name: cmd.Name, data: append([]byte(nil), o.Bytes()...)})
}

// uints decodes the i-th response as a run of integers
func (r *recordingResponder) uints(t *testing.T, i int, n int) []uint32 {
	t.Helper()
	if i >= len(r.responses) {
		t.Fatalf("only %d responses", len(r.responses))
	}
	data := r.responses[i].data
	vals := make([]uint32, n)
	for j := range vals {
		v, err := protocol.DecodeVLQUint(&data)
		if err != nil {
			t.Fatalf("response %d arg %d: %v", i, j, err)
		}
		vals[j] = v
	}
	return vals
}

type fakeOutput struct {
	enabled bool
	duty    uint16
	max     uint16
}

func (f *fakeOutput) Enable()             { f.enabled = true }
func (f *fakeOutput) Disable()            { f.enabled = false }
func (f *fakeOutput) IsEnabled() bool     { return f.enabled }
func (f *fakeOutput) GetDuty() uint16     { return f.duty }
func (f *fakeOutput) SetDuty(duty uint16) { f.duty = duty }
func (f *fakeOutput) GetMaxDuty() uint16  { return f.max }

// dispatch runs the named command with integer arguments
func dispatch(t *testing.T, name string, args ...uint32) error {
	t.Helper()
	cmd, ok := globalRegistry.GetCommandByName(name)
	if !ok {
		t.Fatalf("command %s not registered", name)
	}
	var o protocol.Output
	for _, a := range args {
		protocol.EncodeVLQUint(&o, a)
	}
	data := o.Bytes()
	err := DispatchCommand(cmd.ID, &data)
	if err == nil && len(data) != 0 {
		t.Errorf("%s left %d argument bytes unread", name, len(data))
	}
	return err
}

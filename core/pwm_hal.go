package core

import (
	"errors"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	ErrUnknownOID = errors.New("core: unknown output oid")
	ErrOIDInUse   = errors.New("core: output oid already registered")
)

// PWMOutput is the runtime surface of one bound timer channel. It is
// satisfied by *pwm.Output for any timer, channel and pin.
type PWMOutput interface {
	Enable()
	Disable()
	IsEnabled() bool
	GetDuty() uint16
	SetDuty(duty uint16)
	GetMaxDuty() uint16
}

type registeredOutput struct {
	name string
	out  PWMOutput
}

var (
	outputsMu sync.RWMutex
	outputs   = make(map[uint8]registeredOutput)
)

// RegisterOutput exposes out to the host under oid
func RegisterOutput(oid uint8, name string, out PWMOutput) error {
	outputsMu.Lock()
	defer outputsMu.Unlock()
	if _, ok := outputs[oid]; ok {
		return ErrOIDInUse
	}
	outputs[oid] = registeredOutput{name: name, out: out}
	return nil
}

func LookupOutput(oid uint8) (PWMOutput, error) {
	outputsMu.RLock()
	defer outputsMu.RUnlock()
	r, ok := outputs[oid]
	if !ok {
		return nil, ErrUnknownOID
	}
	return r.out, nil
}

// MustOutput returns the output registered under oid or panics
func MustOutput(oid uint8) PWMOutput {
	out, err := LookupOutput(oid)
	if err != nil {
		panic("PWM output not registered: " + itoa(int(oid)))
	}
	return out
}

// OutputName returns the name oid was registered with
func OutputName(oid uint8) string {
	outputsMu.RLock()
	defer outputsMu.RUnlock()
	return outputs[oid].name
}

// OutputOIDs lists the registered OIDs in ascending order
func OutputOIDs() []uint8 {
	outputsMu.RLock()
	oids := maps.Keys(outputs)
	outputsMu.RUnlock()
	slices.Sort(oids)
	return oids
}

// ShutdownAllOutputs disables every registered output
func ShutdownAllOutputs() {
	for _, oid := range OutputOIDs() {
		if out, err := LookupOutput(oid); err == nil {
			out.Disable()
		}
	}
}

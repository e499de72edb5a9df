package serial

import (
	"errors"
	"fmt"

	"github.com/tarm/serial"
)

// nativePort wraps a tarm/serial port
type nativePort struct {
	*serial.Port
	device string
}

// Open opens the device described by cfg
func Open(cfg Config) (Port, error) {
	if cfg.Device == "" {
		return nil, errors.New("serial: no device given")
	}
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}
	return &nativePort{Port: port, device: cfg.Device}, nil
}

func (p *nativePort) String() string { return p.device }

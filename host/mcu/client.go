// Package mcu is the host side client for the PWM firmware.
package mcu

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"l0pwm/host/serial"
	"l0pwm/protocol"
)

var (
	ErrTimeout       = errors.New("mcu: no response from firmware")
	ErrNoDictionary  = errors.New("mcu: dictionary not loaded")
	ErrUnknownMsg    = errors.New("mcu: unknown message")
	ErrNotConnected  = errors.New("mcu: not connected")
	ErrNoReply       = errors.New("mcu: command acknowledged without a reply")
	ErrCommandFailed = errors.New("mcu: firmware rejected command")
)

// identifyChunkLen keeps each identify_response inside one frame
const identifyChunkLen = 40

// Client frames commands for the firmware and decodes its responses
type Client struct {
	port serial.Port
	log  *logrus.Logger

	seq  uint8
	rbuf []byte
	dict *Dictionary

	// Timeout bounds the wait for the acknowledgement of one frame
	Timeout time.Duration
	// Retries is how many times an unacknowledged frame is resent
	Retries int
	// Settle is how long to keep reading after the acknowledgement for
	// responses that did not fit in the same frame
	Settle time.Duration
}

// New wraps an open port. A nil logger discards log output.
func New(port serial.Port, log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Client{
		port:    port,
		log:     log,
		seq:     protocol.MessageDest,
		dict:    bootstrap,
		Timeout: 500 * time.Millisecond,
		Retries: 3,
		Settle:  20 * time.Millisecond,
	}
}

// Connect opens the serial device and downloads the dictionary
func Connect(cfg serial.Config, log *logrus.Logger) (*Client, error) {
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, err
	}
	c := New(port, log)
	if err := c.Identify(); err != nil {
		port.Close()
		return nil, err
	}
	return c, nil
}

func (c *Client) Close() error {
	if c.port == nil {
		return ErrNotConnected
	}
	err := c.port.Close()
	c.port = nil
	return err
}

// Dictionary returns the downloaded dictionary, or nil before Identify
func (c *Client) Dictionary() *Dictionary {
	if c.dict == bootstrap {
		return nil
	}
	return c.dict
}

// Identify downloads and parses the firmware dictionary
func (c *Client) Identify() error {
	if err := c.port.Flush(); err != nil {
		c.log.WithError(err).Debug("flush failed")
	}
	c.dict = bootstrap

	var data []byte
	for {
		resps, err := c.Query("identify", uint32(len(data)), identifyChunkLen)
		if err != nil {
			return fmt.Errorf("identify at offset %d: %w", len(data), err)
		}
		chunk, ok := find(resps, "identify_response")
		if !ok {
			return fmt.Errorf("identify at offset %d: %w", len(data), ErrNoReply)
		}
		if off := chunk.Uint("offset"); off != uint32(len(data)) {
			return fmt.Errorf("identify: offset mismatch, sent %d got %d", len(data), off)
		}
		b := chunk.Bytes("data")
		if len(b) == 0 {
			break
		}
		data = append(data, b...)
	}

	dict, err := ParseDictionary(data)
	if err != nil {
		return fmt.Errorf("parse dictionary: %w", err)
	}
	c.dict = dict
	c.log.WithFields(logrus.Fields{
		"version":  dict.Version,
		"messages": len(dict.Messages),
		"bytes":    len(data),
	}).Info("dictionary loaded")
	return nil
}

// Send transmits one command and waits for its acknowledgement
func (c *Client) Send(name string, args ...any) error {
	_, err := c.Query(name, args...)
	return err
}

// Query transmits one command and returns every response the firmware
// sent back for it.
func (c *Client) Query(name string, args ...any) ([]*Response, error) {
	if c.port == nil {
		return nil, ErrNotConnected
	}
	msg, ok := c.dict.Lookup(name)
	if !ok {
		if c.dict == bootstrap {
			return nil, ErrNoDictionary
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownMsg, name)
	}
	var o protocol.Output
	if err := msg.Encode(&o, args...); err != nil {
		return nil, err
	}
	frame, err := protocol.EncodeFrame(c.seq, o.Bytes())
	if err != nil {
		return nil, err
	}
	next := (c.seq+1)&protocol.MessageSeqMask | protocol.MessageDest

	entry := c.log.WithField("cmd", name)
	for attempt := 0; attempt <= c.Retries; attempt++ {
		if attempt > 0 {
			entry.WithField("attempt", attempt).Warn("retransmitting")
		}
		entry.WithField("seq", c.seq&protocol.MessageSeqMask).Debug("send")
		if _, err := c.port.Write(frame); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		resps, acked, err := c.await(next)
		if err != nil {
			return nil, err
		}
		if acked {
			c.seq = next
			var failed error
			for _, r := range resps {
				switch r.Name {
				case "debug_output":
					entry.WithField("firmware", string(r.Bytes("msg"))).Info("debug")
					continue
				case "command_error":
					msg := string(r.Bytes("msg"))
					entry.WithField("firmware", msg).Warn("command failed")
					if failed == nil {
						failed = fmt.Errorf("%w: %s: %s", ErrCommandFailed, name, msg)
					}
					continue
				}
				entry.WithField("resp", r.String()).Debug("receive")
			}
			return resps, failed
		}
	}
	return nil, fmt.Errorf("%s: %w", name, ErrTimeout)
}

// await reads frames until one acknowledges seq, then keeps reading for
// Settle to pick up responses split over several frames.
func (c *Client) await(seq uint8) ([]*Response, bool, error) {
	var resps []*Response
	acked := false
	deadline := time.Now().Add(c.Timeout)
	for time.Now().Before(deadline) {
		fseq, payload, ok, err := c.readFrame()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			continue
		}
		if fseq != seq {
			c.log.WithField("seq", fseq&protocol.MessageSeqMask).Debug("stale frame")
			continue
		}
		rs, err := c.dict.DecodePayload(payload)
		if err != nil {
			c.log.WithError(err).Warn("undecodable response")
		}
		resps = append(resps, rs...)
		if !acked {
			acked = true
			deadline = time.Now().Add(c.Settle)
		}
	}
	return resps, acked, nil
}

// readFrame returns the next complete frame, or ok false after a read
// that produced no frame.
func (c *Client) readFrame() (seq uint8, payload []byte, ok bool, err error) {
	for {
		s, p, n, derr := protocol.DecodeFrame(c.rbuf)
		switch {
		case derr == nil:
			payload = append([]byte(nil), p...)
			c.rbuf = c.rbuf[n:]
			return s, payload, true, nil
		case derr != protocol.ErrNeedMore:
			c.log.WithError(derr).Debug("resync")
			c.rbuf = dropToSync(c.rbuf)
			continue
		}

		var buf [64]byte
		n, rerr := c.port.Read(buf[:])
		c.rbuf = append(c.rbuf, buf[:n]...)
		if rerr != nil && rerr != io.EOF {
			return 0, nil, false, fmt.Errorf("read: %w", rerr)
		}
		if n == 0 {
			return 0, nil, false, nil
		}
	}
}

// dropToSync discards bytes up to and including the next sync byte
func dropToSync(b []byte) []byte {
	for i, v := range b {
		if v == protocol.MessageValueSync {
			return b[i+1:]
		}
	}
	return b[:0]
}

func find(resps []*Response, name string) (*Response, bool) {
	for _, r := range resps {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

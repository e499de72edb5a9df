package protocol

import (
	"errors"
	"fmt"
)

// ErrCommandPanic reports a handler that panicked instead of returning.
var ErrCommandPanic = errors.New("protocol: command handler panicked")

// CommandHandler executes one command. It must consume exactly its own
// arguments from data.
type CommandHandler func(cmdID uint16, data *[]byte) error

// Transport is the MCU side of the link: it validates incoming frames,
// dispatches their commands and frames the responses.
type Transport struct {
	synchronized bool
	nextSeq      uint8

	write   func([]byte)
	handler CommandHandler
	resp    Output
	scratch Output

	// OnReset runs when the host restarts its sequence numbering.
	OnReset func()

	// OnCommandError runs when a command fails, before the frame's
	// responses are flushed, so it may queue a response of its own.
	OnCommandError func(cmdID uint16, err error)

	// Counters for diagnostics.
	FramesOK  uint32
	FramesBad uint32
	CmdErrors uint32
}

// NewTransport returns a synchronized transport writing frames with write.
func NewTransport(write func([]byte), handler CommandHandler) *Transport {
	return &Transport{
		synchronized: true,
		nextSeq:      MessageDest,
		write:        write,
		handler:      handler,
	}
}

// Receive processes the frames at the start of data and returns how many
// bytes were consumed. A trailing partial frame is left for the next call.
func (t *Transport) Receive(data []byte) int {
	start := len(data)
	for len(data) > 0 {
		if !t.synchronized {
			i := indexSync(data)
			if i < 0 {
				data = data[len(data):]
				break
			}
			data = data[i+1:]
			t.synchronized = true
			t.sendAck()
			continue
		}
		if data[0] == MessageValueSync {
			data = data[1:]
			continue
		}

		seq, payload, n, err := DecodeFrame(data)
		if err == ErrNeedMore {
			break
		}
		if err != nil || seq&^MessageSeqMask != MessageDest {
			t.FramesBad++
			t.synchronized = false
			continue
		}
		data = data[n:]
		t.FramesOK++

		if seq == MessageDest && t.nextSeq != MessageDest {
			t.nextSeq = MessageDest
			if t.OnReset != nil {
				t.OnReset()
			}
		}
		if seq != t.nextSeq {
			// Retransmission or gap: tell the host what we expect.
			t.sendAck()
			continue
		}
		t.nextSeq = (seq+1)&MessageSeqMask | MessageDest
		t.dispatch(payload)
		t.flush()
	}
	return start - len(data)
}

func (t *Transport) dispatch(payload []byte) {
	var id uint32
	defer func() {
		if r := recover(); r != nil {
			t.commandFailed(uint16(id), fmt.Errorf("%w: %v", ErrCommandPanic, r))
		}
	}()
	for len(payload) > 0 {
		var err error
		id, err = DecodeVLQUint(&payload)
		if err != nil {
			t.commandFailed(0, err)
			return
		}
		if err := t.handler(uint16(id), &payload); err != nil {
			t.commandFailed(uint16(id), err)
			return
		}
	}
}

// commandFailed drops the rest of the frame and reports err.
func (t *Transport) commandFailed(cmdID uint16, err error) {
	t.CmdErrors++
	if t.OnCommandError != nil {
		t.OnCommandError(cmdID, err)
	}
}

// Respond queues a response message. args encodes the arguments.
func (t *Transport) Respond(cmdID uint16, args func(o *Output)) {
	t.scratch.Reset()
	EncodeVLQUint(&t.scratch, uint32(cmdID))
	if args != nil {
		args(&t.scratch)
	}
	if t.scratch.Err() != nil {
		return
	}
	if t.resp.Len()+t.scratch.Len() > MessagePayloadMax {
		t.flush()
	}
	t.resp.put(t.scratch.Bytes()...)
}

// flush sends the queued responses; an empty frame acknowledges the host.
func (t *Transport) flush() {
	frame, err := EncodeFrame(t.nextSeq, t.resp.Bytes())
	t.resp.Reset()
	if err == nil {
		t.write(frame)
	}
}

func (t *Transport) sendAck() {
	frame, _ := EncodeFrame(t.nextSeq, nil)
	t.write(frame)
}

func indexSync(data []byte) int {
	for i, b := range data {
		if b == MessageValueSync {
			return i
		}
	}
	return -1
}

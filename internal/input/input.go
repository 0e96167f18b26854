// Package input turns the raw terminal byte stream into per-frame key
// state. Terminals only deliver key presses (no releases), so each key is
// considered held for a short window after its last press; that lets the
// game apply a lateral force for as long as a key repeats.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key counts as "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input is the current frame's key state.
type Input struct {
	Quit   bool
	Left   bool
	Right  bool
	Enter  bool
	Escape bool
}

// keyState tracks the last press time of each key.
type keyState struct {
	quit   time.Time
	left   time.Time
	right  time.Time
	enter  time.Time
	escape time.Time
}

// Stream delivers input bytes via a channel and remembers key timestamps.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads bytes from r into the stream.
// The channel closes when the reader fails (e.g. the session ended).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all pending bytes without blocking and returns the
// resulting key state. Arrow keys arrive as CSI escape sequences.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	return Input{
		Quit:   now.Sub(s.state.quit) < keyHoldDuration,
		Left:   now.Sub(s.state.left) < keyHoldDuration,
		Right:  now.Sub(s.state.right) < keyHoldDuration,
		Enter:  now.Sub(s.state.enter) < keyHoldDuration,
		Escape: now.Sub(s.state.escape) < keyHoldDuration,
	}
}

func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'h', 'H', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L', 'k', 'K':
		state.right = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	}
}

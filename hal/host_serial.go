//go:build !tinygo

package hal

import (
	"bufio"
	"io"
	"sync"
)

// hostSerial queues input bytes from stdin and the window keyboard so the
// firmware loop can poll them without blocking.
type hostSerial struct {
	mu sync.Mutex
	in chan byte
	w  io.Writer
}

func newHostSerial(w io.Writer) *hostSerial {
	return &hostSerial{in: make(chan byte, 256), w: w}
}

// pipe copies r into the input queue until EOF.
func (s *hostSerial) pipe(r io.Reader) {
	go func() {
		br := bufio.NewReader(r)
		for {
			b, err := br.ReadByte()
			if err != nil {
				return
			}
			s.in <- b
		}
	}()
}

// push queues b, dropping it when the queue is full.
func (s *hostSerial) push(b byte) {
	select {
	case s.in <- b:
	default:
	}
}

func (s *hostSerial) Buffered() int { return len(s.in) }

func (s *hostSerial) ReadByte() (byte, error) {
	select {
	case b := <-s.in:
		return b, nil
	default:
		return 0, ErrNoData
	}
}

func (s *hostSerial) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, ErrNotImplemented
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

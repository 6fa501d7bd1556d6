// Package command reads text commands from the serial port and applies them
// to the console.
package command

const maxLine = 128

// ByteSource is a non-blocking byte stream such as a USB CDC port.
type ByteSource interface {
	Buffered() int
	ReadByte() (byte, error)
}

// LineReader assembles newline-terminated lines from a ByteSource.
//
// Carriage returns are dropped and backspace removes the previous byte. A line
// longer than the buffer wraps around and loses its head.
type LineReader struct {
	src ByteSource
	buf [maxLine]byte
	n   int
}

// NewLineReader returns a reader with an empty line buffer.
func NewLineReader(src ByteSource) *LineReader {
	return &LineReader{src: src}
}

// Poll consumes buffered bytes until a line completes or the source runs dry.
func (r *LineReader) Poll() (string, bool) {
	for r.src.Buffered() > 0 {
		b, err := r.src.ReadByte()
		if err != nil {
			return "", false
		}
		switch b {
		case '\n':
			line := string(r.buf[:r.n])
			r.n = 0
			return line, true
		case '\r':
		case '\b', 0x7f:
			if r.n > 0 {
				r.n--
			}
		default:
			if r.n == maxLine {
				r.n = 0
			}
			r.buf[r.n] = b
			r.n++
		}
	}
	return "", false
}

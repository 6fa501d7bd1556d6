package command

import (
	"errors"
	"strings"
	"testing"
)

type memSource struct {
	data []byte
}

func (s *memSource) Buffered() int { return len(s.data) }

func (s *memSource) ReadByte() (byte, error) {
	if len(s.data) == 0 {
		return 0, errors.New("empty")
	}
	b := s.data[0]
	s.data = s.data[1:]
	return b, nil
}

func (s *memSource) feed(str string) { s.data = append(s.data, str...) }

func TestPollAssemblesLines(t *testing.T) {
	src := &memSource{}
	r := NewLineReader(src)

	src.feed("cle")
	if line, ok := r.Poll(); ok {
		t.Fatalf("Poll() = %q, true before newline", line)
	}

	src.feed("ar\r\ninfo\n")
	line, ok := r.Poll()
	if !ok || line != "clear" {
		t.Fatalf("Poll() = %q, %v, want \"clear\", true", line, ok)
	}
	line, ok = r.Poll()
	if !ok || line != "info" {
		t.Fatalf("Poll() = %q, %v, want \"info\", true", line, ok)
	}
	if _, ok := r.Poll(); ok {
		t.Fatal("Poll() ok = true on empty source")
	}
}

func TestPollBackspace(t *testing.T) {
	src := &memSource{}
	r := NewLineReader(src)

	src.feed("infx\bo\n")
	if line, _ := r.Poll(); line != "info" {
		t.Fatalf("Poll() = %q, want \"info\"", line)
	}

	src.feed("\b\ba\n")
	if line, _ := r.Poll(); line != "a" {
		t.Fatalf("Poll() = %q, want \"a\"", line)
	}
}

func TestPollOverflowWraps(t *testing.T) {
	src := &memSource{}
	r := NewLineReader(src)

	src.feed(strings.Repeat("x", maxLine) + "tail\n")
	line, ok := r.Poll()
	if !ok || line != "tail" {
		t.Fatalf("Poll() = %q, %v, want \"tail\", true", line, ok)
	}
}

func TestPollEmptyLine(t *testing.T) {
	src := &memSource{}
	r := NewLineReader(src)

	src.feed("\r\n")
	line, ok := r.Poll()
	if !ok || line != "" {
		t.Fatalf("Poll() = %q, %v, want \"\", true", line, ok)
	}
}

package command

import (
	"bytes"
	"reflect"
	"testing"
)

type fakeConsole struct {
	calls []string
}

func (c *fakeConsole) WriteLine(text string) { c.calls = append(c.calls, "write:"+text) }
func (c *fakeConsole) Clear()                { c.calls = append(c.calls, "clear") }
func (c *fakeConsole) DumpSystemInfo()       { c.calls = append(c.calls, "info") }

func TestHandle(t *testing.T) {
	con := &fakeConsole{}
	var echo bytes.Buffer
	d := NewDispatcher(con, &echo)

	d.Handle("clear")
	d.Handle("  info ")
	d.Handle("   ")
	d.Handle("hello there")

	want := []string{"clear", "info", "write:USB: hello there"}
	if !reflect.DeepEqual(con.calls, want) {
		t.Fatalf("calls = %q, want %q", con.calls, want)
	}
	if got := echo.String(); got != "Echo: hello there\r\n" {
		t.Fatalf("echo = %q", got)
	}
}

func TestHandleIsCaseSensitive(t *testing.T) {
	con := &fakeConsole{}
	d := NewDispatcher(con, nil)

	d.Handle("CLEAR")

	if want := []string{"write:USB: CLEAR"}; !reflect.DeepEqual(con.calls, want) {
		t.Fatalf("calls = %q, want %q", con.calls, want)
	}
}

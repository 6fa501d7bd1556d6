package command

import (
	"io"
	"strings"
)

// Console is the part of the console the command surface drives.
type Console interface {
	WriteLine(text string)
	Clear()
	DumpSystemInfo()
}

// Dispatcher maps command lines to console actions.
//
//	clear   empty the console
//	info    dump system information
//	other   echo to the console as "USB: <text>" and back to the sender
type Dispatcher struct {
	con  Console
	echo io.Writer
}

// NewDispatcher returns a dispatcher; echo may be nil.
func NewDispatcher(con Console, echo io.Writer) *Dispatcher {
	return &Dispatcher{con: con, echo: echo}
}

// Handle runs one command line. Blank input is ignored.
func (d *Dispatcher) Handle(line string) {
	in := strings.TrimSpace(line)
	switch in {
	case "":
		return
	case "clear":
		d.con.Clear()
	case "info":
		d.con.DumpSystemInfo()
	default:
		d.con.WriteLine("USB: " + in)
		if d.echo != nil {
			_, _ = io.WriteString(d.echo, "Echo: "+in+"\r\n")
		}
	}
}

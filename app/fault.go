package app

import (
	"fmt"
	"image/color"
	"strings"

	"dhtconsole/firmware/display"
	"dhtconsole/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyterm"
)

var faultBackground = color.RGBA{R: 128, A: 255}

// FaultError is returned by a step that panicked.
type FaultError struct {
	Value any
	Stack []byte
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("fault: %v", e.Value)
}

func recoverFault(h hal.HAL, err *error) {
	v := recover()
	if v == nil {
		return
	}
	fe := &FaultError{Value: v, Stack: captureStack()}
	showFault(h, fe)
	*err = fe
}

// showFault logs the fault and paints it over the whole panel with a terminal.
//
// The hardware scroll register is not used, so the text is cut to what fits
// on one screen.
func showFault(h hal.HAL, fe *FaultError) {
	lines := []string{fe.Error()}
	for _, line := range strings.Split(string(fe.Stack), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	d := disp.Displayer()
	if d == nil {
		return
	}
	w, ht := d.Size()
	if w <= 0 || ht <= 0 {
		return
	}

	face := display.SmallFace
	t := tinyterm.NewTerminal(d)
	t.Configure(&tinyterm.Config{
		Font:       face.Font,
		FontHeight: face.Height,
		FontOffset: face.Ascent,
	})
	_ = d.FillRectangle(0, 0, w, ht, faultBackground)

	_, glyph := tinyfont.LineWidth(face.Font, "0")
	cols := 1
	if glyph > 0 {
		cols = int(w) / int(glyph)
	}
	for _, line := range fitScreen(lines, cols, int(ht/face.Height)-1) {
		fmt.Fprintf(t, "%s\r\n", line)
	}
	_ = d.Display()
}

// fitScreen keeps the lines that fit in a cols x rows terminal without
// wrapping or scrolling. The last row stays free for the trailing newline.
func fitScreen(lines []string, cols, rows int) []string {
	rows--
	if rows <= 0 || cols <= 0 {
		return nil
	}
	if len(lines) > rows {
		lines = lines[:rows]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if len(line) >= cols {
			line = line[:cols-1]
		}
		out[i] = line
	}
	return out
}

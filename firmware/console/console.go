// Package console keeps the scrolling text log shown on the panel.
//
// A Buffer owns a Ring of lines and is the only component that draws into the
// console region. Every write re-renders the whole visible window, oldest line
// at the top, and mirrors the text to a diagnostic log sink.
package console

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DefaultMaxWidth is the widest line the panel shows, in characters.
	DefaultMaxWidth = 38

	ellipsis = "..."

	separator    = "------------------------"
	clearedLine  = "Console Cleared"
	infoHeadline = "System Info:"
)

// FontID selects a face on the Surface.
type FontID uint8

const (
	// FontSmall is the console text face.
	FontSmall FontID = iota + 1
)

// Surface is the drawing capability the console renders into.
type Surface interface {
	FillRegion(x, y, w, h int16, c color.RGBA)
	DrawText(text string, x, y int16, font FontID, c color.RGBA)
}

// Flusher is implemented by surfaces that buffer drawing until flushed.
type Flusher interface {
	Flush() error
}

// Logger receives a copy of every line written to the console.
type Logger interface {
	WriteLineString(s string)
}

// SystemInfo feeds DumpSystemInfo.
type SystemInfo interface {
	Platform() string
	FreeMemory() uint64
	Uptime() time.Duration
}

// InfoSource contributes extra lines to the system info block.
type InfoSource interface {
	InfoLines() []string
}

// Layout places the console region on the panel.
type Layout struct {
	// Left, Top, Width bound the region; its height is Lines*RowHeight.
	Left, Top, Width int16
	// Inset is the horizontal text offset inside the region.
	Inset     int16
	RowHeight int16
	MaxWidth  int
	Font      FontID

	Foreground color.RGBA
	Background color.RGBA

	// Lines containing HighlightPrefix are drawn in Highlight.
	// An empty prefix disables highlighting.
	HighlightPrefix string
	Highlight       color.RGBA
}

// DefaultLayout matches a 240x240 panel with 20 px rows starting at y=20.
func DefaultLayout() Layout {
	return Layout{
		Left:       0,
		Top:        20,
		Width:      240,
		Inset:      2,
		RowHeight:  20,
		MaxWidth:   DefaultMaxWidth,
		Font:       FontSmall,
		Foreground: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Background: color.RGBA{A: 255},
		Highlight:  color.RGBA{R: 255, G: 255, A: 255},
	}
}

// Config configures a Buffer. Zero fields take defaults.
type Config struct {
	Lines  int
	Layout *Layout
	Info   SystemInfo
}

// Buffer is the console: a ring of lines plus its renderer.
type Buffer struct {
	ring   *Ring
	surf   Surface
	log    Logger
	info   SystemInfo
	extra  []InfoSource
	layout Layout
}

// New returns an empty console drawing on surf and mirroring to log (may be nil).
func New(surf Surface, log Logger, cfg Config) *Buffer {
	layout := DefaultLayout()
	if cfg.Layout != nil {
		layout = *cfg.Layout
	}
	if layout.MaxWidth <= len(ellipsis) {
		layout.MaxWidth = DefaultMaxWidth
	}
	return &Buffer{
		ring:   NewRing(cfg.Lines),
		surf:   surf,
		log:    log,
		info:   cfg.Info,
		layout: layout,
	}
}

// AddInfoSource appends src to the system info block.
func (b *Buffer) AddInfoSource(src InfoSource) {
	if src != nil {
		b.extra = append(b.extra, src)
	}
}

// WriteLine stores text, redraws the console and mirrors text to the log.
func (b *Buffer) WriteLine(text string) {
	b.ring.Push(truncate(text, b.layout.MaxWidth))
	b.Render()
	if b.log != nil {
		b.log.WriteLineString(text)
	}
}

// Render redraws the visible window from the oldest surviving line down.
func (b *Buffer) Render() {
	if b.surf == nil {
		return
	}
	l := &b.layout
	b.surf.FillRegion(l.Left, l.Top, l.Width, regionHeight(b.ring.Cap(), l.RowHeight), l.Background)

	var row int16
	b.ring.Each(func(line string) {
		y := l.Top + row*l.RowHeight
		b.surf.DrawText(line, l.Left+l.Inset, y, l.Font, b.colorFor(line))
		row++
	})

	if f, ok := b.surf.(Flusher); ok {
		_ = f.Flush()
	}
}

// Clear empties the console, redraws it blank and writes a confirmation line.
func (b *Buffer) Clear() {
	b.ring.Reset()
	b.Render()
	b.WriteLine(clearedLine)
}

// AddSeparator writes a divider line.
func (b *Buffer) AddSeparator() {
	b.WriteLine(separator)
}

// DumpSystemInfo writes a separator-bracketed block describing the platform.
// Each line is written (and rendered) on its own.
func (b *Buffer) DumpSystemInfo() {
	b.AddSeparator()
	b.WriteLine(infoHeadline)
	if b.info != nil {
		b.WriteLine("Chip: " + b.info.Platform())
		b.WriteLine(fmt.Sprintf("Free Heap: %d bytes", b.info.FreeMemory()))
		b.WriteLine(fmt.Sprintf("Uptime: %d sec", int64(b.info.Uptime()/time.Second)))
	}
	for _, src := range b.extra {
		for _, line := range src.InfoLines() {
			b.WriteLine(line)
		}
	}
	b.AddSeparator()
}

// Lines returns the visible window, oldest first.
func (b *Buffer) Lines() []string {
	out := make([]string, 0, b.ring.Len())
	b.ring.Each(func(line string) {
		out = append(out, line)
	})
	return out
}

// Cap is the number of lines the console retains.
func (b *Buffer) Cap() int { return b.ring.Cap() }

func (b *Buffer) colorFor(line string) color.RGBA {
	l := &b.layout
	if l.HighlightPrefix != "" && strings.Contains(line, l.HighlightPrefix) {
		return l.Highlight
	}
	return l.Foreground
}

// regionHeight is rows*rowHeight, saturated to the int16 pixel range.
func regionHeight(rows int, rowHeight int16) int16 {
	h := rows * int(rowHeight)
	if h > math.MaxInt16 {
		return math.MaxInt16
	}
	if h < 0 {
		return 0
	}
	return int16(h)
}

// truncate shortens s to max characters, replacing the tail with an ellipsis.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	head := max - len(ellipsis)
	i := 0
	for n := 0; n < head; n++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i] + ellipsis
}

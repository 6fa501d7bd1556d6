//go:build tinygo

package hal

import (
	"runtime"
	"time"
)

type tinyGoDisplay struct {
	d Displayer
}

func (d tinyGoDisplay) Displayer() Displayer { return d.d }

type tinyGoClock struct {
	boot time.Time
}

func newTinyGoClock() *tinyGoClock {
	return &tinyGoClock{boot: time.Now()}
}

func (c *tinyGoClock) Uptime() time.Duration { return time.Since(c.boot) }

type byteWriter interface {
	WriteByte(c byte) error
}

// serialLogger writes CRLF-terminated lines, matching a serial monitor.
type serialLogger struct {
	w byteWriter
}

func (l *serialLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.w.WriteByte(s[i])
	}
	l.w.WriteByte('\r')
	l.w.WriteByte('\n')
}

func (l *serialLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.w.WriteByte(b[i])
	}
	l.w.WriteByte('\r')
	l.w.WriteByte('\n')
}

func freeHeap() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	if ms.HeapSys < ms.HeapInuse {
		return 0
	}
	return ms.HeapSys - ms.HeapInuse
}

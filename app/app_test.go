package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	"dhtconsole/hal"
)

type testLogger struct {
	lines []string
}

func (l *testLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *testLogger) contains(s string) bool {
	for _, line := range l.lines {
		if line == s {
			return true
		}
	}
	return false
}

type testDisplay struct {
	d hal.Displayer
}

func (d testDisplay) Displayer() hal.Displayer { return d.d }

type testSerial struct {
	in  []byte
	out strings.Builder
}

func (s *testSerial) Buffered() int { return len(s.in) }

func (s *testSerial) ReadByte() (byte, error) {
	if len(s.in) == 0 {
		return 0, hal.ErrNoData
	}
	b := s.in[0]
	s.in = s.in[1:]
	return b, nil
}

func (s *testSerial) Write(p []byte) (int, error) { return s.out.Write(p) }

type testClock struct {
	now time.Duration
}

func (c *testClock) Uptime() time.Duration { return c.now }

type testInfo struct{}

func (testInfo) Platform() string   { return "TESTCHIP" }
func (testInfo) FreeMemory() uint64 { return 1234 }

type testSensor struct {
	temps []float64
	i     int
	panic bool
}

func (s *testSensor) ReadTemperature() (float64, error) {
	if s.panic {
		panic("sensor exploded")
	}
	if s.i >= len(s.temps) {
		return 0, errors.New("no more readings")
	}
	t := s.temps[s.i]
	s.i++
	return t, nil
}

func (s *testSensor) ReadHumidity() (float64, error) { return 50, nil }

type testHAL struct {
	log    *testLogger
	fb     *hal.MemFramebuffer
	disp   hal.Displayer
	sensor *testSensor
	serial *testSerial
	clock  *testClock
}

func newTestHAL(temps ...float64) *testHAL {
	fb := hal.NewFramebuffer(240, 240)
	return &testHAL{
		log:    &testLogger{},
		fb:     fb,
		disp:   hal.NewFramebufferDisplayer(fb),
		sensor: &testSensor{temps: temps},
		serial: &testSerial{},
		clock:  &testClock{},
	}
}

func (h *testHAL) Logger() hal.Logger         { return h.log }
func (h *testHAL) Display() hal.Display       { return testDisplay{d: h.disp} }
func (h *testHAL) Sensor() hal.Sensor         { return h.sensor }
func (h *testHAL) Serial() hal.Serial         { return h.serial }
func (h *testHAL) Clock() hal.Clock           { return h.clock }
func (h *testHAL) SystemInfo() hal.SystemInfo { return testInfo{} }

func TestBootWritesBannerAndInfo(t *testing.T) {
	h := newTestHAL()
	h.clock.now = 3 * time.Second
	_ = New(h, Config{})

	for _, want := range []string{
		"System Started Successfully",
		"System Info:",
		"Chip: TESTCHIP",
		"Free Heap: 1234 bytes",
		"Uptime: 3 sec",
	} {
		if !h.log.contains(want) {
			t.Fatalf("log %q missing %q", h.log.lines, want)
		}
	}

	lit := false
	for y := 20; y < 40 && !lit; y++ {
		for x := 0; x < 240; x++ {
			if h.fb.PixelAt(x, y) != 0 {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Fatal("first console row is blank after boot")
	}
}

func TestStepReportsTemperature(t *testing.T) {
	h := newTestHAL(20.0, 20.3, 21.0)
	step := New(h, Config{Quiet: true})

	for i := 1; i <= 3; i++ {
		h.clock.now = time.Duration(i) * 2 * time.Second
		if err := step(); err != nil {
			t.Fatalf("step() = %v", err)
		}
	}

	var temps []string
	for _, line := range h.log.lines {
		if strings.HasPrefix(line, "Temp:") {
			temps = append(temps, line)
		}
	}
	if len(temps) != 2 || temps[0] != "Temp:20.0C" || temps[1] != "Temp:21.0C" {
		t.Fatalf("temperature lines = %q", temps)
	}
}

func TestStepRunsCommands(t *testing.T) {
	h := newTestHAL()
	step := New(h, Config{Quiet: true})

	h.serial.in = []byte("hello\r\nclear\n")
	if err := step(); err != nil {
		t.Fatalf("step() = %v", err)
	}

	if !h.log.contains("USB: hello") {
		t.Fatalf("log %q missing echo line", h.log.lines)
	}
	if !h.log.contains("Console Cleared") {
		t.Fatalf("log %q missing clear confirmation", h.log.lines)
	}
	if got := h.serial.out.String(); got != "Echo: hello\r\n" {
		t.Fatalf("serial echo = %q", got)
	}
}

func TestStepFaultIsRecovered(t *testing.T) {
	h := newTestHAL()
	h.sensor.panic = true
	step := New(h, Config{Quiet: true})

	h.clock.now = 2 * time.Second
	err := step()

	var fe *FaultError
	if !errors.As(err, &fe) {
		t.Fatalf("step() = %v, want *FaultError", err)
	}
	if fe.Value != "sensor exploded" {
		t.Fatalf("fault value = %v", fe.Value)
	}
	if !h.log.contains("fault: sensor exploded") {
		t.Fatalf("log %q missing fault line", h.log.lines)
	}
	if got, want := h.fb.PixelAt(239, 239), hal.RGB565(faultBackground); got != want {
		t.Fatalf("fault screen corner = %#04x, want %#04x", got, want)
	}
}

func TestFitScreen(t *testing.T) {
	lines := []string{"fault: boom", "goroutine 1 [running]:", "main.go:12", "extra"}

	got := fitScreen(lines, 10, 4)
	want := []string{"fault: bo", "goroutine", "main.go:1"}
	if len(got) != len(want) {
		t.Fatalf("fitScreen() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fitScreen()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := fitScreen(lines, 10, 1); len(got) != 0 {
		t.Fatalf("fitScreen(rows=1) = %q, want nothing", got)
	}
}

package app

import (
	"time"

	"dhtconsole/firmware/command"
	"dhtconsole/firmware/console"
	"dhtconsole/firmware/display"
	"dhtconsole/firmware/monitor"
	"dhtconsole/hal"
	"dhtconsole/internal/buildinfo"
)

const bootLine = "System Started Successfully"

// Config tunes the firmware. Zero fields take the reference defaults.
type Config struct {
	Lines          int
	SampleInterval time.Duration
	Threshold      float64
	SensorName     string
	// Highlight draws temperature lines in yellow.
	Highlight bool
	// Quiet skips the boot banner and system info block.
	Quiet bool
}

type system struct {
	h     hal.HAL
	con   *console.Buffer
	mon   *monitor.Monitor
	lines *command.LineReader
	cmd   *command.Dispatcher
	clock hal.Clock
}

// New builds the firmware on h and returns the per-iteration step.
//
// A panic inside a step is shown on the fault screen and returned as an error.
func New(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	return func() (err error) {
		defer recoverFault(h, &err)
		return s.step()
	}
}

// Run starts the firmware and loops forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	step := New(h, Config{})
	for {
		if err := step(); err != nil {
			select {}
		}
		time.Sleep(time.Millisecond)
	}
}

func newSystem(h hal.HAL, cfg Config) *system {
	layout := console.DefaultLayout()
	if cfg.Highlight {
		layout.HighlightPrefix = "Temp:"
	}

	var surf console.Surface
	if disp := h.Display(); disp != nil {
		if d := disp.Displayer(); d != nil {
			surf = display.NewTextSurface(d)
		}
	}

	clock := h.Clock()
	con := console.New(surf, h.Logger(), console.Config{
		Lines:  cfg.Lines,
		Layout: &layout,
		Info:   sysInfo{info: h.SystemInfo(), clock: clock},
	})
	mon := monitor.New(h.Sensor(), con, monitor.Config{
		Interval:   cfg.SampleInterval,
		Threshold:  cfg.Threshold,
		SensorName: cfg.SensorName,
	})
	con.AddInfoSource(mon)

	s := &system{h: h, con: con, mon: mon, clock: clock}
	if serial := h.Serial(); serial != nil {
		s.lines = command.NewLineReader(serial)
		s.cmd = command.NewDispatcher(con, serial)
	}

	if l := h.Logger(); l != nil {
		l.WriteLineString(buildinfo.Banner())
	}
	if !cfg.Quiet {
		con.WriteLine(bootLine)
		con.DumpSystemInfo()
	}
	return s
}

func (s *system) step() error {
	// Sensor failures are already on the console; nothing to escalate.
	_ = s.mon.Tick(s.clock.Uptime())

	if s.lines == nil {
		return nil
	}
	for {
		line, ok := s.lines.Poll()
		if !ok {
			return nil
		}
		s.cmd.Handle(line)
	}
}

// sysInfo joins platform details with the clock for the info dump.
type sysInfo struct {
	info  hal.SystemInfo
	clock hal.Clock
}

func (s sysInfo) Platform() string {
	if s.info == nil {
		return "unknown"
	}
	return s.info.Platform()
}

func (s sysInfo) FreeMemory() uint64 {
	if s.info == nil {
		return 0
	}
	return s.info.FreeMemory()
}

func (s sysInfo) Uptime() time.Duration {
	if s.clock == nil {
		return 0
	}
	return s.clock.Uptime()
}

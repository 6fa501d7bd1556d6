//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

const (
	hostScreenWidth  = 240
	hostScreenHeight = 240
)

// HostConfig selects the host-side collaborators.
type HostConfig struct {
	// Sensor is "sim" (default) or "sht4x".
	Sensor string
	// I2CBus names the periph I²C bus for hardware sensors ("" = first).
	I2CBus    string
	Seed      int64
	DropEvery int
	// Stdin feeds os.Stdin into the serial command stream.
	Stdin bool
}

type hostHAL struct {
	logger *hostLogger
	fb     *MemFramebuffer
	disp   Displayer
	sensor Sensor
	serial *hostSerial
	clock  *hostClock
	info   *hostSystemInfo
}

// New returns a host HAL implementation.
//
// A hardware sensor that fails to open falls back to the simulated one.
func New(cfg HostConfig) HAL {
	logger := &hostLogger{w: os.Stdout}
	fb := NewFramebuffer(hostScreenWidth, hostScreenHeight)

	var sensor Sensor
	switch cfg.Sensor {
	case "sht4x":
		s, err := newSHT4xSensor(cfg.I2CBus)
		if err != nil {
			logger.WriteLineString(fmt.Sprintf("sensor: %v (using simulator)", err))
			break
		}
		sensor = s
	case "", "sim":
	default:
		logger.WriteLineString(fmt.Sprintf("sensor: unknown kind %q (using simulator)", cfg.Sensor))
	}
	if sensor == nil {
		sensor = NewSimSensor(SimSensorConfig{Seed: cfg.Seed, DropEvery: cfg.DropEvery})
	}

	serial := newHostSerial(os.Stdout)
	if cfg.Stdin {
		serial.pipe(os.Stdin)
	}

	return &hostHAL{
		logger: logger,
		fb:     fb,
		disp:   NewFramebufferDisplayer(fb),
		sensor: sensor,
		serial: serial,
		clock:  newHostClock(),
		info:   newHostSystemInfo(),
	}
}

func (h *hostHAL) Logger() Logger         { return h.logger }
func (h *hostHAL) Display() Display       { return hostDisplay{d: h.disp} }
func (h *hostHAL) Sensor() Sensor         { return h.sensor }
func (h *hostHAL) Serial() Serial         { return h.serial }
func (h *hostHAL) Clock() Clock           { return h.clock }
func (h *hostHAL) SystemInfo() SystemInfo { return h.info }

type hostDisplay struct {
	d Displayer
}

func (d hostDisplay) Displayer() Displayer { return d.d }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

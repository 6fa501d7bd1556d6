// Package monitor samples the temperature/humidity sensor on a fixed cadence
// and reports readings to the console when the temperature moves enough.
package monitor

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// DefaultInterval is the sampling cadence.
	DefaultInterval = 2000 * time.Millisecond
	// DefaultThreshold is the smallest temperature change worth reporting.
	DefaultThreshold = 0.5
	// DefaultSensorName prefixes the read error line.
	DefaultSensorName = "DHT11"
)

// State is the sampling state of a Monitor.
type State uint8

const (
	// Idle waits for the next interval.
	Idle State = iota
	// Sampling is held while a due Tick reads and reports.
	Sampling
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sampling:
		return "sampling"
	}
	return "unknown"
}

// ErrSensorRead classifies an invalid reading (driver error or NaN).
var ErrSensorRead = errors.New("sensor read failed")

// Sensor is the temperature/humidity collaborator.
type Sensor interface {
	ReadTemperature() (float64, error)
	ReadHumidity() (float64, error)
}

// LineWriter receives report lines.
type LineWriter interface {
	WriteLine(text string)
}

// Config tunes the monitor. Zero fields take the defaults; a Threshold of
// zero or less also means DefaultThreshold.
type Config struct {
	Interval   time.Duration
	Threshold  float64
	SensorName string
}

// Monitor decides when to sample and which readings are worth reporting.
//
// It is driven by Tick from the main loop and never blocks.
type Monitor struct {
	sensor Sensor
	out    LineWriter
	cfg    Config

	state           State
	lastTemperature float64
	lastSample      time.Duration

	samples  uint32
	reports  uint32
	failures uint32
}

// New returns an idle monitor. The last reported temperature starts at 0.
func New(sensor Sensor, out LineWriter, cfg Config) *Monitor {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.SensorName == "" {
		cfg.SensorName = DefaultSensorName
	}
	return &Monitor{sensor: sensor, out: out, cfg: cfg}
}

// Due reports whether a sample would be taken at now.
func (m *Monitor) Due(now time.Duration) bool {
	return now-m.lastSample >= m.cfg.Interval
}

// Tick samples the sensor if the interval has elapsed since the last attempt.
//
// An invalid reading writes one error line and returns an error wrapping
// ErrSensorRead; the last reported temperature is left unchanged. A valid
// reading that moved at least Threshold from the last report writes a
// temperature line and a humidity line.
func (m *Monitor) Tick(now time.Duration) error {
	if !m.Due(now) {
		return nil
	}
	m.state = Sampling
	defer func() { m.state = Idle }()
	m.lastSample = now
	m.samples++

	temp, terr := m.sensor.ReadTemperature()
	hum, herr := m.sensor.ReadHumidity()
	if err := validate(temp, terr, hum, herr); err != nil {
		m.failures++
		m.out.WriteLine(m.cfg.SensorName + " Read Error!")
		return fmt.Errorf("%s: %w", m.cfg.SensorName, err)
	}

	if math.Abs(temp-m.lastTemperature) < m.cfg.Threshold {
		return nil
	}
	m.lastTemperature = temp
	m.reports++
	m.out.WriteLine(fmt.Sprintf("Temp:%.1fC", temp))
	m.out.WriteLine(fmt.Sprintf("Hum:%.1f%%", hum))
	return nil
}

// State reports whether a sample is in progress.
func (m *Monitor) State() State {
	return m.state
}

// LastTemperature returns the last reported temperature (0 before any report).
func (m *Monitor) LastTemperature() float64 {
	return m.lastTemperature
}

// InfoLines summarizes sampling activity for the system info block.
func (m *Monitor) InfoLines() []string {
	return []string{
		fmt.Sprintf("Samples: %d  Errors: %d", m.samples, m.failures),
		fmt.Sprintf("Reports: %d  Last: %.1fC", m.reports, m.lastTemperature),
	}
}

func validate(temp float64, terr error, hum float64, herr error) error {
	switch {
	case terr != nil:
		return fmt.Errorf("%w: temperature: %v", ErrSensorRead, terr)
	case herr != nil:
		return fmt.Errorf("%w: humidity: %v", ErrSensorRead, herr)
	case math.IsNaN(temp) || math.IsNaN(hum):
		return fmt.Errorf("%w: NaN", ErrSensorRead)
	}
	return nil
}

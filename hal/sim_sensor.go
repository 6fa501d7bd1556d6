package hal

import (
	"math"
	"math/rand"
)

// SimSensorConfig shapes the simulated temperature/humidity source.
type SimSensorConfig struct {
	Seed int64
	// Base values the random walk starts from.
	Temperature float64
	Humidity    float64
	// Step is the largest per-sample change in degrees.
	Step float64
	// DropEvery makes every Nth sample invalid (0 disables dropouts).
	DropEvery int
}

// SimSensor is a deterministic drifting sensor for the host emulator and tests.
//
// ReadTemperature takes a new sample; ReadHumidity returns the humidity from
// the same sample, matching how a DHT-style part is read.
type SimSensor struct {
	cfg     SimSensorConfig
	rng     *rand.Rand
	temp    float64
	hum     float64
	samples int
	dropped bool
}

// NewSimSensor returns a simulated sensor.
func NewSimSensor(cfg SimSensorConfig) *SimSensor {
	if cfg.Temperature == 0 {
		cfg.Temperature = 22
	}
	if cfg.Humidity == 0 {
		cfg.Humidity = 45
	}
	if cfg.Step <= 0 {
		cfg.Step = 0.4
	}
	return &SimSensor{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(cfg.Seed)),
		temp: cfg.Temperature,
		hum:  cfg.Humidity,
	}
}

func (s *SimSensor) ReadTemperature() (float64, error) {
	s.samples++
	s.dropped = s.cfg.DropEvery > 0 && s.samples%s.cfg.DropEvery == 0
	if s.dropped {
		return math.NaN(), nil
	}

	s.temp += (s.rng.Float64()*2 - 1) * s.cfg.Step
	s.hum += (s.rng.Float64()*2 - 1) * s.cfg.Step * 2
	s.hum = math.Max(0, math.Min(100, s.hum))
	return round1(s.temp), nil
}

func (s *SimSensor) ReadHumidity() (float64, error) {
	if s.dropped {
		return math.NaN(), nil
	}
	return round1(s.hum), nil
}

// Samples reports how many temperature reads were taken.
func (s *SimSensor) Samples() int { return s.samples }

// round1 mimics the 0.1 resolution of the hardware parts.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

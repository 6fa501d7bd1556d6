//go:build !tinygo

package hal

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/sht4x"
	"periph.io/x/host/v3"
)

// sht4xSensor reads a Sensirion SHT4x over a Linux I²C bus.
type sht4xSensor struct {
	bus i2c.BusCloser
	dev *sht4x.Dev
	env physic.Env
	err error
}

func newSHT4xSensor(busName string) (*sht4xSensor, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph init: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}
	dev, err := sht4x.New(bus, sht4x.DefaultAddress)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("sht4x: %w", err)
	}
	return &sht4xSensor{bus: bus, dev: dev}, nil
}

func (s *sht4xSensor) ReadTemperature() (float64, error) {
	s.err = s.dev.Sense(&s.env)
	if s.err != nil {
		return 0, fmt.Errorf("sht4x sense: %w", s.err)
	}
	return float64(s.env.Temperature-physic.ZeroCelsius) / float64(physic.Kelvin), nil
}

// ReadHumidity reports the humidity captured by the preceding ReadTemperature.
func (s *sht4xSensor) ReadHumidity() (float64, error) {
	if s.err != nil {
		return 0, fmt.Errorf("sht4x sense: %w", s.err)
	}
	return float64(s.env.Humidity) / float64(physic.PercentRH), nil
}

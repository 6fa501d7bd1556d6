//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/dht"
	"tinygo.org/x/drivers/st7789"
)

const (
	screenWidth  = 240
	screenHeight = 240
)

type tinyGoHAL struct {
	logger *serialLogger
	disp   Displayer
	sensor Sensor
	serial Serial
	clock  *tinyGoClock
	info   tinyGoSystemInfo
}

// New returns an RP2040 HAL implementation.
//
// Display: ST7789 240x240 on SPI0 (SCK GP18, SDO GP19, CS GP17, DC GP21,
// RST GP20, backlight GP22). Sensor: DHT11 data on GP9. Console log and
// commands share the USB CDC port.
func New() HAL {
	clock := newTinyGoClock()
	serial := machine.Serial
	logger := &serialLogger{w: serial}

	var disp Displayer
	if d, err := newST7789(); err == nil {
		disp = d
	} else {
		logger.WriteLineString("display: " + err.Error())
		disp = NewFramebufferDisplayer(nil)
	}

	return &tinyGoHAL{
		logger: logger,
		disp:   disp,
		sensor: newDHTSensor(machine.GP9, dht.DHT11),
		serial: serial,
		clock:  clock,
	}
}

func (h *tinyGoHAL) Logger() Logger         { return h.logger }
func (h *tinyGoHAL) Display() Display       { return tinyGoDisplay{d: h.disp} }
func (h *tinyGoHAL) Sensor() Sensor         { return h.sensor }
func (h *tinyGoHAL) Serial() Serial         { return h.serial }
func (h *tinyGoHAL) Clock() Clock           { return h.clock }
func (h *tinyGoHAL) SystemInfo() SystemInfo { return h.info }

func newST7789() (*st7789.Device, error) {
	if err := machine.SPI0.Configure(machine.SPIConfig{
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		Frequency: 40_000_000,
		Mode:      3,
	}); err != nil {
		return nil, err
	}

	d := st7789.New(machine.SPI0, machine.GP20, machine.GP21, machine.GP17, machine.GP22)
	d.Configure(st7789.Config{
		Width:    screenWidth,
		Height:   screenHeight,
		Rotation: drivers.Rotation0,
	})
	return &d, nil
}

// dhtSensor triggers one measurement per ReadTemperature; ReadHumidity
// returns the humidity from that measurement.
type dhtSensor struct {
	dev dht.Device
	err error
}

func newDHTSensor(pin machine.Pin, kind dht.DeviceType) *dhtSensor {
	return &dhtSensor{dev: dht.New(pin, kind)}
}

func (s *dhtSensor) ReadTemperature() (float64, error) {
	if s.err = s.dev.ReadMeasurements(); s.err != nil {
		return 0, s.err
	}
	t, err := s.dev.TemperatureFloat(dht.C)
	if err != nil {
		return 0, err
	}
	return float64(t), nil
}

func (s *dhtSensor) ReadHumidity() (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	h, err := s.dev.HumidityFloat()
	if err != nil {
		return 0, err
	}
	return float64(h), nil
}

type tinyGoSystemInfo struct{}

func (tinyGoSystemInfo) Platform() string   { return machine.Device }
func (tinyGoSystemInfo) FreeMemory() uint64 { return freeHeap() }

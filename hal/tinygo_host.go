//go:build tinygo && !baremetal

package hal

import "runtime"

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	disp   Displayer
	sensor Sensor
	clock  *tinyGoClock
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU
// pin mapping: the panel is an in-memory framebuffer and the sensor is simulated.
func New() HAL {
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		disp:   NewFramebufferDisplayer(NewFramebuffer(240, 240)),
		sensor: NewSimSensor(SimSensorConfig{Seed: 1, DropEvery: 17}),
		clock:  newTinyGoClock(),
	}
}

func (h *tinyGoHostHAL) Logger() Logger         { return h.logger }
func (h *tinyGoHostHAL) Display() Display       { return tinyGoDisplay{d: h.disp} }
func (h *tinyGoHostHAL) Sensor() Sensor         { return h.sensor }
func (h *tinyGoHostHAL) Serial() Serial         { return nullSerial{} }
func (h *tinyGoHostHAL) Clock() Clock           { return h.clock }
func (h *tinyGoHostHAL) SystemInfo() SystemInfo { return tinyGoHostInfo{} }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostInfo struct{}

func (tinyGoHostInfo) Platform() string   { return "tinygo/" + runtime.GOOS }
func (tinyGoHostInfo) FreeMemory() uint64 { return freeHeap() }

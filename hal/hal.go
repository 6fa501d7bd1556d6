package hal

import (
	"errors"
	"image/color"
	"time"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")
	// ErrNoData is returned by non-blocking reads when nothing is buffered.
	ErrNoData = errors.New("no data")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Displayer is a drivers.Displayer that can also fill rectangles, scroll and rotate.
//
// SPI panels from the drivers repo implement it directly; framebuffers are
// adapted with NewFramebufferDisplayer.
type Displayer interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
	SetScroll(line int16)
	SetRotation(rotation drivers.Rotation) error
}

// Display provides access to the panel (if available).
type Display interface {
	Displayer() Displayer
}

// Sensor samples a combined temperature/humidity device.
//
// An invalid reading is reported either as an error or as NaN.
type Sensor interface {
	ReadTemperature() (celsius float64, err error)
	ReadHumidity() (percent float64, err error)
}

// Serial is a non-blocking byte stream (USB CDC on hardware, stdin on host).
type Serial interface {
	Buffered() int
	ReadByte() (byte, error)
	Write(p []byte) (int, error)
}

// Clock reports monotonic time since boot.
type Clock interface {
	Uptime() time.Duration
}

// SystemInfo describes the platform for diagnostic dumps.
type SystemInfo interface {
	Platform() string
	FreeMemory() uint64
}

// HAL provides the only contact point between the firmware and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Sensor() Sensor
	Serial() Serial
	Clock() Clock
	SystemInfo() SystemInfo
}

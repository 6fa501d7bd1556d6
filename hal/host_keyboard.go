//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostKeyboard turns window key presses into serial input bytes, so typing
// into the window behaves like a terminal attached to the USB port.
type hostKeyboard struct {
	serial *hostSerial
	runes  []rune
}

func newHostKeyboard(serial *hostSerial) *hostKeyboard {
	return &hostKeyboard{serial: serial}
}

func (k *hostKeyboard) poll() {
	k.runes = ebiten.AppendInputChars(k.runes[:0])
	for _, r := range k.runes {
		if r < 0x20 || r > 0x7e {
			continue
		}
		k.serial.push(byte(r))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		k.serial.push('\b')
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		k.serial.push('\n')
	}
}

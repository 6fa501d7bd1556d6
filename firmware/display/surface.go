// Package display draws console text on a TinyGo display driver.
package display

import (
	"image/color"

	"dhtconsole/firmware/console"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Target is a drivers.Displayer that can fill rectangles in one call.
type Target interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Face is a font plus the distance from the top of a row to its baseline.
type Face struct {
	Font   *tinyfont.Font
	Ascent int16
	Height int16
}

// SmallFace is the console font: ProggyTiny, about 6 px per character.
var SmallFace = Face{Font: &proggy.TinySZ8pt7b, Ascent: 6, Height: 10}

// TextSurface implements console.Surface on a Target.
type TextSurface struct {
	d     Target
	faces map[console.FontID]Face
}

// NewTextSurface returns a surface drawing on d.
func NewTextSurface(d Target) *TextSurface {
	return &TextSurface{
		d: d,
		faces: map[console.FontID]Face{
			console.FontSmall: SmallFace,
		},
	}
}

func (s *TextSurface) FillRegion(x, y, w, h int16, c color.RGBA) {
	_ = s.d.FillRectangle(x, y, w, h, c)
}

// DrawText draws text with its top-left corner at (x, y).
func (s *TextSurface) DrawText(text string, x, y int16, font console.FontID, c color.RGBA) {
	f, ok := s.faces[font]
	if !ok {
		f = SmallFace
	}
	tinyfont.WriteLine(s.d, f.Font, x, y+f.Ascent, text, c)
}

// Flush pushes buffered pixels to the panel.
func (s *TextSurface) Flush() error {
	return s.d.Display()
}

package hal

import (
	"image/color"
	"testing"
)

func TestFillRectangleClamps(t *testing.T) {
	fb := NewFramebuffer(8, 4)
	d := NewFramebufferDisplayer(fb)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	if err := d.FillRectangle(-2, 2, 20, 10, white); err != nil {
		t.Fatalf("FillRectangle() = %v", err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			want := uint16(0)
			if y >= 2 {
				want = 0xFFFF
			}
			if got := fb.PixelAt(x, y); got != want {
				t.Fatalf("PixelAt(%d,%d) = %#04x, want %#04x", x, y, got, want)
			}
		}
	}
}

func TestSetPixelRGB565(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	d := NewFramebufferDisplayer(fb)
	yellow := color.RGBA{R: 255, G: 255, A: 255}

	d.SetPixel(1, 2, yellow)
	d.SetPixel(9, 9, yellow)

	if got, want := fb.PixelAt(1, 2), RGB565(yellow); got != want {
		t.Fatalf("PixelAt(1,2) = %#04x, want %#04x", got, want)
	}
	if want := uint16(0xFFE0); RGB565(yellow) != want {
		t.Fatalf("RGB565(yellow) = %#04x, want %#04x", RGB565(yellow), want)
	}
}

func TestNilFramebufferDisplayer(t *testing.T) {
	d := NewFramebufferDisplayer(nil)
	if w, h := d.Size(); w != 0 || h != 0 {
		t.Fatalf("Size() = %d,%d, want 0,0", w, h)
	}
	d.SetPixel(0, 0, color.RGBA{})
	if err := d.FillRectangle(0, 0, 10, 10, color.RGBA{}); err != nil {
		t.Fatalf("FillRectangle() = %v", err)
	}
	if err := d.Display(); err != nil {
		t.Fatalf("Display() = %v", err)
	}
}

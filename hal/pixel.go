package hal

import "image/color"

// RGB565 packs c into the framebuffer pixel format.
func RGB565(c color.RGBA) uint16 { return rgb565(c.R, c.G, c.B) }

func rgb565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// rgb888From565 expands a packed pixel back to 8 bits per channel.
func rgb888From565(p uint16) (r, g, b uint8) {
	r = uint8(uint32(p>>11&0x1F) * 255 / 31)
	g = uint8(uint32(p>>5&0x3F) * 255 / 63)
	b = uint8(uint32(p&0x1F) * 255 / 31)
	return r, g, b
}

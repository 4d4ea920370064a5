package hal

// rgb565 packs 8-bit channels into the framebuffer's native pixel:
// rrrrrggggggbbbbb.
func rgb565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// rgb888From565 expands a native pixel back to 8-bit channels,
// scaling so a full-range component maps to 0xFF.
func rgb888From565(p uint16) (r, g, b uint8) {
	r = uint8((p >> 11 & 0x1F) * 255 / 31)
	g = uint8((p >> 5 & 0x3F) * 255 / 63)
	b = uint8((p & 0x1F) * 255 / 31)
	return r, g, b
}

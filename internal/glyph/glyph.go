package glyph

// Palette is the density-ordered character ramp used for all rendering.
// Index 0 is the sparsest glyph, the last index the densest.
var Palette = []byte{
	' ', '.', '\'', '`', '^', '"', ',', ':', ';', 'I', 'l', '!', 'i', '>',
	'<', '~', '+', '_', '-', '?', ']', '[', '}', '{', '1', ')', '(', '|',
	'\\', '/', 't', 'f', 'j', 'r', 'x', 'n', 'u', 'v', 'c', 'z', 'X', 'Y',
	'U', 'J', 'C', 'L', 'Q', '0', 'O', 'Z', 'm', 'w', 'q', 'p', 'd', 'b',
	'k', 'h', 'a', 'o', '*', '#', 'M', 'W', '&', '8', '%', 'B', '@', '$',
}

// step is the intensity width of one palette bucket.
var step = 255.0 / float64(len(Palette)-1)

// Map returns the palette character for a pixel's three 8-bit channels.
// The bucket is chosen from the mean channel intensity and clamped to the
// palette bounds, so every possible input maps to a valid glyph.
func Map(r, g, b uint8) byte {
	intensity := (int(r) + int(g) + int(b)) / 3
	bucket := int(float64(intensity) / step)
	if bucket < 0 {
		bucket = 0
	}
	if bucket >= len(Palette) {
		bucket = len(Palette) - 1
	}
	return Palette[bucket]
}

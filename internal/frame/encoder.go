package frame

import (
	"strings"

	"github.com/vidterm/vidterm/internal/glyph"
)

// Encode converts one Raster into a character frame.
//
// The first pixel of each row is skipped to compensate for the stride
// alignment of the decoded bitmap, and the final raster row is dropped so
// the terminal's last line stays free for status output. A W×H raster
// therefore yields H-1 rows of W-1 characters each.
func Encode(r *Raster) Text {
	if r.Width < 2 || r.Height < 2 {
		return Text{}
	}

	rows := make([]Row, 0, r.Height-1)
	var line strings.Builder
	line.Grow(r.Width - 1)

	for y := 0; y < r.Height-1; y++ {
		line.Reset()
		for x := 1; x < r.Width; x++ {
			red, green, blue := r.At(x, y)
			line.WriteByte(glyph.Map(red, green, blue))
		}
		rows = append(rows, Row{Index: y, Text: line.String()})
	}
	return Text{Rows: rows}
}

package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Sentinel errors for bitmap decoding.
var (
	// ErrShortFrame indicates a payload too small to hold a decodable
	// bitmap. The producer treats this as an end-of-stream boundary,
	// not a failure.
	ErrShortFrame = errors.New("frame payload below decodable threshold")

	// ErrBadBitmap indicates a payload that is large enough but is not
	// an uncompressed BMP at a supported depth.
	ErrBadBitmap = errors.New("unsupported or malformed bitmap")
)

// bmpHeaderSize is the minimal byte length of a BMP file header plus the
// 40-byte BITMAPINFOHEADER that ffmpeg emits.
const bmpHeaderSize = 54

// Raster is one decoded bitmap frame: a W×H grid of RGB triples.
type Raster struct {
	Width  int
	Height int

	// pix holds packed RGB triples in row-major, top-down order.
	pix []byte
}

// NewRaster creates an empty raster of the given dimensions.
func NewRaster(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		pix:    make([]byte, width*height*3),
	}
}

// At returns the RGB channels of the pixel at (x, y), top-down.
func (r *Raster) At(x, y int) (uint8, uint8, uint8) {
	i := (y*r.Width + x) * 3
	return r.pix[i], r.pix[i+1], r.pix[i+2]
}

// Set stores the RGB channels of the pixel at (x, y), top-down.
func (r *Raster) Set(x, y int, red, green, blue uint8) {
	i := (y*r.Width + x) * 3
	r.pix[i], r.pix[i+1], r.pix[i+2] = red, green, blue
}

// DecodeBMP decodes an uncompressed 24- or 32-bit BMP payload into a
// Raster. Payloads shorter than the minimal header return ErrShortFrame.
func DecodeBMP(data []byte) (*Raster, error) {
	if len(data) < bmpHeaderSize {
		return nil, ErrShortFrame
	}
	if data[0] != 'B' || data[1] != 'M' {
		return nil, fmt.Errorf("%w: missing BM magic", ErrBadBitmap)
	}

	pixOffset := int(binary.LittleEndian.Uint32(data[10:14]))
	width := int(int32(binary.LittleEndian.Uint32(data[18:22])))
	rawHeight := int(int32(binary.LittleEndian.Uint32(data[22:26])))
	bpp := int(binary.LittleEndian.Uint16(data[28:30]))
	compression := binary.LittleEndian.Uint32(data[30:34])

	if compression != 0 {
		return nil, fmt.Errorf("%w: compression %d", ErrBadBitmap, compression)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrBadBitmap, bpp)
	}

	// Positive height means bottom-up row order.
	bottomUp := rawHeight > 0
	height := rawHeight
	if !bottomUp {
		height = -rawHeight
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrBadBitmap, width, rawHeight)
	}

	bytesPerPixel := bpp / 8
	// Each stored row is padded to a four-byte boundary.
	stride := (width*bytesPerPixel + 3) &^ 3
	if pixOffset < bmpHeaderSize || pixOffset+stride*height > len(data) {
		return nil, fmt.Errorf("%w: pixel array out of bounds", ErrBadBitmap)
	}

	r := NewRaster(width, height)
	for y := 0; y < height; y++ {
		srcRow := y
		if bottomUp {
			srcRow = height - 1 - y
		}
		row := data[pixOffset+srcRow*stride:]
		for x := 0; x < width; x++ {
			p := row[x*bytesPerPixel:]
			// BMP stores channels as BGR.
			r.Set(x, y, p[2], p[1], p[0])
		}
	}
	return r, nil
}

// Row is one line of a character frame, addressed to a terminal row.
type Row struct {
	// Index is the terminal row the text belongs on.
	Index int

	// Text is exactly columns-1 characters of rendered glyphs.
	Text string
}

// Text is the character-grid rendering of one Raster. Rows are ordered by
// Index and the value is immutable once returned by Encode.
type Text struct {
	Rows []Row
}

// Bytes returns the concatenated row text with no delimiters, the exact
// byte layout of one frame inside a container file.
func (t Text) Bytes() []byte {
	n := 0
	for _, row := range t.Rows {
		n += len(row.Text)
	}
	out := make([]byte, 0, n)
	for _, row := range t.Rows {
		out = append(out, row.Text...)
	}
	return out
}

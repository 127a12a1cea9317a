package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// HeaderSize is the fixed byte length of the container header.
const HeaderSize = 64

// Magic identifies a VIDTXT container. Two reserved zero bytes follow it.
const Magic = "VIDTXT"

// Sentinel errors for container parsing.
var (
	// ErrBadMagic indicates the file does not open with the VIDTXT magic.
	ErrBadMagic = errors.New("not a VIDTXT container")

	// ErrCorrupt indicates a structurally invalid container, such as a
	// frame region that does not divide evenly into whole frames.
	ErrCorrupt = errors.New("corrupt VIDTXT container")

	// ErrFrameSize indicates a frame that does not match the header's
	// frame stride.
	ErrFrameSize = errors.New("frame does not match container stride")
)

// Sniff reports whether a file prefix identifies a VIDTXT container:
// the six magic bytes followed by the two reserved zero bytes.
func Sniff(prefix []byte) bool {
	return len(prefix) >= 8 && string(prefix[0:6]) == Magic && prefix[6] == 0 && prefix[7] == 0
}

// Header describes the fixed-size metadata block at the start of a
// container file.
type Header struct {
	// Columns and Lines are the authored terminal dimensions.
	Columns uint32
	Lines   uint32

	// FrameRate is the source frame rate in frames per second.
	FrameRate float64

	// AudioBytes is the byte length of the embedded audio blob.
	AudioBytes uint64
}

// Stride returns the byte length of one frame: (columns-1)×(lines-1).
func (h Header) Stride() int {
	if h.Columns < 2 || h.Lines < 2 {
		return 0
	}
	return int(h.Columns-1) * int(h.Lines-1)
}

// FrameStart returns the file offset of the first frame.
func (h Header) FrameStart() int64 {
	return HeaderSize + int64(h.AudioBytes)
}

// encode writes the header into a 64-byte block.
func (h Header) encode() [HeaderSize]byte {
	var buf [HeaderSize]byte
	copy(buf[0:6], Magic)
	binary.BigEndian.PutUint32(buf[8:12], h.Columns)
	binary.BigEndian.PutUint32(buf[12:16], h.Lines)
	binary.BigEndian.PutUint64(buf[16:24], math.Float64bits(h.FrameRate))
	binary.BigEndian.PutUint64(buf[24:32], h.AudioBytes)
	return buf
}

// ParseHeader decodes and validates a 64-byte header block.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header truncated at %d bytes", ErrCorrupt, len(data))
	}
	if string(data[0:6]) != Magic {
		return Header{}, ErrBadMagic
	}

	h := Header{
		Columns:    binary.BigEndian.Uint32(data[8:12]),
		Lines:      binary.BigEndian.Uint32(data[12:16]),
		FrameRate:  math.Float64frombits(binary.BigEndian.Uint64(data[16:24])),
		AudioBytes: binary.BigEndian.Uint64(data[24:32]),
	}
	if h.Columns < 2 || h.Lines < 2 {
		return Header{}, fmt.Errorf("%w: dimensions %dx%d", ErrCorrupt, h.Columns, h.Lines)
	}
	if h.FrameRate <= 0 || math.IsInf(h.FrameRate, 0) || math.IsNaN(h.FrameRate) {
		return Header{}, fmt.Errorf("%w: frame rate %v", ErrCorrupt, h.FrameRate)
	}
	return h, nil
}

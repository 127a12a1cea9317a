package source

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// minPayload is the smallest wire length that still denotes a bitmap. The
// length field counts itself and the 2-byte magic, so anything below 6
// cannot hold even the framing and signals end-of-stream.
const minPayload = 6

// ErrSourceUnavailable indicates the decoder or metadata probe could not
// deliver. It is fatal and reported before entering the playback UI.
var ErrSourceUnavailable = errors.New("video source unavailable")

// Stream reads framed bitmaps off the decoder's byte stream.
//
// Each frame is a BMP whose first six bytes were consumed by the framing:
// the 2-byte magic is skipped and the 4-byte little-endian length read.
// Next reconstructs the full bitmap so the decoder downstream sees a
// self-contained file.
type Stream struct {
	r *bufio.Reader
}

// NewStream wraps the decoder's standard output.
func NewStream(r io.Reader) *Stream {
	return &Stream{r: bufio.NewReaderSize(r, 1<<16)}
}

// Next returns the next complete bitmap payload, or io.EOF at the
// end-of-stream boundary. A short or zero read of the framing itself is
// also an end-of-stream boundary, never an error.
func (s *Stream) Next() ([]byte, error) {
	var header [6]byte
	if _, err := io.ReadFull(s.r, header[:]); err != nil {
		// A truncated header is the stream ending between frames.
		return nil, io.EOF
	}

	size := binary.LittleEndian.Uint32(header[2:6])
	if size < minPayload {
		return nil, io.EOF
	}

	payload := make([]byte, size)
	payload[0], payload[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(payload[2:6], size)
	if _, err := io.ReadFull(s.r, payload[6:]); err != nil {
		return nil, fmt.Errorf("truncated bitmap of %d bytes: %w", size, err)
	}
	return payload, nil
}

package container

import (
	"fmt"
	"io"
	"time"

	"github.com/vidterm/vidterm/internal/frame"
)

// Reader provides sequential access to the frames of a container file.
//
// The frame count is derived from the file size at open time. Re-reading
// from the start (Rewind) always yields the same frames: reads are pure
// deserialization with no reader-side state beyond the file position.
type Reader struct {
	r          io.ReadSeeker
	hdr        Header
	frameCount int
	nextFrame  int
}

// NewReader validates the header and positions the reader at the first
// frame. A frame region that is not a whole multiple of the frame stride
// is rejected with ErrCorrupt.
func NewReader(r io.ReadSeeker) (*Reader, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("measure container: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind container: %w", err)
	}

	var block [HeaderSize]byte
	if _, err := io.ReadFull(r, block[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	hdr, err := ParseHeader(block[:])
	if err != nil {
		return nil, err
	}

	frameRegion := size - hdr.FrameStart()
	if frameRegion < 0 {
		return nil, fmt.Errorf("%w: audio length exceeds file size", ErrCorrupt)
	}
	stride := int64(hdr.Stride())
	if frameRegion%stride != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes beyond last whole frame", ErrCorrupt, frameRegion%stride)
	}

	cr := &Reader{
		r:          r,
		hdr:        hdr,
		frameCount: int(frameRegion / stride),
	}
	if _, err := r.Seek(hdr.FrameStart(), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek frame region: %w", err)
	}
	return cr, nil
}

// Header returns the parsed container header.
func (r *Reader) Header() Header {
	return r.hdr
}

// FrameCount returns the number of whole frames in the file.
func (r *Reader) FrameCount() int {
	return r.frameCount
}

// Duration returns the playback duration derived from the frame count and
// frame rate.
func (r *Reader) Duration() time.Duration {
	return time.Duration(float64(r.frameCount) / r.hdr.FrameRate * float64(time.Second))
}

// AudioSection returns a reader over the embedded audio blob of a separate
// file handle, or nil if the container carries no audio. Audio playback
// consumes the blob concurrently with frame reads, so it needs its own
// handle rather than sharing the frame reader's position.
func (r *Reader) AudioSection(ra io.ReaderAt) *io.SectionReader {
	if r.hdr.AudioBytes == 0 {
		return nil
	}
	return io.NewSectionReader(ra, HeaderSize, int64(r.hdr.AudioBytes))
}

// NextFrame reads the next frame slab and splits it into addressed rows.
// Returns io.EOF after the last frame.
func (r *Reader) NextFrame() (frame.Text, error) {
	if r.nextFrame >= r.frameCount {
		return frame.Text{}, io.EOF
	}

	buf := make([]byte, r.hdr.Stride())
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return frame.Text{}, fmt.Errorf("%w: frame %d: %v", ErrCorrupt, r.nextFrame, err)
	}
	r.nextFrame++

	cols := int(r.hdr.Columns) - 1
	rows := make([]frame.Row, 0, int(r.hdr.Lines)-1)
	for i := 0; i < int(r.hdr.Lines)-1; i++ {
		rows = append(rows, frame.Row{Index: i, Text: string(buf[i*cols : (i+1)*cols])})
	}
	return frame.Text{Rows: rows}, nil
}

// Rewind repositions the reader at the first frame.
func (r *Reader) Rewind() error {
	if _, err := r.r.Seek(r.hdr.FrameStart(), io.SeekStart); err != nil {
		return fmt.Errorf("rewind frames: %w", err)
	}
	r.nextFrame = 0
	return nil
}

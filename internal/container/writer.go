package container

import (
	"fmt"
	"io"

	"github.com/vidterm/vidterm/internal/frame"
)

// audioLenOffset is the file offset of the audio byte length field, patched
// once the extracted audio size is known.
const audioLenOffset = 24

// Writer streams a container file: header first, then the optional audio
// blob, then frames in display order.
//
// Call order is fixed: NewWriter, optionally AppendAudio once, then
// WriteFrame for every frame. Writer does not buffer; every frame goes
// straight to the underlying file.
type Writer struct {
	w          io.WriteSeeker
	hdr        Header
	audioDone  bool
	frameCount int
}

// NewWriter writes the 64-byte header with a zero audio length and returns
// a Writer positioned for audio or frame data.
func NewWriter(w io.WriteSeeker, columns, lines uint32, frameRate float64) (*Writer, error) {
	hdr := Header{Columns: columns, Lines: lines, FrameRate: frameRate}
	if hdr.Stride() == 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrCorrupt, columns, lines)
	}
	if hdr.FrameRate <= 0 {
		return nil, fmt.Errorf("%w: frame rate %v", ErrCorrupt, frameRate)
	}

	block := hdr.encode()
	if _, err := w.Write(block[:]); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	return &Writer{w: w, hdr: hdr}, nil
}

// Header returns the header as currently written.
func (w *Writer) Header() Header {
	return w.hdr
}

// Frames returns the number of frames written so far.
func (w *Writer) Frames() int {
	return w.frameCount
}

// AppendAudio copies the encoded audio stream into the file directly after
// the header and patches the header's audio length field. It must be called
// before the first WriteFrame and at most once. Returns the number of audio
// bytes stored.
func (w *Writer) AppendAudio(r io.Reader) (int64, error) {
	if w.audioDone || w.frameCount > 0 {
		return 0, fmt.Errorf("audio must be appended once, before any frames")
	}
	w.audioDone = true

	n, err := io.Copy(w.w, r)
	if err != nil {
		return n, fmt.Errorf("copy audio: %w", err)
	}

	// Patch the length field, then reposition at the end of the blob.
	if _, err := w.w.Seek(audioLenOffset, io.SeekStart); err != nil {
		return n, fmt.Errorf("seek audio length: %w", err)
	}
	var lenBuf [8]byte
	hdr := w.hdr
	hdr.AudioBytes = uint64(n)
	block := hdr.encode()
	copy(lenBuf[:], block[audioLenOffset:audioLenOffset+8])
	if _, err := w.w.Write(lenBuf[:]); err != nil {
		return n, fmt.Errorf("patch audio length: %w", err)
	}
	if _, err := w.w.Seek(0, io.SeekEnd); err != nil {
		return n, fmt.Errorf("seek frame region: %w", err)
	}

	w.hdr = hdr
	return n, nil
}

// WriteFrame appends one character frame. The frame's byte layout must
// match the header stride exactly.
func (w *Writer) WriteFrame(t frame.Text) error {
	data := t.Bytes()
	if len(data) != w.hdr.Stride() {
		return fmt.Errorf("%w: got %d bytes, stride is %d", ErrFrameSize, len(data), w.hdr.Stride())
	}
	if _, err := w.w.Write(data); err != nil {
		return fmt.Errorf("write frame %d: %w", w.frameCount, err)
	}
	w.frameCount++
	return nil
}

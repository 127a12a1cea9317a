package player

import (
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/vidterm/vidterm/internal/frame"
	"github.com/vidterm/vidterm/internal/pipeline"
	"github.com/vidterm/vidterm/internal/surface"
)

// QueueStatus describes one attempt to obtain the next frame.
type QueueStatus int

const (
	// QueueOK means a frame is available.
	QueueOK QueueStatus = iota
	// QueueWait means no frame arrived within the wait. A buffering
	// condition, not a failure.
	QueueWait
	// QueueDone means the stream has definitively ended.
	QueueDone
)

// FrameQueue yields frames in display order. Live playback reads from the
// pipeline transport; file playback reads from a container.
type FrameQueue interface {
	Next(wait time.Duration) (frame.Text, QueueStatus)
}

// AudioControl pauses and resumes the external audio player so buffering
// stalls do not let the soundtrack run ahead of the picture.
type AudioControl interface {
	Pause() error
	Resume() error
}

// Session carries every piece of per-session playback state. It is built
// once at session start and passed explicitly; no component reads session
// state from package scope.
type Session struct {
	// ID identifies the session in logs.
	ID string

	// Clock owns pacing state for this session.
	Clock *Clock

	// Progress and Signal are the producer-shared blocks. Progress may
	// be nil in file mode, Signal may be nil when there is no producer.
	Progress *pipeline.Progress
	Signal   *pipeline.Signal

	// Surface is the render target.
	Surface surface.Surface

	// Audio controls the external audio player. Nil when playing silent.
	Audio AudioControl

	// TotalFrames is the expected frame count for the session.
	TotalFrames int

	// Duration is the expected playback duration.
	Duration time.Duration

	// DebugOverlay enables the bottom-line status bar.
	DebugOverlay bool
}

// NewSession assembles a session around a started clock.
func NewSession(rate float64, totalFrames int, surf surface.Surface) *Session {
	clock := NewClock(rate)
	return &Session{
		ID:          uuid.New().String(),
		Clock:       clock,
		Surface:     surf,
		TotalFrames: totalFrames,
		Duration:    time.Duration(float64(totalFrames) / rate * float64(time.Second)),
	}
}

// TransportQueue adapts the pipeline transport to the FrameQueue
// interface for live playback.
type TransportQueue struct {
	transport *pipeline.Transport
}

// NewTransportQueue wraps a transport.
func NewTransportQueue(t *pipeline.Transport) *TransportQueue {
	return &TransportQueue{transport: t}
}

// Next pops the next in-order frame, waiting at most wait.
func (q *TransportQueue) Next(wait time.Duration) (frame.Text, QueueStatus) {
	item, status := q.transport.Pop(wait)
	switch status {
	case pipeline.PopOK:
		return item.Frame, QueueOK
	case pipeline.PopClosed:
		return frame.Text{}, QueueDone
	default:
		return frame.Text{}, QueueWait
	}
}

// Buffered returns the number of frames waiting in the transport.
func (q *TransportQueue) Buffered() int {
	return q.transport.Len()
}

// ReaderQueue adapts a sequential frame reader (the container codec) to
// the FrameQueue interface for file playback.
type ReaderQueue struct {
	next   func() (frame.Text, error)
	signal *pipeline.Signal
}

// NewReaderQueue wraps a reader's NextFrame method. Read failures other
// than end-of-stream are recorded on the signal so the consumer reports
// them instead of treating a mid-file failure as a clean end.
func NewReaderQueue(next func() (frame.Text, error), signal *pipeline.Signal) *ReaderQueue {
	return &ReaderQueue{next: next, signal: signal}
}

// Next reads the next frame slab. File reads never block on production,
// so the wait parameter is unused.
func (q *ReaderQueue) Next(time.Duration) (frame.Text, QueueStatus) {
	text, err := q.next()
	if err == io.EOF {
		return frame.Text{}, QueueDone
	}
	if err != nil {
		if q.signal != nil {
			q.signal.Set(pipeline.Fault{Kind: pipeline.FaultSource, Message: err.Error()})
		}
		return frame.Text{}, QueueDone
	}
	return text, QueueOK
}

package pipeline

import (
	"context"
	"time"

	"github.com/vidterm/vidterm/internal/frame"
)

// DefaultTransportDepth bounds the number of frames buffered between
// producer and consumer. Deep enough to ride out bursty decode cost,
// shallow enough to cap memory for large frames.
const DefaultTransportDepth = 256

// Item is one sequenced frame in flight.
type Item struct {
	// Seq is the zero-based frame sequence number. Items are pushed and
	// popped in non-decreasing Seq order.
	Seq uint64

	// Frame is the immutable character frame.
	Frame frame.Text
}

// PopStatus describes the outcome of a bounded Pop.
type PopStatus int

const (
	// PopOK means a frame was dequeued.
	PopOK PopStatus = iota
	// PopTimeout means the transport stayed empty for the whole wait.
	// This is a buffering condition, not a failure.
	PopTimeout
	// PopClosed means the producer closed the transport and every
	// buffered frame has been consumed.
	PopClosed
)

// Transport is the bounded single-producer/single-consumer frame queue.
type Transport struct {
	ch chan Item
}

// NewTransport creates a transport buffering up to depth frames.
func NewTransport(depth int) *Transport {
	if depth <= 0 {
		depth = DefaultTransportDepth
	}
	return &Transport{ch: make(chan Item, depth)}
}

// Push enqueues one frame, blocking while the transport is full. Returns
// false if ctx is cancelled before the frame is accepted.
func (t *Transport) Push(ctx context.Context, item Item) bool {
	select {
	case t.ch <- item:
		return true
	case <-ctx.Done():
		return false
	}
}

// Pop dequeues the next frame, waiting at most the given timeout.
func (t *Transport) Pop(timeout time.Duration) (Item, PopStatus) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case item, ok := <-t.ch:
		if !ok {
			return Item{}, PopClosed
		}
		return item, PopOK
	case <-timer.C:
		return Item{}, PopTimeout
	}
}

// TryPop dequeues without waiting.
func (t *Transport) TryPop() (Item, PopStatus) {
	select {
	case item, ok := <-t.ch:
		if !ok {
			return Item{}, PopClosed
		}
		return item, PopOK
	default:
		return Item{}, PopTimeout
	}
}

// Len returns the number of buffered frames.
func (t *Transport) Len() int {
	return len(t.ch)
}

// Close marks the producer side finished. Only the producer calls Close.
func (t *Transport) Close() {
	close(t.ch)
}

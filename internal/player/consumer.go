package player

import (
	"context"
	"errors"
	"time"
)

// bufferingPatience bounds how long the consumer tolerates a continuously
// empty queue before aborting with a starvation status. The policy is
// deterministic: pause, show the indicator, and wait out the patience
// window; no frame index is special-cased.
const bufferingPatience = 5 * time.Second

// bufferingNotice is shown on the top row while the transport is starved.
const bufferingNotice = "Buffering..."

// ErrBufferStarved reports that the transport stayed empty beyond the
// buffering patience window. The process exits with status 2.
var ErrBufferStarved = errors.New("buffer starved: producer cannot keep up with playback")

// Consumer displays frames at the source cadence with adaptive lag
// compensation. It runs in the invoking goroutine.
type Consumer struct {
	session *Session
	queue   FrameQueue
}

// NewConsumer binds a session to its frame queue.
func NewConsumer(session *Session, queue FrameQueue) *Consumer {
	return &Consumer{session: session, queue: queue}
}

// Run displays frames until the expected count, the end of the stream, a
// producer fault, buffering starvation, or cancellation.
//
// Each iteration walks the per-frame state machine: wait for a buffered
// frame, compute the drift target, render, pace. Producer faults are
// polled without blocking every iteration and returned with their
// classification preserved.
func (c *Consumer) Run(ctx context.Context) error {
	s := c.session
	s.Clock.Start(time.Now())

	displayed := 0
	var starved time.Duration
	buffering := false

	for displayed < s.TotalFrames {
		if s.Signal != nil {
			if fault, ok := s.Signal.Poll(); ok {
				return fault
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		start := time.Now()

		text, status := c.queue.Next(s.Clock.Target())
		switch status {
		case QueueWait:
			if !buffering {
				buffering = true
				if s.Audio != nil {
					_ = s.Audio.Pause()
				}
				s.Surface.SetRow(0, bufferingNotice)
				s.Surface.Show()
			}
			starved += s.Clock.Target()
			if starved >= bufferingPatience {
				return ErrBufferStarved
			}
			continue
		case QueueDone:
			// The producer sets its fault before closing the transport,
			// so a closed queue is only a clean end if the signal is
			// still empty at this point.
			if s.Signal != nil {
				if fault, ok := s.Signal.Poll(); ok {
					return fault
				}
			}
			// Early stream end is tolerated, like a short decode.
			return nil
		}
		if buffering {
			buffering = false
			starved = 0
			if s.Audio != nil {
				_ = s.Audio.Resume()
			}
		}

		now := time.Now()
		calculated := s.Clock.CalculatedFrame(now)
		behind := calculated - displayed

		_, lines := s.Surface.Size()
		for _, row := range text.Rows {
			// The bottom line is reserved for status output.
			if row.Index < lines-1 {
				s.Surface.SetRow(row.Index, row.Text)
			}
		}
		if s.DebugOverlay {
			width, _ := s.Surface.Size()
			line, standout := overlayLine(width, calculated, displayed, behind,
				s.Clock.Elapsed(now), s.Duration, s.TotalFrames)
			s.Surface.SetStatus(line, standout)
		}
		s.Surface.Show()
		displayed++

		if sleep := s.Clock.Absorb(time.Since(start), behind); sleep > 0 {
			timer := time.NewTimer(sleep)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	return nil
}

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vidterm/vidterm/internal/frame"
)

// FrameSource yields raw bitmap payloads in display order. io.EOF marks
// the end-of-stream boundary and is not a failure.
type FrameSource interface {
	Next() ([]byte, error)
}

// Producer drives the decode/encode loop on its own goroutine.
type Producer struct {
	src       FrameSource
	transport *Transport
	progress  *Progress
	signal    *Signal

	// total is the expected frame count; zero means run to end-of-stream.
	total int
}

// NewProducer wires a producer to its transport, progress block, and
// fault signal.
func NewProducer(src FrameSource, transport *Transport, progress *Progress, signal *Signal, total int) *Producer {
	return &Producer{
		src:       src,
		transport: transport,
		progress:  progress,
		signal:    signal,
		total:     total,
	}
}

// Run executes the production loop until the expected frame count, the
// end-of-stream boundary, a fault, or context cancellation. It always
// closes the transport on the way out so the consumer observes a definite
// end. Run never panics across the goroutine boundary: recovered panics
// become internal faults.
func (p *Producer) Run(ctx context.Context) {
	defer p.transport.Close()

	var seq uint64
	defer func() {
		if r := recover(); r != nil {
			p.signal.Set(Fault{
				Kind:    FaultInternal,
				Message: fmt.Sprint(r),
				Context: fmt.Sprintf("frame %d", seq),
			})
		}
	}()

	for p.total == 0 || seq < uint64(p.total) {
		start := time.Now()

		payload, err := p.src.Next()
		if err == io.EOF {
			// Early end-of-stream is tolerated.
			return
		}
		if err != nil {
			p.signal.Set(Fault{
				Kind:    FaultSource,
				Message: err.Error(),
				Context: fmt.Sprintf("frame %d", seq),
			})
			return
		}

		raster, err := frame.DecodeBMP(payload)
		if errors.Is(err, frame.ErrShortFrame) {
			return
		}
		if err != nil {
			p.signal.Set(Fault{
				Kind:    FaultDecode,
				Message: err.Error(),
				Context: fmt.Sprintf("frame %d", seq),
			})
			return
		}

		if !p.transport.Push(ctx, Item{Seq: seq, Frame: frame.Encode(raster)}) {
			return
		}
		seq++
		p.progress.Record(time.Since(start))
	}
}

package pipeline

import (
	"sync/atomic"
	"time"
)

// initialInterval is the per-frame cost assumed before the first sample
// lands, keeping early ETA estimates pessimistic instead of zero.
const initialInterval = time.Second

// Progress publishes the producer's throughput to the consumer.
//
// Only plain atomic scalars: the values feed ETA display and buffering
// heuristics, which tolerate approximate, eventually-consistent reads, so
// no lock couples the two goroutines.
type Progress struct {
	completed atomic.Uint64
	totalNs   atomic.Int64
	meanNs    atomic.Int64
}

// NewProgress creates a progress block with the pessimistic initial mean.
func NewProgress() *Progress {
	p := &Progress{}
	p.meanNs.Store(int64(initialInterval))
	return p
}

// Record folds one frame's production cost into the running mean and
// increments the completed counter.
func (p *Progress) Record(cost time.Duration) {
	total := p.totalNs.Add(cost.Nanoseconds())
	n := p.completed.Add(1)
	p.meanNs.Store(total / int64(n))
}

// FramesCompleted returns the monotonic count of frames produced.
func (p *Progress) FramesCompleted() uint64 {
	return p.completed.Load()
}

// RollingInterval returns the running mean production cost per frame.
func (p *Progress) RollingInterval() time.Duration {
	return time.Duration(p.meanNs.Load())
}

// TimeLeft estimates how long producing the remaining frames will take.
func (p *Progress) TimeLeft(totalFrames int) time.Duration {
	remaining := int64(totalFrames) - int64(p.completed.Load())
	if remaining <= 0 {
		return 0
	}
	return time.Duration(remaining * p.meanNs.Load())
}

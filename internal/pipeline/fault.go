package pipeline

import (
	"fmt"
	"sync/atomic"
)

// FaultKind classifies a producer fault. The consumer reports the fault
// with its original classification intact.
type FaultKind int

const (
	// FaultSource means the decoder stream failed mid-read.
	FaultSource FaultKind = iota
	// FaultDecode means a bitmap payload could not be decoded.
	FaultDecode
	// FaultInternal means the producer recovered from a panic.
	FaultInternal
)

// String returns the classification name.
func (k FaultKind) String() string {
	switch k {
	case FaultSource:
		return "source"
	case FaultDecode:
		return "decode"
	case FaultInternal:
		return "internal"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Fault is the serialized form of a producer failure.
type Fault struct {
	// Kind is the original classification.
	Kind FaultKind

	// Message describes what failed.
	Message string

	// Context names where it failed, e.g. "frame 5".
	Context string
}

// Error renders the fault for operator-facing reporting.
func (f Fault) Error() string {
	if f.Context == "" {
		return fmt.Sprintf("%s fault: %s", f.Kind, f.Message)
	}
	return fmt.Sprintf("%s fault at %s: %s", f.Kind, f.Context, f.Message)
}

// Signal is the at-most-one-shot fault slot between producer and consumer.
// The first Set wins; later writes are discarded. Poll never blocks.
type Signal struct {
	fault atomic.Pointer[Fault]
}

// NewSignal creates an empty signal.
func NewSignal() *Signal {
	return &Signal{}
}

// Set records the fault if none has been recorded yet. Returns true when
// this call stored the fault.
func (s *Signal) Set(f Fault) bool {
	return s.fault.CompareAndSwap(nil, &f)
}

// Poll returns the recorded fault, if any, without blocking.
func (s *Signal) Poll() (Fault, bool) {
	if f := s.fault.Load(); f != nil {
		return *f, true
	}
	return Fault{}, false
}

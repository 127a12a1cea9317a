// Package pipeline connects the decode/encode producer to the display
// consumer.
//
// The producer runs as its own goroutine and owns the decoder stream. It
// talks to the consumer through exactly three channels of communication:
// a bounded Transport carrying immutable character frames in sequence
// order, a Progress block of atomic scalars feeding ETA and buffering
// heuristics, and a one-shot fault Signal. Faults never cross the
// goroutine boundary as panics or control flow; they are serialized into
// the Signal and polled by the consumer.
package pipeline

// Package player paces and renders character frames on the terminal.
//
// The consumer runs a four-state machine per displayed frame: wait for a
// buffered frame, compute the drift target, render, then pace. Pacing is
// adaptive: the clock starts at the source frame interval and relaxes
// under sustained overload by folding lag events into an online average,
// never dropping below the source interval. The same consumer serves live
// playback (frames arriving over the pipeline transport) and file
// playback (frames read from a container), behind a small queue
// abstraction.
//
// All session state lives in an explicit Session value constructed at
// start and threaded through every call; nothing is captured from
// enclosing scope.
package player

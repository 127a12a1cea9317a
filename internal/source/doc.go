// Package source supplies decoded bitmap frames to the pipeline.
//
// The raster source is an ffmpeg child process emitting a concatenated
// stream of BMP files at the session resolution. Each bitmap on the wire
// is framed by a 2-byte field (the BM magic, skipped) followed by a 4-byte
// little-endian total length; a length below the minimal bitmap size marks
// the end of the stream.
//
// Session metadata (total frame count, frame rate) comes from a one-shot
// ffprobe run before playback begins. A failed probe is fatal and reported
// before the playback UI ever takes over the terminal.
package source

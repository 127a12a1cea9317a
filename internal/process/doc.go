// Package process supervises the external media tools the player depends
// on: the ffmpeg decoder, the ffprobe metadata probe, and the audio player
// (aplay or play).
//
// Every child runs as a managed Process with lifecycle tracking, exit-code
// capture, and piped standard I/O. The Supervisor owns the full set of
// children for a session and guarantees they are terminated on shutdown:
// SIGTERM first, SIGKILL after a timeout. An operator interrupt must never
// leave a decoder or audio player running, so the supervisor's Shutdown is
// deferred on every exit path.
package process

// Package audio manages the soundtrack through external tools.
//
// Audio is always best-effort: extraction or playback failures degrade to
// silent playback with a warning, never a fatal error. The encoded track
// is produced by an ffmpeg child and played by whichever of aplay or play
// is installed. Both children run under the session's process supervisor
// so an interrupt tears them down with everything else.
//
// The player child is paused and resumed with stop/continue signals while
// the consumer is buffering, keeping the soundtrack from running ahead of
// the picture.
package audio

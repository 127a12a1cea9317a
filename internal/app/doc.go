// Package app assembles a session from command-line options and runs it.
//
// One invocation is one session, in one of three modes: live playback of
// a video file or URL, playback of a pre-encoded .vidtxt container, or a
// dump that encodes a video into a container file. The app owns mode
// dispatch, configuration layering, the process supervisor, and the exit
// code mapping; the domain work lives in the pipeline, player, and
// container packages.
package app

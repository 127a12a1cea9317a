// Package config resolves per-session playback settings.
//
// Settings come from three layers, lowest priority first: built-in
// defaults, an optional TOML defaults file, and command-line flags. The
// defaults file is strict about unknown keys so a typo fails loudly
// instead of being ignored. A missing file is not an error.
package config

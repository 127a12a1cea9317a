package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrBadSize is returned for a malformed COLSxLINES size string.
var ErrBadSize = errors.New("size must be COLSxLINES with positive integers")

// Settings is the resolved per-session configuration. Zero Columns or
// Lines means "use the live terminal size".
type Settings struct {
	Columns int
	Lines   int
	Audio   bool
	Debug   bool
}

// Base returns the built-in defaults.
func Base() Settings {
	return Settings{Audio: true}
}

// Defaults mirrors the optional TOML defaults file. Pointer fields
// distinguish "absent" from an explicit zero.
type Defaults struct {
	Columns *int  `toml:"columns"`
	Lines   *int  `toml:"lines"`
	Audio   *bool `toml:"audio"`
	Debug   *bool `toml:"debug"`
}

// Apply overlays the file's values onto s.
func (d Defaults) Apply(s *Settings) {
	if d.Columns != nil {
		s.Columns = *d.Columns
	}
	if d.Lines != nil {
		s.Lines = *d.Lines
	}
	if d.Audio != nil {
		s.Audio = *d.Audio
	}
	if d.Debug != nil {
		s.Debug = *d.Debug
	}
}

// Load reads the defaults file at path. A missing file yields an empty
// Defaults with no error. Unknown keys are rejected.
func Load(path string) (Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults{}, nil
		}
		return Defaults{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var d Defaults
	if err := dec.Decode(&d); err != nil {
		return Defaults{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return d, nil
}

// DefaultPath returns the conventional defaults file location, or "" when
// the user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vidterm", "config.toml")
}

// ParseSize splits a COLSxLINES string such as "120x40".
func ParseSize(s string) (cols, lines int, err error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	cols, err = strconv.Atoi(w)
	if err != nil || cols <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	lines, err = strconv.Atoi(h)
	if err != nil || lines <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	return cols, lines, nil
}

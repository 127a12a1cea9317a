package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vidterm/vidterm/internal/audio"
	"github.com/vidterm/vidterm/internal/config"
	"github.com/vidterm/vidterm/internal/container"
	"github.com/vidterm/vidterm/internal/player"
	"github.com/vidterm/vidterm/internal/process"
	"github.com/vidterm/vidterm/internal/surface"
)

// shutdownTimeout bounds how long exiting waits for supervised children
// between SIGTERM and SIGKILL.
const shutdownTimeout = 3 * time.Second

// Options carry the command line verbatim. Zero values mean "not given".
type Options struct {
	// Input is the video path, URL, or container file.
	Input string

	// Output overrides the dump destination.
	Output string

	// Dump encodes the input to a container file instead of playing it.
	Dump bool

	// NoAudio disables the soundtrack.
	NoAudio bool

	// Debug enables the bottom-line status overlay.
	Debug bool

	// Columns and Lines override the output resolution; Size is the
	// combined COLSxLINES form and is applied first.
	Columns int
	Lines   int
	Size    string

	// ConfigPath overrides the defaults file location.
	ConfigPath string
}

// App is one resolved invocation.
type App struct {
	opts     Options
	settings config.Settings
	log      *Logger
	sup      *process.Supervisor
}

// New layers the configuration (built-ins, defaults file, flags) and
// prepares the supervisor. It does not touch the terminal or start any
// children.
func New(opts Options) (*App, error) {
	if opts.Input == "" {
		return nil, ErrNoInput
	}

	settings := config.Base()
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	if path != "" {
		defaults, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		defaults.Apply(&settings)
	}

	if opts.Size != "" {
		cols, lines, err := config.ParseSize(opts.Size)
		if err != nil {
			return nil, err
		}
		settings.Columns, settings.Lines = cols, lines
	}
	if opts.Columns > 0 {
		settings.Columns = opts.Columns
	}
	if opts.Lines > 0 {
		settings.Lines = opts.Lines
	}
	if opts.NoAudio {
		settings.Audio = false
	}
	if opts.Debug {
		settings.Debug = true
	}

	return &App{
		opts:     opts,
		settings: settings,
		log:      newSessionLogger(!opts.Dump),
		sup:      process.NewSupervisor(),
	}, nil
}

// Run dispatches to the requested mode. Supervised children are torn down
// on every return path.
func (a *App) Run(ctx context.Context) error {
	defer a.sup.Shutdown(shutdownTimeout)

	encoded, err := isContainer(a.opts.Input)
	if err != nil {
		return err
	}

	switch {
	case a.opts.Dump:
		if encoded {
			return NewOperationError("dump", a.opts.Input, ErrAlreadyEncoded)
		}
		return a.dump(ctx)
	case encoded:
		return a.playFile(ctx)
	default:
		return a.playLive(ctx)
	}
}

// isRemote reports whether the input is a URL rather than a local path.
func isRemote(input string) bool {
	return strings.Contains(input, "://")
}

// isContainer detects an encoded text video by extension or by the magic
// bytes at the start of the file. Remote inputs are never containers.
func isContainer(input string) (bool, error) {
	if isRemote(input) {
		return false, nil
	}
	if strings.EqualFold(filepath.Ext(input), ".vidtxt") {
		return true, nil
	}

	f, err := os.Open(input)
	if err != nil {
		return false, NewOperationError("open", input, err)
	}
	defer f.Close()

	var prefix [8]byte
	if _, err := io.ReadFull(f, prefix[:]); err != nil {
		// Too short to carry the magic; let the probe classify it.
		return false, nil
	}
	return container.Sniff(prefix[:]), nil
}

// frameSize resolves the session resolution: explicit settings win, the
// live terminal size fills the gaps.
func (a *App) frameSize(surf surface.Surface) (cols, lines int) {
	cols, lines = a.settings.Columns, a.settings.Lines
	termCols, termLines := surf.Size()
	if cols <= 0 {
		cols = termCols
	}
	if lines <= 0 {
		lines = termLines
	}
	return cols, lines
}

// startAudio begins soundtrack playback, degrading to silence on failure.
func (a *App) startAudio(session *player.Session, start func() (*audio.Player, error)) {
	if !audio.Available() {
		a.log.Warn("no audio player installed, continuing without sound")
		return
	}
	if err := audio.Prime(a.sup); err != nil {
		a.log.Warn("audio device priming failed: %v", err)
	}
	p, err := start()
	if err != nil {
		a.log.Warn("audio disabled: %v", err)
		return
	}
	session.Audio = p
}

// initTerminal builds and initializes the full-screen render surface.
func initTerminal() (*surface.Terminal, error) {
	term, err := surface.NewTerminal()
	if err != nil {
		return nil, fmt.Errorf("create terminal: %w", err)
	}
	if err := term.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	return term, nil
}

package app

import (
	"context"
	"os"

	"github.com/vidterm/vidterm/internal/audio"
	"github.com/vidterm/vidterm/internal/container"
	"github.com/vidterm/vidterm/internal/pipeline"
	"github.com/vidterm/vidterm/internal/player"
)

// playFile plays a pre-encoded container. Frames come straight off disk,
// so there is no producer; the reader feeds the consumer directly.
func (a *App) playFile(ctx context.Context) error {
	f, err := os.Open(a.opts.Input)
	if err != nil {
		return NewOperationError("open", a.opts.Input, err)
	}
	defer f.Close()

	rd, err := container.NewReader(f)
	if err != nil {
		return NewOperationError("read", a.opts.Input, err)
	}

	term, err := initTerminal()
	if err != nil {
		return err
	}
	defer term.Fini()

	session := player.NewSession(rd.Header().FrameRate, rd.FrameCount(), term)
	session.Signal = pipeline.NewSignal()
	session.DebugOverlay = a.settings.Debug

	log := a.log.WithField("session", session.ID)
	log.Info("playing container %s: %dx%d, %.3f fps, %d frames",
		a.opts.Input, rd.Header().Columns, rd.Header().Lines,
		rd.Header().FrameRate, rd.FrameCount())

	if a.settings.Audio {
		// Audio reads its own handle; the frame reader keeps the first.
		if track, err := os.Open(a.opts.Input); err == nil {
			if section := rd.AudioSection(track); section != nil {
				defer track.Close()
				a.startAudio(session, func() (*audio.Player, error) {
					return audio.StartReader(a.sup, section)
				})
			} else {
				track.Close()
			}
		}
	}

	queue := player.NewReaderQueue(rd.NextFrame, session.Signal)
	if err := player.NewConsumer(session, queue).Run(ctx); err != nil {
		log.Error("playback failed: %v", err)
		return err
	}
	log.Info("playback complete")
	return nil
}

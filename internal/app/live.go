package app

import (
	"context"

	"github.com/vidterm/vidterm/internal/audio"
	"github.com/vidterm/vidterm/internal/pipeline"
	"github.com/vidterm/vidterm/internal/player"
	"github.com/vidterm/vidterm/internal/source"
)

// playLive decodes a video file or URL and plays it as it is encoded.
func (a *App) playLive(ctx context.Context) error {
	meta, err := source.Probe(ctx, a.opts.Input)
	if err != nil {
		return err
	}

	term, err := initTerminal()
	if err != nil {
		return err
	}
	defer term.Fini()

	cols, lines := a.frameSize(term)
	remote := isRemote(a.opts.Input)

	dec, err := source.StartDecoder(a.sup, source.DecodeOptions{
		Input:   a.opts.Input,
		Columns: cols,
		Lines:   lines,
		Remote:  remote,
	})
	if err != nil {
		return err
	}

	session := player.NewSession(meta.FrameRate, meta.TotalFrames, term)
	session.Progress = pipeline.NewProgress()
	session.Signal = pipeline.NewSignal()
	session.DebugOverlay = a.settings.Debug

	log := a.log.WithField("session", session.ID)
	log.Info("playing %s at %dx%d, %.3f fps, %d frames",
		a.opts.Input, cols, lines, meta.FrameRate, meta.TotalFrames)

	if a.settings.Audio {
		a.startAudio(session, func() (*audio.Player, error) {
			return audio.StartSource(a.sup, a.opts.Input, remote)
		})
	}

	transport := pipeline.NewTransport(pipeline.DefaultTransportDepth)
	producer := pipeline.NewProducer(dec.Stream(), transport, session.Progress, session.Signal, meta.TotalFrames)
	go producer.Run(ctx)

	err = player.NewConsumer(session, player.NewTransportQueue(transport)).Run(ctx)
	if err != nil {
		log.Error("playback failed: %v", err)
		if detail := dec.Failure(); detail != "" {
			return NewOperationError("play", a.opts.Input, err).WithContext(detail)
		}
		return err
	}
	log.Info("playback complete")
	return nil
}

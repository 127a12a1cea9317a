package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/vidterm/vidterm/internal/audio"
	"github.com/vidterm/vidterm/internal/container"
	"github.com/vidterm/vidterm/internal/pipeline"
	"github.com/vidterm/vidterm/internal/process"
	"github.com/vidterm/vidterm/internal/source"
)

// progressEvery throttles the dump progress line.
const progressEvery = 100 * time.Millisecond

// dump encodes the input into a container file: header, extracted audio,
// then every frame through the same decode/encode pipeline playback uses.
func (a *App) dump(ctx context.Context) error {
	meta, err := source.Probe(ctx, a.opts.Input)
	if err != nil {
		return err
	}

	cols, lines := a.dumpSize()
	remote := isRemote(a.opts.Input)

	path, err := dumpPath(a.opts.Output, a.opts.Input)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return NewOperationError("create", path, err)
	}
	defer out.Close()

	w, err := container.NewWriter(out, uint32(cols), uint32(lines), meta.FrameRate)
	if err != nil {
		return NewOperationError("dump", path, err)
	}

	a.log.Info("dumping %s to %s at %dx%d, %.3f fps, %d frames",
		a.opts.Input, path, cols, lines, meta.FrameRate, meta.TotalFrames)

	if a.settings.Audio {
		proc, err := audio.Extract(a.sup, a.opts.Input, remote)
		if err != nil {
			a.log.Warn("audio extraction failed, container will be silent: %v", err)
		} else if _, err := embedAudio(w, proc, a.log); err != nil {
			return NewOperationError("dump", path, err)
		}
	}

	dec, err := source.StartDecoder(a.sup, source.DecodeOptions{
		Input:   a.opts.Input,
		Columns: cols,
		Lines:   lines,
		Remote:  remote,
	})
	if err != nil {
		return err
	}

	progress := pipeline.NewProgress()
	signal := pipeline.NewSignal()
	transport := pipeline.NewTransport(pipeline.DefaultTransportDepth)
	producer := pipeline.NewProducer(dec.Stream(), transport, progress, signal, meta.TotalFrames)
	go producer.Run(ctx)

	var lastPrint time.Time
	for {
		item, status := transport.Pop(time.Second)
		if status == pipeline.PopClosed {
			break
		}
		if status == pipeline.PopTimeout {
			if fault, ok := signal.Poll(); ok {
				return fault
			}
			continue
		}
		if err := w.WriteFrame(item.Frame); err != nil {
			return NewOperationError("dump", path, err)
		}
		if time.Since(lastPrint) >= progressEvery {
			lastPrint = time.Now()
			fmt.Fprint(os.Stdout, dumpStatus(cols, w.Frames(), meta.TotalFrames,
				progress.RollingInterval(), progress.TimeLeft(meta.TotalFrames)))
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	if fault, ok := signal.Poll(); ok {
		return fault
	}

	fmt.Fprintf(os.Stdout, "\nWrote %d frames to %s\n", w.Frames(), path)
	return nil
}

// embedAudio copies the extractor's stream into the container, then
// checks the extractor finished cleanly. A mid-stream extractor death
// leaves a shorter blob than the source had; the patched header length
// still matches what was written, so the file stays playable.
func embedAudio(w *container.Writer, proc *process.Process, log *Logger) (int64, error) {
	n, err := w.AppendAudio(proc.Stdout)
	if err != nil {
		return n, err
	}
	<-proc.Done()
	if code := proc.ExitCode(); code != 0 {
		log.Warn("audio extractor exited with status %d, the %d embedded bytes may be truncated", code, n)
		return n, nil
	}
	log.Info("embedded %d audio bytes", n)
	return n, nil
}

// dumpSize resolves the dump resolution: explicit settings win, then the
// invoking terminal's size, then a plain 80x24.
func (a *App) dumpSize() (cols, lines int) {
	cols, lines = a.settings.Columns, a.settings.Lines
	if cols > 0 && lines > 0 {
		return cols, lines
	}
	termCols, termLines, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		termCols, termLines = 80, 24
	}
	if cols <= 0 {
		cols = termCols
	}
	if lines <= 0 {
		lines = termLines
	}
	return cols, lines
}

// dumpPath picks the output file without overwriting: name.vidtxt first,
// then name.1.vidtxt, name.2.vidtxt and so on.
func dumpPath(output, input string) (string, error) {
	base := output
	if base == "" {
		name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		if name == "" || name == "." {
			name = "out"
		}
		base = name + ".vidtxt"
	}
	if !fileExists(base) {
		return base, nil
	}

	stem := strings.TrimSuffix(base, ".vidtxt")
	for i := 1; i < 1000; i++ {
		candidate := fmt.Sprintf("%s.%d.vidtxt", stem, i)
		if !fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w near %s", ErrNoOutputName, base)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// dumpStatus renders the dump progress line: the completed fraction of
// the line is shown in reverse video.
func dumpStatus(width, written, total int, mean, left time.Duration) string {
	fps := 0.0
	if mean > 0 {
		fps = float64(time.Second) / float64(mean)
	}
	text := fmt.Sprintf(" %d/%d frames, %.1f fps, %s left", written, total, fps, formatClock(left))
	if width < len(text) {
		width = len(text)
	}
	if pad := width - len(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	split := 0
	if total > 0 {
		split = width * written / total
	}
	if split > len(text) {
		split = len(text)
	}
	return "\r\x1b[7m" + text[:split] + "\x1b[0m" + text[split:]
}

// formatClock renders a duration as H:MM:SS.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", s/3600, (s/60)%60, s%60)
}

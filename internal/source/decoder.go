package source

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/vidterm/vidterm/internal/process"
)

// startupGrace is how long a freshly started decoder is watched for an
// immediate failure before its output is trusted.
const startupGrace = 100 * time.Millisecond

// DecodeOptions configure one decoder run.
type DecodeOptions struct {
	// Input is a local path or a remote URL.
	Input string

	// Columns and Lines set the decoder's output resolution.
	Columns int
	Lines   int

	// Remote enables stream reconnection flags for URL inputs.
	Remote bool
}

// Decoder is a running ffmpeg child emitting framed bitmaps on stdout.
type Decoder struct {
	proc   *process.Process
	stream *Stream
}

// StartDecoder launches ffmpeg under the supervisor and verifies it
// survives startup. An immediate exit is classified as SourceUnavailable
// with the child's stderr as detail.
func StartDecoder(sup *process.Supervisor, opts DecodeOptions) (*Decoder, error) {
	args := []string{"-nostdin"}
	if opts.Remote {
		args = append(args,
			"-reconnect", "1",
			"-reconnect_streamed", "1",
			"-reconnect_delay_max", "5",
		)
	}
	args = append(args,
		"-i", opts.Input,
		"-loglevel", "error",
		"-s", fmt.Sprintf("%dx%d", opts.Columns, opts.Lines),
		"-c:v", "bmp",
		"-f", "rawvideo",
		"-an",
		"pipe:1",
	)

	proc, err := sup.Start("decoder", exec.Command("ffmpeg", args...))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	// Catch decoders that die on malformed input before the first frame.
	select {
	case <-proc.Done():
		detail := drainStderr(proc.Stderr)
		if detail == "" {
			detail = fmt.Sprintf("decoder exited with status %d", proc.ExitCode())
		}
		return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, detail)
	case <-time.After(startupGrace):
	}

	return &Decoder{proc: proc, stream: NewStream(proc.Stdout)}, nil
}

// Stream returns the framed bitmap stream.
func (d *Decoder) Stream() *Stream {
	return d.stream
}

// Failure returns the decoder's stderr if it exited abnormally mid-stream,
// or an empty string for a clean or still-running decoder.
func (d *Decoder) Failure() string {
	select {
	case <-d.proc.Done():
	default:
		return ""
	}
	if d.proc.ExitCode() == 0 {
		return ""
	}
	return drainStderr(d.proc.Stderr)
}

// drainStderr reads whatever the child left on stderr.
func drainStderr(r io.Reader) string {
	if r == nil {
		return ""
	}
	data, _ := io.ReadAll(io.LimitReader(r, 4096))
	return strings.TrimSpace(string(data))
}

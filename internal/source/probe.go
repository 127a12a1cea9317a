package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// defaultFrameRate is used when the probe reports a zero frame rate.
const defaultFrameRate = 30.0

// Metadata is the probed description of a video source.
type Metadata struct {
	// TotalFrames is the packet or frame count of the first stream.
	TotalFrames int

	// FrameRate is the source frame rate in frames per second.
	FrameRate float64
}

// Duration returns the source duration implied by the frame count.
func (m Metadata) Duration() time.Duration {
	if m.FrameRate <= 0 {
		return 0
	}
	return time.Duration(float64(m.TotalFrames) / m.FrameRate * float64(time.Second))
}

// probeOutput mirrors the slice of ffprobe's -show_streams JSON we consume.
type probeOutput struct {
	Streams []probeStream `json:"streams"`
}

type probeStream struct {
	NbFrames      string `json:"nb_frames"`
	NbReadPackets string `json:"nb_read_packets"`
	RFrameRate    string `json:"r_frame_rate"`
}

// Probe runs ffprobe against the input and extracts playback metadata.
// Any probe failure, a missing stream, or unusable numbers classify as
// ErrSourceUnavailable.
func Probe(ctx context.Context, input string) (Metadata, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-hide_banner",
		"-count_packets",
		"-show_streams",
		"-of", "json",
		input,
	)
	out, err := cmd.Output()
	if err != nil {
		detail := probeErrDetail(err)
		return Metadata{}, fmt.Errorf("%w: probe %s: %s", ErrSourceUnavailable, input, detail)
	}

	var parsed probeOutput
	if err := json.Unmarshal(out, &parsed); err != nil {
		return Metadata{}, fmt.Errorf("%w: decode probe output: %v", ErrSourceUnavailable, err)
	}
	return metadataFromProbe(parsed)
}

// metadataFromProbe validates the first stream's counters.
func metadataFromProbe(parsed probeOutput) (Metadata, error) {
	if len(parsed.Streams) == 0 {
		return Metadata{}, fmt.Errorf("%w: no streams in probe output; is this file a video?", ErrSourceUnavailable)
	}
	stream := parsed.Streams[0]

	countField := stream.NbFrames
	if countField == "" {
		countField = stream.NbReadPackets
	}
	total, err := strconv.Atoi(countField)
	if err != nil || total <= 0 {
		return Metadata{}, fmt.Errorf("%w: unusable frame count %q", ErrSourceUnavailable, countField)
	}

	rate, err := parseRate(stream.RFrameRate)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if rate == 0 {
		rate = defaultFrameRate
	}

	return Metadata{TotalFrames: total, FrameRate: rate}, nil
}

// parseRate parses ffprobe's fractional rate notation, e.g. "30000/1001".
func parseRate(raw string) (float64, error) {
	num, den, ok := strings.Cut(raw, "/")
	if !ok {
		return 0, fmt.Errorf("unusable frame rate %q", raw)
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, fmt.Errorf("unusable frame rate %q", raw)
	}
	d, err := strconv.Atoi(den)
	if err != nil || d == 0 {
		return 0, fmt.Errorf("unusable frame rate %q", raw)
	}
	return float64(n) / float64(d), nil
}

// probeErrDetail extracts stderr from a failed probe when available.
func probeErrDetail(err error) string {
	if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
		return strings.TrimSpace(string(exitErr.Stderr))
	}
	return err.Error()
}

package app

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vidterm/vidterm/internal/container"
	"github.com/vidterm/vidterm/internal/process"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

func TestDumpPathFromInputName(t *testing.T) {
	dir := t.TempDir()
	got, err := dumpPath("", filepath.Join(dir, "holiday.mp4"))
	if err != nil {
		t.Fatalf("dumpPath failed: %v", err)
	}
	if got != "holiday.vidtxt" {
		t.Errorf("path = %q, want holiday.vidtxt", got)
	}
}

func TestDumpPathExplicitOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "custom.vidtxt")
	got, err := dumpPath(out, "whatever.mp4")
	if err != nil {
		t.Fatalf("dumpPath failed: %v", err)
	}
	if got != out {
		t.Errorf("path = %q, want %q", got, out)
	}
}

func TestDumpPathAvoidsCollisions(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "movie.vidtxt")
	touch(t, out)
	touch(t, filepath.Join(dir, "movie.1.vidtxt"))

	got, err := dumpPath(out, "movie.mp4")
	if err != nil {
		t.Fatalf("dumpPath failed: %v", err)
	}
	if got != filepath.Join(dir, "movie.2.vidtxt") {
		t.Errorf("path = %q, want the next free suffix", got)
	}
}

// startFakeExtractor runs a shell stand-in for the audio extractor that
// emits the given payload on stdout and exits with the given status.
func startFakeExtractor(t *testing.T, sup *process.Supervisor, payload string, status int) *process.Process {
	t.Helper()
	script := fmt.Sprintf("printf '%s'; exit %d", payload, status)
	proc, err := sup.Start("audio-extractor", exec.Command("sh", "-c", script))
	if err != nil {
		t.Fatalf("start fake extractor: %v", err)
	}
	return proc
}

func newTestWriter(t *testing.T) *container.Writer {
	t.Helper()
	out, err := os.Create(filepath.Join(t.TempDir(), "out.vidtxt"))
	if err != nil {
		t.Fatalf("create output: %v", err)
	}
	t.Cleanup(func() { out.Close() })
	w, err := container.NewWriter(out, 4, 4, 1.0)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	return w
}

func TestEmbedAudioWarnsOnExtractorFailure(t *testing.T) {
	sup := process.NewSupervisor()
	defer sup.Shutdown(time.Second)

	w := newTestWriter(t)
	proc := startFakeExtractor(t, sup, "halfatrack", 3)

	var buf bytes.Buffer
	n, err := embedAudio(w, proc, NewLogger(&buf, LogLevelInfo))
	if err != nil {
		t.Fatalf("embedAudio failed: %v", err)
	}
	if n != int64(len("halfatrack")) {
		t.Errorf("embedded %d bytes, want %d", n, len("halfatrack"))
	}
	// The blob stays structurally consistent with the header length.
	if w.Header().AudioBytes != uint64(n) {
		t.Errorf("header audio length = %d, want %d", w.Header().AudioBytes, n)
	}
	out := buf.String()
	if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "status 3") {
		t.Errorf("extractor failure not surfaced: %q", out)
	}
}

func TestEmbedAudioCleanExtractor(t *testing.T) {
	sup := process.NewSupervisor()
	defer sup.Shutdown(time.Second)

	w := newTestWriter(t)
	proc := startFakeExtractor(t, sup, "wholetrack", 0)

	var buf bytes.Buffer
	n, err := embedAudio(w, proc, NewLogger(&buf, LogLevelInfo))
	if err != nil {
		t.Fatalf("embedAudio failed: %v", err)
	}
	if n != int64(len("wholetrack")) {
		t.Errorf("embedded %d bytes, want %d", n, len("wholetrack"))
	}
	if strings.Contains(buf.String(), "[WARN]") {
		t.Errorf("clean extractor produced a warning: %q", buf.String())
	}
}

func TestDumpStatusHalfway(t *testing.T) {
	line := dumpStatus(40, 50, 100, 100*time.Millisecond, 5*time.Second)
	if !strings.HasPrefix(line, "\r\x1b[7m") {
		t.Fatalf("line does not start with reverse video: %q", line)
	}
	reset := strings.Index(line, "\x1b[0m")
	if reset < 0 {
		t.Fatalf("no reset sequence: %q", line)
	}
	// 50 of 100 frames on a 40-column line: reverse video covers 20 cells.
	if covered := reset - len("\r\x1b[7m"); covered != 20 {
		t.Errorf("reverse video covers %d cells, want 20", covered)
	}
	if !strings.Contains(line, "50/100 frames") {
		t.Errorf("missing frame counts: %q", line)
	}
	if !strings.Contains(line, "10.0 fps") {
		t.Errorf("missing rate: %q", line)
	}
	if !strings.Contains(line, "0:00:05 left") {
		t.Errorf("missing ETA: %q", line)
	}
}

func TestDumpStatusNeverTruncates(t *testing.T) {
	// A terminal narrower than the text keeps the whole text.
	line := dumpStatus(5, 1234, 100000, time.Millisecond, time.Hour)
	if !strings.Contains(line, "1234/100000 frames") {
		t.Errorf("counts truncated: %q", line)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00:00"},
		{61 * time.Second, "0:01:01"},
		{2*time.Hour + 30*time.Minute, "2:30:00"},
		{-5 * time.Second, "0:00:00"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.d); got != tt.want {
			t.Errorf("formatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

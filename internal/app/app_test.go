package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vidterm/vidterm/internal/player"
)

// isolatedConfig returns a ConfigPath that is guaranteed absent so tests
// never pick up the developer's real defaults file.
func isolatedConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.toml")
}

func TestNewRequiresInput(t *testing.T) {
	if _, err := New(Options{}); !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}

func TestNewLayersConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("columns = 100\nlines = 50\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// --size overrides the file, then the individual flags win over --size.
	a, err := New(Options{
		Input:      "movie.mp4",
		ConfigPath: path,
		Size:       "50x20",
		Columns:    60,
		NoAudio:    true,
		Debug:      true,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if a.settings.Columns != 60 {
		t.Errorf("columns = %d, want flag value 60", a.settings.Columns)
	}
	if a.settings.Lines != 20 {
		t.Errorf("lines = %d, want --size value 20", a.settings.Lines)
	}
	if a.settings.Audio {
		t.Error("audio still enabled after --no-audio")
	}
	if !a.settings.Debug {
		t.Error("debug flag lost")
	}
}

func TestNewRejectsBadSize(t *testing.T) {
	_, err := New(Options{Input: "movie.mp4", ConfigPath: isolatedConfig(t), Size: "huge"})
	if err == nil {
		t.Fatal("malformed --size accepted")
	}
}

func TestIsContainerByExtension(t *testing.T) {
	for _, name := range []string{"movie.vidtxt", "MOVIE.VIDTXT"} {
		got, err := isContainer(name)
		if err != nil {
			t.Fatalf("isContainer(%q) failed: %v", name, err)
		}
		if !got {
			t.Errorf("isContainer(%q) = false, extension should decide", name)
		}
	}
}

func TestIsContainerBySniff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "renamed.dat")
	if err := os.WriteFile(path, []byte("VIDTXT\x00\x00rest of header"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	got, err := isContainer(path)
	if err != nil {
		t.Fatalf("isContainer failed: %v", err)
	}
	if !got {
		t.Error("magic bytes not recognized")
	}
}

func TestIsContainerPlainVideo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movie.mp4")
	if err := os.WriteFile(path, []byte("\x00\x00\x00\x20ftypisom"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	got, err := isContainer(path)
	if err != nil {
		t.Fatalf("isContainer failed: %v", err)
	}
	if got {
		t.Error("plain video misdetected as container")
	}
}

func TestIsContainerRemoteURL(t *testing.T) {
	got, err := isContainer("https://example.com/movie.mp4")
	if err != nil {
		t.Fatalf("isContainer failed: %v", err)
	}
	if got {
		t.Error("remote URL misdetected as container")
	}
}

func TestIsContainerMissingFile(t *testing.T) {
	_, err := isContainer(filepath.Join(t.TempDir(), "absent.mp4"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestDumpRejectsContainerInput(t *testing.T) {
	a, err := New(Options{Input: "already.vidtxt", ConfigPath: isolatedConfig(t), Dump: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := a.Run(context.Background()); !errors.Is(err, ErrAlreadyEncoded) {
		t.Fatalf("expected ErrAlreadyEncoded, got %v", err)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{context.Canceled, 0},
		{player.ErrBufferStarved, 2},
		{NewOperationError("play", "x", player.ErrBufferStarved), 2},
		{errors.New("anything else"), 1},
		{NewOperationError("open", "x", os.ErrNotExist), 1},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

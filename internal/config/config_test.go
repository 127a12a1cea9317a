package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	d, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file must not error, got %v", err)
	}
	if d.Columns != nil || d.Lines != nil || d.Audio != nil || d.Debug != nil {
		t.Errorf("missing file yielded non-empty defaults: %+v", d)
	}
}

func TestLoadAndApply(t *testing.T) {
	path := writeConfig(t, "columns = 120\nlines = 40\naudio = false\n")
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	s := Base()
	d.Apply(&s)
	if s.Columns != 120 || s.Lines != 40 {
		t.Errorf("size = %dx%d, want 120x40", s.Columns, s.Lines)
	}
	if s.Audio {
		t.Error("audio = true, file disabled it")
	}
	if s.Debug {
		t.Error("debug = true, file never set it")
	}
}

func TestLoadPartialFileKeepsBase(t *testing.T) {
	path := writeConfig(t, "debug = true\n")
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	s := Base()
	d.Apply(&s)
	if !s.Audio {
		t.Error("audio default lost when file omits it")
	}
	if !s.Debug {
		t.Error("debug not applied")
	}
	if s.Columns != 0 {
		t.Errorf("columns = %d, want 0 (terminal size)", s.Columns)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "colums = 80\n")
	if _, err := Load(path); err == nil {
		t.Fatal("misspelled key was silently accepted")
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, "columns = [what\n")
	if _, err := Load(path); err == nil {
		t.Fatal("malformed TOML was accepted")
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in          string
		cols, lines int
		ok          bool
	}{
		{"120x40", 120, 40, true},
		{"80X24", 80, 24, true},
		{"120", 0, 0, false},
		{"0x40", 0, 0, false},
		{"120x-1", 0, 0, false},
		{"axb", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		cols, lines, err := ParseSize(tt.in)
		if tt.ok {
			if err != nil {
				t.Errorf("ParseSize(%q) failed: %v", tt.in, err)
				continue
			}
			if cols != tt.cols || lines != tt.lines {
				t.Errorf("ParseSize(%q) = %dx%d, want %dx%d", tt.in, cols, lines, tt.cols, tt.lines)
			}
			continue
		}
		if !errors.Is(err, ErrBadSize) {
			t.Errorf("ParseSize(%q) = %v, want ErrBadSize", tt.in, err)
		}
	}
}

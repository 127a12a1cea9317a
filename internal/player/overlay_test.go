package player

import (
	"strings"
	"testing"
	"time"
)

func TestOverlayLineLayout(t *testing.T) {
	line, standout := overlayLine(80, 50, 48, 2, 2*time.Second, 10*time.Second, 100)

	if !strings.HasPrefix(line, "[Frame (required,drawn,lag): (50,48,2), 0:00:02]") {
		t.Errorf("line prefix wrong: %q", line)
	}
	if !strings.HasSuffix(line, "[0:00:10, 100 frames, 50.0%] ") {
		t.Errorf("line suffix wrong: %q", line)
	}
	if len(line) != 80 {
		t.Errorf("line length = %d, want padded to 80", len(line))
	}
	if standout != 40 {
		t.Errorf("standout = %d, want 40 at 50%%", standout)
	}
}

func TestOverlayLineNarrowTerminal(t *testing.T) {
	// When the terminal is too narrow for both halves, the right half is
	// dropped rather than overflowing.
	line, _ := overlayLine(20, 1, 1, 0, time.Second, time.Minute, 1000)
	if strings.Contains(line, "frames") {
		t.Errorf("narrow line still carries the right half: %q", line)
	}
}

func TestClockFormat(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00:00"},
		{59 * time.Second, "0:00:59"},
		{90 * time.Second, "0:01:30"},
		{3*time.Hour + 4*time.Minute + 5*time.Second, "3:04:05"},
		{-time.Second, "0:00:00"},
	}
	for _, tt := range tests {
		if got := clockFormat(tt.d); got != tt.want {
			t.Errorf("clockFormat(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

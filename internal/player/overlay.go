package player

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// overlayLine builds the debug status line and the column up to which it
// should be drawn in reverse video, forming a two-tone progress bar.
func overlayLine(width, calculated, displayed, behind int, elapsed, total time.Duration, totalFrames int) (string, int) {
	left := fmt.Sprintf("[Frame (required,drawn,lag): (%d,%d,%d), %s]",
		calculated, displayed, behind, clockFormat(elapsed))

	percent := 0.0
	if totalFrames > 0 {
		percent = float64(calculated) / float64(totalFrames) * 100
	}
	right := fmt.Sprintf("[%s, %d frames, %.1f%%] ", clockFormat(total), totalFrames, percent)

	line := left
	if pad := width - (len(left) + len(right)); pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}

	standout := 0
	if totalFrames > 0 {
		standout = int(math.Round(float64(calculated) / float64(totalFrames) * float64(width)))
	}
	return line, standout
}

// clockFormat renders a duration as H:MM:SS.
func clockFormat(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d.Seconds())
	return fmt.Sprintf("%d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

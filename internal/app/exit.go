package app

import (
	"context"
	"errors"

	"github.com/vidterm/vidterm/internal/player"
)

// ExitCode maps a session result to the process exit status: 0 for a
// clean run or an interrupt, 2 for buffering starvation, 1 for every
// other failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 0
	case errors.Is(err, player.ErrBufferStarved):
		return 2
	default:
		return 1
	}
}

package app

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestOperationErrorMessage(t *testing.T) {
	err := NewOperationError("play", "movie.mp4", os.ErrNotExist).WithContext("decoder gone")
	msg := err.Error()
	for _, want := range []string{"play movie.mp4", "decoder gone", "file does not exist"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestOperationErrorUnwrap(t *testing.T) {
	err := NewOperationError("open", "x.vidtxt", os.ErrPermission)
	if !errors.Is(err, os.ErrPermission) {
		t.Error("wrapped error not matched by errors.Is")
	}
	if errors.Is(err, os.ErrNotExist) {
		t.Error("matched an unrelated error")
	}
}

func TestOperationErrorNilReceiver(t *testing.T) {
	var err *OperationError
	if err.WithContext("ignored") != nil {
		t.Error("WithContext on nil receiver must stay nil")
	}
	if err.Error() != "" {
		t.Error("nil receiver message must be empty")
	}
}

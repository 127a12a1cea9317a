package source

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

// framedPayload builds one wire frame: 2 skip bytes, u32 LE length, body.
func framedPayload(body []byte) []byte {
	size := uint32(len(body) + 6)
	out := make([]byte, 0, size)
	out = append(out, 'B', 'M')
	var lenField [4]byte
	binary.LittleEndian.PutUint32(lenField[:], size)
	out = append(out, lenField[:]...)
	return append(out, body...)
}

func TestStreamNext(t *testing.T) {
	body := []byte("bitmap-bytes-here")
	s := NewStream(bytes.NewReader(framedPayload(body)))

	payload, err := s.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if payload[0] != 'B' || payload[1] != 'M' {
		t.Errorf("reconstructed payload missing BM magic: % x", payload[:2])
	}
	if got := binary.LittleEndian.Uint32(payload[2:6]); got != uint32(len(body)+6) {
		t.Errorf("length field = %d, want %d", got, len(body)+6)
	}
	if !bytes.Equal(payload[6:], body) {
		t.Errorf("body mismatch: %q", payload[6:])
	}
}

func TestStreamSequential(t *testing.T) {
	var wire bytes.Buffer
	wire.Write(framedPayload([]byte("first")))
	wire.Write(framedPayload([]byte("second")))

	s := NewStream(&wire)
	for _, want := range []string{"first", "second"} {
		payload, err := s.Next()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if string(payload[6:]) != want {
			t.Errorf("payload = %q, want %q", payload[6:], want)
		}
	}
	if _, err := s.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after last frame, got %v", err)
	}
}

func TestStreamShortLengthIsEOF(t *testing.T) {
	// A length below the minimal bitmap size is the end-of-stream marker.
	wire := []byte{'B', 'M', 5, 0, 0, 0}
	s := NewStream(bytes.NewReader(wire))
	if _, err := s.Next(); err != io.EOF {
		t.Errorf("expected io.EOF for short length, got %v", err)
	}
}

func TestStreamTruncatedHeaderIsEOF(t *testing.T) {
	s := NewStream(bytes.NewReader([]byte{'B', 'M', 1}))
	if _, err := s.Next(); err != io.EOF {
		t.Errorf("expected io.EOF for truncated framing, got %v", err)
	}
}

func TestStreamEmptyIsEOF(t *testing.T) {
	s := NewStream(bytes.NewReader(nil))
	if _, err := s.Next(); err != io.EOF {
		t.Errorf("expected io.EOF for empty stream, got %v", err)
	}
}

func TestStreamTruncatedBodyIsError(t *testing.T) {
	wire := framedPayload([]byte("full-body"))
	s := NewStream(bytes.NewReader(wire[:len(wire)-3]))
	if _, err := s.Next(); err == nil || err == io.EOF {
		t.Errorf("expected a truncation error, got %v", err)
	}
}

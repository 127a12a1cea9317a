package surface

import "testing"

func TestNullSetRowClipsWidth(t *testing.T) {
	n := NewNull(5, 3)
	n.SetRow(1, "abcdefgh")
	if got := n.Row(1); got != "abcde" {
		t.Errorf("row = %q, want %q", got, "abcde")
	}
}

func TestNullSetRowDropsOutOfRange(t *testing.T) {
	n := NewNull(5, 3)
	n.SetRow(7, "xxxxx")
	n.SetRow(-1, "xxxxx")
	for y := 0; y < 3; y++ {
		if got := n.Row(y); got != "     " {
			t.Errorf("row %d = %q, want blank", y, got)
		}
	}
}

func TestNullSetStatusStandout(t *testing.T) {
	n := NewNull(10, 4)
	n.SetStatus("progress", 3)
	for i := 0; i < 8; i++ {
		want := i < 3
		if got := n.Standout(3, i); got != want {
			t.Errorf("standout at col %d = %v, want %v", i, got, want)
		}
	}
}

func TestNullResize(t *testing.T) {
	n := NewNull(10, 5)
	n.SetRow(4, "bottom")
	n.Resize(4, 2)
	w, h := n.Size()
	if w != 4 || h != 2 {
		t.Fatalf("size = %dx%d, want 4x2", w, h)
	}
	// Writes after the resize clip to the new bounds without panicking.
	n.SetRow(1, "longer than four")
	if got := n.Row(1); got != "long" {
		t.Errorf("row = %q, want %q", got, "long")
	}
	n.SetRow(4, "gone")
}

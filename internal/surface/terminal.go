package surface

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal implements Surface on a tcell screen.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal allocates a terminal surface without touching the terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init enters the alternate screen and hides the cursor.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	return nil
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Size returns the live terminal dimensions.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// SetRow writes one frame row, clipped to the live terminal size.
func (t *Terminal) SetRow(row int, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, height := t.screen.Size()
	if row < 0 || row >= height {
		return
	}
	for i := 0; i < len(text) && i < width; i++ {
		t.screen.SetContent(i, row, rune(text[i]), nil, tcell.StyleDefault)
	}
}

// SetStatus writes the bottom status line with a reverse-video prefix.
func (t *Terminal) SetStatus(text string, standout int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, height := t.screen.Size()
	if height == 0 {
		return
	}
	row := height - 1
	normal := tcell.StyleDefault
	reversed := tcell.StyleDefault.Reverse(true)
	for i := 0; i < len(text) && i < width-1; i++ {
		style := normal
		if i < standout {
			style = reversed
		}
		t.screen.SetContent(i, row, rune(text[i]), nil, style)
	}
}

// Clear erases the screen.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

// Show flushes pending drawing.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

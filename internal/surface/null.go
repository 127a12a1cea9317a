package surface

// Null is an in-memory Surface for tests. It records every written cell
// and supports simulated resizes.
type Null struct {
	width, height int
	cells         [][]byte
	standout      [][]bool
}

// NewNull creates a null surface with the given dimensions.
func NewNull(width, height int) *Null {
	n := &Null{}
	n.Resize(width, height)
	return n
}

func (n *Null) Init() error { return nil }

func (n *Null) Fini() {}

func (n *Null) Size() (int, int) {
	return n.width, n.height
}

func (n *Null) SetRow(row int, text string) {
	if row < 0 || row >= n.height {
		return
	}
	for i := 0; i < len(text) && i < n.width; i++ {
		n.cells[row][i] = text[i]
	}
}

func (n *Null) SetStatus(text string, standout int) {
	if n.height == 0 {
		return
	}
	row := n.height - 1
	for i := 0; i < len(text) && i < n.width-1; i++ {
		n.cells[row][i] = text[i]
		n.standout[row][i] = i < standout
	}
}

func (n *Null) Clear() {
	for y := range n.cells {
		for x := range n.cells[y] {
			n.cells[y][x] = ' '
			n.standout[y][x] = false
		}
	}
}

func (n *Null) Show() {}

// Row returns the text currently on a row, for assertions.
func (n *Null) Row(row int) string {
	if row < 0 || row >= n.height {
		return ""
	}
	return string(n.cells[row])
}

// Standout reports whether the cell was drawn in reverse video.
func (n *Null) Standout(row, col int) bool {
	if row < 0 || row >= n.height || col < 0 || col >= n.width {
		return false
	}
	return n.standout[row][col]
}

// Resize simulates a terminal resize.
func (n *Null) Resize(width, height int) {
	n.width, n.height = width, height
	n.cells = make([][]byte, height)
	n.standout = make([][]bool, height)
	for y := 0; y < height; y++ {
		n.cells[y] = make([]byte, width)
		n.standout[y] = make([]bool, width)
		for x := range n.cells[y] {
			n.cells[y][x] = ' '
		}
	}
}

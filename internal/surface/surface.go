package surface

// Surface is the display the consumer renders character frames onto.
type Surface interface {
	// Init takes over the terminal. Must be called before any drawing.
	Init() error

	// Fini restores the terminal. Safe to call exactly once on every
	// exit path, including faults and interrupts.
	Fini()

	// Size returns the live terminal dimensions, which may differ from
	// the authored frame size after a resize.
	Size() (columns, lines int)

	// SetRow writes text starting at column zero of the given row.
	// Rows outside the surface are dropped and text wider than the
	// surface is truncated.
	SetRow(row int, text string)

	// SetStatus writes the status line on the bottom row. Cells with
	// index below standout are drawn in reverse video, forming the
	// two-tone progress bar.
	SetStatus(text string, standout int)

	// Clear erases the whole surface.
	Clear()

	// Show flushes buffered drawing to the display.
	Show()
}

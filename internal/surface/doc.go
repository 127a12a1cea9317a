// Package surface abstracts the terminal display the consumer paints on.
//
// The playback consumer only ever writes whole character rows and a
// single status line, so the Surface interface is deliberately small. The
// tcell-backed Terminal implementation owns raw-mode setup and teardown;
// Fini restores the terminal and is safe to call on every exit path. The
// Null implementation is an in-memory grid for tests, including simulated
// resizes.
//
// Rows that fall outside the current terminal size are clipped, never an
// error: the authored raster size and the live terminal size may diverge
// whenever the operator resizes the window mid-playback.
package surface

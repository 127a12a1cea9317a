// Package container reads and writes the VIDTXT artifact: a pre-rendered
// character-video stream with an optional embedded audio track.
//
// # Layout
//
// The file opens with a 64-byte header:
//
//	offset  size  field
//	0       6     magic "VIDTXT"
//	6       2     reserved (zero)
//	8       4     columns, u32 big-endian
//	12      4     lines, u32 big-endian
//	16      8     frame rate, f64 big-endian
//	24      8     audio byte length, u64 big-endian
//	32      32    zero padding
//
// The audio blob (exactly the declared byte length, possibly zero) follows
// the header, then the frame stream: raw row text with no delimiters, each
// frame occupying exactly (columns-1)×(lines-1) bytes.
//
// The frame count is not stored. It is derived from the file size, and a
// frame region that does not divide evenly by the frame stride is rejected
// as corruption rather than silently truncated.
package container

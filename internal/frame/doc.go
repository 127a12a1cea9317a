// Package frame defines the frame types flowing through the playback
// pipeline and the encoder that turns decoded bitmaps into character rows.
//
// A Raster is one decoded bitmap at the session resolution. It is
// transient: the producer decodes it, encodes it, and discards it. A Text
// is the character-grid rendering of one Raster and is immutable once
// built, so it can cross the producer/consumer boundary without locking.
//
// The encoder drops the first pixel of every row (stride alignment of the
// decoded bitmap) and the last raster row (reserved for the status line),
// so a W×H raster always yields H-1 rows of exactly W-1 characters.
package frame

// Package glyph maps pixel intensity to characters from a density-ordered
// palette.
//
// The palette is a fixed sequence of 70 printable ASCII characters ordered
// by visual density, from space (lightest) to '$' (densest). Mapping is a
// pure function of the pixel's mean channel intensity, so two pixels with
// the same luminance always produce the same character.
package glyph

// Package segdisp converts text into per-cell segment patterns for
// multiplexed segment displays.
//
// See doc.go for an overview.
package segdisp

import "image/color"

// Glyph is one display cell's worth of lit segments for some display
// family. Each family implements it as a plain comparable struct, so the
// family in use is fixed once by the type parameter of the Table carrying
// it rather than dispatched at runtime.
type Glyph[T any] interface {
	// WithDot returns a copy of the glyph with the decimal point lit.
	// The receiver is unchanged; applying it twice is the same as once.
	WithDot() T

	// Dot reports whether the decimal point is lit.
	Dot() bool
}

// Table maps character codes to glyphs of a single display family.
//
// Every table carries a fallback glyph returned for codes it has no entry
// for, so Lookup is total and mapping never halts on unexpected input.
// Tables are built once at startup and never written again; any number of
// concurrent readers need no synchronization.
type Table[T Glyph[T]] struct {
	glyphs   map[rune]T
	fallback T
}

// NewTable builds a character table from a fallback glyph and the per-code
// entries. The fallback is a required argument rather than a magic map key,
// so a table without one cannot be constructed.
func NewTable[T Glyph[T]](fallback T, glyphs map[rune]T) *Table[T] {
	return &Table[T]{glyphs: glyphs, fallback: fallback}
}

// Lookup returns the glyph for code, or the table's fallback when code has
// no entry.
func (t *Table[T]) Lookup(code rune) T {
	if g, ok := t.glyphs[code]; ok {
		return g
	}
	return t.fallback
}

// Fallback returns the glyph substituted for unmapped character codes.
func (t *Table[T]) Fallback() T { return t.fallback }

// Len returns the number of explicit entries, not counting the fallback.
func (t *Table[T]) Len() int { return len(t.glyphs) }

// Cell is one logical display position supplied by a caller: a character
// code, an explicit decimal point state and an optional color.
type Cell struct {
	Code  rune
	Dot   bool
	Color color.RGBA
}

// Colored pairs a glyph with the color it should be lit in.
type Colored[T Glyph[T]] struct {
	Glyph T
	Color color.RGBA
}

// White is the color applied to padding cells produced by width
// normalization.
var White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

func bit(b bool) byte {
	if b {
		return 1
	}
	return 0
}

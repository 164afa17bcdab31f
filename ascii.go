package segdisp

// ASCII is a raw character glyph for intelligent displays that take ASCII
// codes directly instead of per-segment bits.
type ASCII struct {
	DP    bool
	Value byte
	Char  rune
}

// Dot reports whether the decimal point is lit.
func (g ASCII) Dot() bool { return g.DP }

// WithDot returns a copy of the glyph with the decimal point lit.
func (g ASCII) WithDot() ASCII {
	g.DP = true
	return g
}

// Encode returns the raw ASCII value; the decimal point is dropped.
func (g ASCII) Encode() byte { return g.Value }

// EncodeWithDot returns the ASCII value with the decimal point packed into
// bit 7.
func (g ASCII) EncodeWithDot() byte {
	if g.DP {
		return g.Value + 128
	}
	return g.Value
}

// ASCIISegments covers the full 7-bit ASCII range one to one. The fallback
// is a space.
var ASCIISegments = newASCIITable()

func newASCIITable() *Table[ASCII] {
	glyphs := make(map[rune]ASCII, 128)
	for i := 0; i < 128; i++ {
		glyphs[rune(i)] = ASCII{Value: byte(i), Char: rune(i)}
	}
	return NewTable(ASCII{Value: ' ', Char: ' '}, glyphs)
}

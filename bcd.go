package segdisp

// BCD is a four-bit binary-coded-decimal glyph with a dedicated decimal
// point, as consumed by BCD latch/decoder driver chips.
type BCD struct {
	DP             bool
	X3, X2, X1, X0 bool
	Char           rune
}

// Dot reports whether the decimal point is lit.
func (g BCD) Dot() bool { return g.DP }

// WithDot returns a copy of the glyph with the decimal point lit.
func (g BCD) WithDot() BCD {
	g.DP = true
	return g
}

// EncodeDPX3X2X1X0 packs the decimal point into bit 7 and the BCD nibble
// into bits 3..0.
func (g BCD) EncodeDPX3X2X1X0() byte {
	return bit(g.DP)<<7 | bit(g.X3)<<3 | bit(g.X2)<<2 | bit(g.X1)<<1 | bit(g.X0)
}

// EncodeX3X2X1X0 packs the BCD nibble only, dropping the decimal point.
func (g BCD) EncodeX3X2X1X0() byte {
	return bit(g.X3)<<3 | bit(g.X2)<<2 | bit(g.X1)<<1 | bit(g.X0)
}

// BCDSegments maps digits and hex letters onto BCD nibbles. The '!' and
// '?' entries reuse the patterns of the digits 1 and 2 with the dot lit;
// they differ from the digits only by DP and label. Keep it that way.
var BCDSegments = NewTable(
	BCD{Char: '?'},
	map[rune]BCD{
		'!': {DP: true, X0: true, Char: '!'},
		'0': {Char: '0'},
		'1': {X0: true, Char: '1'},
		'2': {X1: true, Char: '2'},
		'3': {X1: true, X0: true, Char: '3'},
		'4': {X2: true, Char: '4'},
		'5': {X2: true, X0: true, Char: '5'},
		'6': {X2: true, X1: true, Char: '6'},
		'7': {X2: true, X1: true, X0: true, Char: '7'},
		'8': {X3: true, Char: '8'},
		'9': {X3: true, X0: true, Char: '9'},
		'?': {DP: true, X1: true, Char: '?'},
		'A': {X3: true, X1: true, Char: 'A'},
		'B': {X3: true, X1: true, X0: true, Char: 'B'},
		'C': {X3: true, X2: true, Char: 'C'},
		'D': {X3: true, X2: true, X0: true, Char: 'D'},
		'E': {X3: true, X2: true, X1: true, Char: 'E'},
		'F': {X3: true, X2: true, X1: true, X0: true, Char: 'F'},
		'a': {X3: true, X1: true, Char: 'a'},
		'b': {X3: true, X1: true, X0: true, Char: 'b'},
		'c': {X3: true, X2: true, Char: 'c'},
		'd': {X3: true, X2: true, X0: true, Char: 'd'},
		'e': {X3: true, X2: true, X1: true, Char: 'e'},
		'f': {X3: true, X2: true, X1: true, X0: true, Char: 'f'},
	})

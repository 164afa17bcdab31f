package segdisp

// Seven is a classic seven-segment glyph. Segment names follow the usual
// a..g layout: a is the top bar, segments continue clockwise, g is the
// middle bar.
type Seven struct {
	DP                  bool
	G, F, E, D, C, B, A bool
	Char                rune
}

// Dot reports whether the decimal point is lit.
func (g Seven) Dot() bool { return g.DP }

// WithDot returns a copy of the glyph with the decimal point lit.
func (g Seven) WithDot() Seven {
	g.DP = true
	return g
}

// EncodeGFEDCBA packs segments g..a into bits 6..0. The decimal point is
// dropped.
func (g Seven) EncodeGFEDCBA() byte {
	return bit(g.G)<<6 | bit(g.F)<<5 | bit(g.E)<<4 | bit(g.D)<<3 |
		bit(g.C)<<2 | bit(g.B)<<1 | bit(g.A)
}

// EncodeDPGFEDCBA packs the decimal point into bit 7 and segments g..a
// into bits 6..0.
func (g Seven) EncodeDPGFEDCBA() byte {
	return bit(g.DP)<<7 | bit(g.G)<<6 | bit(g.F)<<5 | bit(g.E)<<4 |
		bit(g.D)<<3 | bit(g.C)<<2 | bit(g.B)<<1 | bit(g.A)
}

// EncodeDPGFEABCD packs dp, g, f, e into bits 7..4 and a, b, c, d into
// bits 3..0, the order a second driver family expects.
func (g Seven) EncodeDPGFEABCD() byte {
	return bit(g.DP)<<7 | bit(g.G)<<6 | bit(g.F)<<5 | bit(g.E)<<4 |
		bit(g.A)<<3 | bit(g.B)<<2 | bit(g.C)<<1 | bit(g.D)
}

// SevenSegments covers printable ASCII on seven-segment displays.
var SevenSegments = NewTable(
	Seven{Char: '?'},
	map[rune]Seven{
		' ': {Char: ' '},
		'!': {DP: true, C: true, B: true, Char: '!'},
		'"': {F: true, B: true, Char: '"'},
		'#': {G: true, F: true, E: true, D: true, C: true, B: true, Char: '#'},
		'$': {G: true, F: true, D: true, C: true, A: true, Char: '$'},
		'%': {DP: true, G: true, E: true, B: true, Char: '%'},
		'&': {G: true, C: true, B: true, Char: '&'},
		'\'': {F: true, Char: '\''},
		'(': {F: true, D: true, A: true, Char: '('},
		')': {D: true, B: true, A: true, Char: ')'},
		'*': {F: true, A: true, Char: '*'},
		'+': {G: true, F: true, E: true, Char: '+'},
		',': {E: true, Char: ','},
		'-': {G: true, Char: '-'},
		'.': {DP: true, Char: '.'},
		'/': {G: true, E: true, B: true, Char: '/'},
		'0': {F: true, E: true, D: true, C: true, B: true, A: true, Char: '0'},
		'1': {C: true, B: true, Char: '1'},
		'2': {G: true, E: true, D: true, B: true, A: true, Char: '2'},
		'3': {G: true, D: true, C: true, B: true, A: true, Char: '3'},
		'4': {G: true, F: true, C: true, B: true, Char: '4'},
		'5': {G: true, F: true, D: true, C: true, A: true, Char: '5'},
		'6': {G: true, F: true, E: true, D: true, C: true, A: true, Char: '6'},
		'7': {C: true, B: true, A: true, Char: '7'},
		'8': {G: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: '8'},
		'9': {G: true, F: true, D: true, C: true, B: true, A: true, Char: '9'},
		':': {D: true, A: true, Char: ':'},
		';': {D: true, C: true, A: true, Char: ';'},
		'<': {G: true, F: true, A: true, Char: '<'},
		'=': {G: true, D: true, Char: '='},
		'>': {G: true, B: true, A: true, Char: '>'},
		'?': {DP: true, G: true, E: true, B: true, A: true, Char: '?'},
		'@': {G: true, E: true, D: true, C: true, B: true, A: true, Char: '@'},
		'A': {G: true, F: true, E: true, C: true, B: true, A: true, Char: 'A'},
		'B': {G: true, F: true, E: true, D: true, C: true, Char: 'B'},
		'C': {F: true, E: true, D: true, A: true, Char: 'C'},
		'D': {G: true, E: true, D: true, C: true, B: true, Char: 'D'},
		'E': {G: true, F: true, E: true, D: true, A: true, Char: 'E'},
		'F': {G: true, F: true, E: true, A: true, Char: 'F'},
		'G': {F: true, E: true, D: true, C: true, A: true, Char: 'G'},
		'H': {G: true, F: true, E: true, C: true, B: true, Char: 'H'},
		'I': {F: true, E: true, Char: 'I'},
		'J': {E: true, D: true, C: true, B: true, Char: 'J'},
		'K': {G: true, F: true, E: true, C: true, A: true, Char: 'K'},
		'L': {F: true, E: true, D: true, Char: 'L'},
		'M': {E: true, C: true, A: true, Char: 'M'},
		'N': {F: true, E: true, C: true, B: true, A: true, Char: 'N'},
		'O': {F: true, E: true, D: true, C: true, B: true, A: true, Char: 'O'},
		'P': {G: true, F: true, E: true, B: true, A: true, Char: 'P'},
		'Q': {G: true, F: true, D: true, B: true, A: true, Char: 'Q'},
		'R': {F: true, E: true, B: true, A: true, Char: 'R'},
		'S': {G: true, F: true, D: true, C: true, A: true, Char: 'S'},
		'T': {G: true, F: true, E: true, D: true, Char: 'T'},
		'U': {F: true, E: true, D: true, C: true, B: true, Char: 'U'},
		'V': {F: true, E: true, D: true, C: true, B: true, Char: 'V'},
		'W': {F: true, D: true, B: true, Char: 'W'},
		'X': {G: true, F: true, E: true, C: true, B: true, Char: 'X'},
		'Y': {G: true, F: true, D: true, C: true, B: true, Char: 'Y'},
		'Z': {G: true, E: true, D: true, B: true, A: true, Char: 'Z'},
		'[': {F: true, E: true, D: true, A: true, Char: '['},
		'\\': {G: true, F: true, C: true, Char: '"'},
		']': {D: true, C: true, B: true, A: true, Char: ']'},
		'^': {F: true, B: true, A: true, Char: '^'},
		'_': {D: true, Char: '_'},
		'`': {B: true, Char: '`'},
		'a': {G: true, E: true, D: true, C: true, B: true, A: true, Char: 'a'},
		'b': {G: true, F: true, E: true, D: true, C: true, Char: 'b'},
		'c': {G: true, E: true, D: true, Char: 'c'},
		'd': {G: true, E: true, D: true, C: true, B: true, Char: 'd'},
		'e': {G: true, F: true, E: true, D: true, B: true, A: true, Char: 'e'},
		'f': {G: true, F: true, E: true, A: true, Char: 'f'},
		'g': {G: true, F: true, D: true, C: true, B: true, A: true, Char: 'g'},
		'h': {G: true, F: true, E: true, C: true, Char: 'h'},
		'i': {E: true, Char: 'i'},
		'j': {D: true, C: true, Char: 'j'},
		'k': {G: true, F: true, E: true, C: true, A: true, Char: 'k'},
		'l': {F: true, E: true, Char: 'l'},
		'm': {E: true, C: true, Char: 'm'},
		'n': {G: true, E: true, C: true, Char: 'n'},
		'o': {G: true, E: true, D: true, C: true, Char: 'o'},
		'p': {G: true, F: true, E: true, B: true, A: true, Char: 'p'},
		'q': {G: true, F: true, C: true, B: true, A: true, Char: 'q'},
		'r': {G: true, E: true, Char: 'r'},
		's': {G: true, F: true, D: true, C: true, A: true, Char: 's'},
		't': {G: true, F: true, E: true, D: true, Char: 't'},
		'u': {E: true, D: true, C: true, Char: 'u'},
		'v': {E: true, D: true, C: true, Char: 'v'},
		'w': {E: true, C: true, Char: 'w'},
		'x': {G: true, F: true, E: true, C: true, B: true, Char: 'x'},
		'y': {G: true, F: true, D: true, C: true, B: true, Char: 'y'},
		'z': {G: true, E: true, D: true, B: true, A: true, Char: 'z'},
		'{': {G: true, C: true, B: true, Char: '{'},
		'|': {F: true, E: true, Char: '|'},
		'}': {G: true, F: true, E: true, Char: '}'},
		'~': {A: true, Char: '~'},
	})

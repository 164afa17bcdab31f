package segdisp

// Eight is a seven-segment glyph extended with an inner vertical bar h
// through the middle of the cell.
type Eight struct {
	DP                     bool
	H, G, F, E, D, C, B, A bool
	Char                   rune
}

// Dot reports whether the decimal point is lit.
func (g Eight) Dot() bool { return g.DP }

// WithDot returns a copy of the glyph with the decimal point lit.
func (g Eight) WithDot() Eight {
	g.DP = true
	return g
}

// EncodeHGFEDCBA packs segments h..a into bits 7..0. This ordering has no
// room for the decimal point.
func (g Eight) EncodeHGFEDCBA() byte {
	return bit(g.H)<<7 | bit(g.G)<<6 | bit(g.F)<<5 | bit(g.E)<<4 |
		bit(g.D)<<3 | bit(g.C)<<2 | bit(g.B)<<1 | bit(g.A)
}

// EightSegments covers printable ASCII on eight-segment displays.
var EightSegments = NewTable(
	Eight{Char: '?'},
	map[rune]Eight{
		' ': {Char: ' '},
		'!': {DP: true, C: true, B: true, Char: '!'},
		'"': {F: true, B: true, Char: '"'},
		'#': {G: true, F: true, E: true, D: true, C: true, B: true, Char: '#'},
		'$': {H: true, G: true, F: true, D: true, C: true, A: true, Char: '$'},
		'%': {DP: true, G: true, E: true, B: true, Char: '%'},
		'&': {G: true, C: true, B: true, Char: '&'},
		'\'': {F: true, Char: '\''},
		'(': {F: true, D: true, A: true, Char: '('},
		')': {D: true, B: true, A: true, Char: ')'},
		'*': {F: true, A: true, Char: '*'},
		'+': {H: true, G: true, Char: '+'},
		',': {E: true, Char: ','},
		'-': {G: true, Char: '-'},
		'.': {DP: true, Char: '.'},
		'/': {G: true, E: true, B: true, Char: '/'},
		'0': {F: true, E: true, D: true, C: true, B: true, A: true, Char: '0'},
		'1': {H: true, Char: '1'},
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
		'B': {H: true, G: true, D: true, C: true, Char: 'B'},
		'C': {F: true, E: true, D: true, A: true, Char: 'C'},
		'D': {H: true, D: true, C: true, B: true, A: true, Char: 'D'},
		'E': {G: true, F: true, E: true, D: true, A: true, Char: 'E'},
		'F': {G: true, F: true, E: true, A: true, Char: 'F'},
		'G': {F: true, E: true, D: true, C: true, A: true, Char: 'G'},
		'H': {G: true, F: true, E: true, C: true, B: true, Char: 'H'},
		'I': {H: true, D: true, A: true, Char: 'I'},
		'J': {E: true, D: true, C: true, B: true, Char: 'J'},
		'K': {H: true, G: true, F: true, E: true, Char: 'K'},
		'L': {F: true, E: true, D: true, Char: 'L'},
		'M': {H: true, F: true, E: true, C: true, B: true, A: true, Char: 'M'},
		'N': {F: true, E: true, C: true, B: true, A: true, Char: 'N'},
		'O': {F: true, E: true, D: true, C: true, B: true, A: true, Char: 'O'},
		'P': {G: true, F: true, E: true, B: true, A: true, Char: 'P'},
		'Q': {G: true, F: true, D: true, B: true, A: true, Char: 'Q'},
		'R': {F: true, E: true, B: true, A: true, Char: 'R'},
		'S': {G: true, F: true, D: true, C: true, A: true, Char: 'S'},
		'T': {H: true, A: true, Char: 'T'},
		'U': {F: true, E: true, D: true, C: true, B: true, Char: 'U'},
		'V': {F: true, E: true, D: true, C: true, B: true, Char: 'V'},
		'W': {H: true, F: true, E: true, D: true, C: true, B: true, Char: 'W'},
		'X': {H: true, G: true, F: true, C: true, Char: 'X'},
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
		'x': {H: true, G: true, F: true, C: true, Char: 'x'},
		'y': {G: true, F: true, D: true, C: true, B: true, Char: 'y'},
		'z': {G: true, E: true, D: true, B: true, A: true, Char: 'z'},
		'{': {G: true, C: true, B: true, Char: '{'},
		'|': {H: true, Char: '|'},
		'}': {G: true, F: true, E: true, Char: '}'},
		'~': {A: true, Char: '~'},
	})

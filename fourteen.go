package segdisp

// Fourteen is an alphanumeric fourteen-segment glyph. The outer ring is
// a..f as on seven-segment cells, the middle bar splits into g1/g2 and
// the inner segments h, j, k, l, m, n form the diagonals and the vertical
// bar.
type Fourteen struct {
	DP               bool
	L, M, N, K, J, H bool
	G2, G1           bool
	F, E, D, C, B, A bool
	Char             rune
}

// Dot reports whether the decimal point is lit.
func (g Fourteen) Dot() bool { return g.DP }

// WithDot returns a copy of the glyph with the decimal point lit.
func (g Fourteen) WithDot() Fourteen {
	g.DP = true
	return g
}

// EncodePinMAME packs the glyph in PinMAME order: byte 0 is g1, f, e, d,
// c, b, a and byte 1 is dp, l, m, n, g2, k, j, h.
func (g Fourteen) EncodePinMAME() [2]byte {
	return [2]byte{
		bit(g.G1)<<6 | bit(g.F)<<5 | bit(g.E)<<4 | bit(g.D)<<3 |
			bit(g.C)<<2 | bit(g.B)<<1 | bit(g.A),
		bit(g.DP)<<7 | bit(g.L)<<6 | bit(g.M)<<5 | bit(g.N)<<4 |
			bit(g.G2)<<3 | bit(g.K)<<2 | bit(g.J)<<1 | bit(g.H),
	}
}

// EncodeAPC packs the glyph for APC hardware: byte 0 is dp, g1, f, e, a,
// b, c, d and byte 1 is l, dp, n, m, k, g2, h, j. The decimal point goes
// into both bytes; that is what the hardware wants.
func (g Fourteen) EncodeAPC() [2]byte {
	return [2]byte{
		bit(g.DP)<<7 | bit(g.G1)<<6 | bit(g.F)<<5 | bit(g.E)<<4 |
			bit(g.A)<<3 | bit(g.B)<<2 | bit(g.C)<<1 | bit(g.D),
		bit(g.L)<<7 | bit(g.DP)<<6 | bit(g.N)<<5 | bit(g.M)<<4 |
			bit(g.K)<<3 | bit(g.G2)<<2 | bit(g.H)<<1 | bit(g.J),
	}
}

// EncodeVPE packs the glyph for Visual Pinball Engine, LSB first: byte 0
// is a, b, c, d, e, f, g1, h from bit 0 up, byte 1 is j, k, g2, n, m, l,
// dp from bit 0 up.
func (g Fourteen) EncodeVPE() [2]byte {
	return [2]byte{
		bit(g.A) | bit(g.B)<<1 | bit(g.C)<<2 | bit(g.D)<<3 |
			bit(g.E)<<4 | bit(g.F)<<5 | bit(g.G1)<<6 | bit(g.H)<<7,
		bit(g.J) | bit(g.K)<<1 | bit(g.G2)<<2 | bit(g.N)<<3 |
			bit(g.M)<<4 | bit(g.L)<<5 | bit(g.DP)<<6,
	}
}

// FourteenSegments covers printable ASCII on fourteen-segment displays.
var FourteenSegments = NewTable(
	Fourteen{Char: '?'},
	map[rune]Fourteen{
		' ': {Char: ' '},
		'!': {DP: true, C: true, B: true, Char: '!'},
		'"': {J: true, B: true, Char: '"'},
		'#': {M: true, J: true, G2: true, G1: true, D: true, C: true, B: true, Char: '#'},
		'$': {M: true, J: true, G2: true, G1: true, F: true, D: true, C: true, A: true, Char: '$'},
		'%': {L: true, N: true, K: true, H: true, G2: true, G1: true, F: true, C: true, Char: '%'},
		'&': {L: true, J: true, H: true, G1: true, E: true, D: true, A: true, Char: '&'},
		'\'': {J: true, Char: '\''},
		'(': {L: true, K: true, Char: '('},
		')': {N: true, H: true, Char: ')'},
		'*': {L: true, M: true, N: true, K: true, J: true, H: true, G2: true, G1: true, Char: '*'},
		'+': {M: true, J: true, G2: true, G1: true, Char: '+'},
		',': {N: true, Char: ','},
		'-': {G2: true, G1: true, Char: '-'},
		'.': {DP: true, Char: '.'},
		'/': {N: true, K: true, Char: '/'},
		'0': {N: true, K: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: '0'},
		'1': {K: true, C: true, B: true, Char: '1'},
		'2': {G2: true, G1: true, E: true, D: true, B: true, A: true, Char: '2'},
		'3': {G2: true, D: true, C: true, B: true, A: true, Char: '3'},
		'4': {G2: true, G1: true, F: true, C: true, B: true, Char: '4'},
		'5': {L: true, G1: true, F: true, D: true, A: true, Char: '5'},
		'6': {G2: true, G1: true, F: true, E: true, D: true, C: true, A: true, Char: '6'},
		'7': {C: true, B: true, A: true, Char: '7'},
		'8': {G2: true, G1: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: '8'},
		'9': {G2: true, G1: true, F: true, D: true, C: true, B: true, A: true, Char: '9'},
		':': {M: true, J: true, Char: ':'},
		';': {N: true, J: true, Char: ';'},
		'<': {L: true, K: true, G1: true, Char: '<'},
		'=': {G2: true, G1: true, D: true, Char: '='},
		'>': {N: true, H: true, G2: true, Char: '>'},
		'?': {DP: true, M: true, G2: true, B: true, A: true, Char: '?'},
		'@': {M: true, G1: true, E: true, D: true, C: true, B: true, A: true, Char: '@'},
		'A': {G2: true, G1: true, F: true, E: true, C: true, B: true, A: true, Char: 'A'},
		'B': {M: true, J: true, G2: true, D: true, C: true, B: true, A: true, Char: 'B'},
		'C': {F: true, E: true, D: true, A: true, Char: 'C'},
		'D': {M: true, J: true, D: true, C: true, B: true, A: true, Char: 'D'},
		'E': {G1: true, F: true, E: true, D: true, A: true, Char: 'E'},
		'F': {G1: true, F: true, E: true, A: true, Char: 'F'},
		'G': {G2: true, F: true, E: true, D: true, C: true, A: true, Char: 'G'},
		'H': {G2: true, G1: true, F: true, E: true, C: true, B: true, Char: 'H'},
		'I': {M: true, J: true, D: true, A: true, Char: 'I'},
		'J': {E: true, D: true, C: true, B: true, Char: 'J'},
		'K': {L: true, K: true, G1: true, F: true, E: true, Char: 'K'},
		'L': {F: true, E: true, D: true, Char: 'L'},
		'M': {K: true, H: true, F: true, E: true, C: true, B: true, Char: 'M'},
		'N': {L: true, H: true, F: true, E: true, C: true, B: true, Char: 'N'},
		'O': {F: true, E: true, D: true, C: true, B: true, A: true, Char: 'O'},
		'P': {G2: true, G1: true, F: true, E: true, B: true, A: true, Char: 'P'},
		'Q': {L: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: 'Q'},
		'R': {L: true, G2: true, G1: true, F: true, E: true, B: true, A: true, Char: 'R'},
		'S': {G2: true, G1: true, F: true, D: true, C: true, A: true, Char: 'S'},
		'T': {M: true, J: true, A: true, Char: 'T'},
		'U': {F: true, E: true, D: true, C: true, B: true, Char: 'U'},
		'V': {N: true, K: true, F: true, E: true, Char: 'V'},
		'W': {L: true, N: true, F: true, E: true, C: true, B: true, Char: 'W'},
		'X': {L: true, N: true, K: true, H: true, Char: 'X'},
		'Y': {G2: true, G1: true, F: true, D: true, C: true, B: true, Char: 'Y'},
		'Z': {N: true, K: true, D: true, A: true, Char: 'Z'},
		'[': {F: true, E: true, D: true, A: true, Char: '['},
		'\\': {L: true, H: true, Char: '"'},
		']': {D: true, C: true, B: true, A: true, Char: ']'},
		'^': {L: true, N: true, Char: '^'},
		'_': {D: true, Char: '_'},
		'`': {H: true, Char: '`'},
		'a': {M: true, G1: true, E: true, D: true, Char: 'a'},
		'b': {L: true, G1: true, F: true, E: true, D: true, Char: 'b'},
		'c': {G2: true, G1: true, E: true, D: true, Char: 'c'},
		'd': {N: true, G2: true, D: true, C: true, B: true, Char: 'd'},
		'e': {N: true, G1: true, E: true, D: true, Char: 'e'},
		'f': {M: true, K: true, G2: true, G1: true, Char: 'f'},
		'g': {H: true, G2: true, D: true, C: true, B: true, A: true, Char: 'g'},
		'h': {G2: true, G1: true, F: true, E: true, C: true, Char: 'h'},
		'i': {M: true, Char: 'i'},
		'j': {N: true, J: true, E: true, Char: 'j'},
		'k': {L: true, M: true, K: true, J: true, Char: 'k'},
		'l': {M: true, J: true, Char: 'l'},
		'm': {M: true, G2: true, G1: true, E: true, C: true, Char: 'm'},
		'n': {G2: true, G1: true, E: true, C: true, Char: 'n'},
		'o': {G2: true, G1: true, E: true, D: true, C: true, Char: 'o'},
		'p': {K: true, G1: true, F: true, E: true, A: true, Char: 'p'},
		'q': {H: true, G2: true, C: true, B: true, A: true, Char: 'q'},
		'r': {G2: true, G1: true, E: true, Char: 'r'},
		's': {L: true, G2: true, D: true, Char: 's'},
		't': {G1: true, F: true, E: true, D: true, Char: 't'},
		'u': {E: true, D: true, C: true, Char: 'u'},
		'v': {N: true, E: true, Char: 'v'},
		'w': {M: true, E: true, D: true, C: true, Char: 'w'},
		'x': {L: true, N: true, K: true, H: true, Char: 'x'},
		'y': {J: true, G2: true, D: true, C: true, B: true, Char: 'y'},
		'z': {N: true, G1: true, D: true, Char: 'z'},
		'{': {N: true, H: true, G1: true, D: true, A: true, Char: '{'},
		'|': {M: true, J: true, Char: '|'},
		'}': {L: true, K: true, G2: true, D: true, A: true, Char: '}'},
		'~': {N: true, K: true, G2: true, G1: true, Char: '~'},
	})

package segdisp

// Sixteen is an alphanumeric sixteen-segment glyph: the fourteen-segment
// layout with the top and bottom bars each split in two.
//
// No driver chip byte ordering is defined for this family yet, so there
// is no encoder; the table exists for callers that do their own packing.
type Sixteen struct {
	DP                     bool
	U, T, S, R, P, N, M, K bool
	H, G, F, E, D, C, B, A bool
	Char                   rune
}

// Dot reports whether the decimal point is lit.
func (g Sixteen) Dot() bool { return g.DP }

// WithDot returns a copy of the glyph with the decimal point lit.
func (g Sixteen) WithDot() Sixteen {
	g.DP = true
	return g
}

// SixteenSegments covers printable ASCII plus most of Latin-1 on
// sixteen-segment displays.
var SixteenSegments = NewTable(
	Sixteen{Char: '?'},
	map[rune]Sixteen{
		' ': {Char: ' '},
		'!': {DP: true, D: true, C: true, Char: '!'},
		'"': {M: true, C: true, Char: '"'},
		'#': {U: true, S: true, P: true, M: true, F: true, E: true, D: true, C: true, Char: '#'},
		'$': {U: true, S: true, P: true, M: true, H: true, F: true, E: true, D: true, B: true, A: true, Char: '$'},
		'%': {U: true, T: true, S: true, P: true, N: true, M: true, H: true, E: true, D: true, A: true, Char: '%'},
		'&': {U: true, R: true, M: true, K: true, G: true, F: true, E: true, D: true, A: true, Char: '&'},
		'\'': {M: true, Char: '\''},
		'(': {R: true, N: true, Char: '('},
		')': {T: true, K: true, Char: ')'},
		'*': {U: true, T: true, S: true, R: true, P: true, N: true, M: true, K: true, Char: '*'},
		'+': {U: true, S: true, P: true, M: true, Char: '+'},
		',': {T: true, Char: ','},
		'-': {U: true, P: true, Char: '-'},
		'.': {DP: true, Char: '.'},
		'/': {T: true, N: true, Char: '/'},
		'0': {T: true, N: true, H: true, G: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: '0'},
		'1': {N: true, D: true, C: true, Char: '1'},
		'2': {U: true, P: true, G: true, F: true, E: true, C: true, B: true, A: true, Char: '2'},
		'3': {P: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: '3'},
		'4': {U: true, P: true, H: true, D: true, C: true, Char: '4'},
		'5': {U: true, R: true, H: true, F: true, E: true, B: true, A: true, Char: '5'},
		'6': {U: true, P: true, H: true, G: true, F: true, E: true, D: true, B: true, A: true, Char: '6'},
		'7': {D: true, C: true, B: true, A: true, Char: '7'},
		'8': {U: true, P: true, H: true, G: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: '8'},
		'9': {U: true, P: true, H: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: '9'},
		':': {U: true, F: true, Char: ':'},
		';': {T: true, M: true, Char: ';'},
		'<': {U: true, R: true, N: true, Char: '<'},
		'=': {U: true, P: true, F: true, E: true, Char: '='},
		'>': {T: true, P: true, K: true, Char: '>'},
		'?': {DP: true, S: true, P: true, C: true, B: true, A: true, Char: '?'},
		'@': {U: true, S: true, G: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: '@'},
		'A': {U: true, P: true, H: true, G: true, D: true, C: true, B: true, A: true, Char: 'A'},
		'B': {S: true, P: true, M: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: 'B'},
		'C': {H: true, G: true, F: true, E: true, B: true, A: true, Char: 'C'},
		'D': {S: true, M: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: 'D'},
		'E': {U: true, H: true, G: true, F: true, E: true, B: true, A: true, Char: 'E'},
		'F': {U: true, H: true, G: true, B: true, A: true, Char: 'F'},
		'G': {P: true, H: true, G: true, F: true, E: true, D: true, B: true, A: true, Char: 'G'},
		'H': {U: true, P: true, H: true, G: true, D: true, C: true, Char: 'H'},
		'I': {S: true, M: true, F: true, E: true, B: true, A: true, Char: 'I'},
		'J': {G: true, F: true, E: true, D: true, C: true, Char: 'J'},
		'K': {U: true, R: true, N: true, H: true, G: true, Char: 'K'},
		'L': {H: true, G: true, F: true, E: true, Char: 'L'},
		'M': {N: true, K: true, H: true, G: true, D: true, C: true, Char: 'M'},
		'N': {R: true, K: true, H: true, G: true, D: true, C: true, Char: 'N'},
		'O': {H: true, G: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: 'O'},
		'P': {U: true, P: true, H: true, G: true, C: true, B: true, A: true, Char: 'P'},
		'Q': {R: true, H: true, G: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: 'Q'},
		'R': {U: true, R: true, P: true, H: true, G: true, C: true, B: true, A: true, Char: 'R'},
		'S': {U: true, P: true, H: true, F: true, E: true, D: true, B: true, A: true, Char: 'S'},
		'T': {S: true, M: true, B: true, A: true, Char: 'T'},
		'U': {H: true, G: true, F: true, E: true, D: true, C: true, Char: 'U'},
		'V': {T: true, N: true, H: true, G: true, Char: 'V'},
		'W': {T: true, R: true, H: true, G: true, D: true, C: true, Char: 'W'},
		'X': {T: true, R: true, N: true, K: true, Char: 'X'},
		'Y': {U: true, P: true, H: true, F: true, E: true, D: true, C: true, Char: 'Y'},
		'Z': {U: true, T: true, P: true, N: true, F: true, E: true, B: true, A: true, Char: 'Z'},
		'[': {S: true, M: true, E: true, B: true, Char: '['},
		'\\': {R: true, K: true, Char: '"'},
		']': {S: true, M: true, F: true, A: true, Char: ']'},
		'^': {T: true, R: true, Char: '^'},
		'_': {F: true, E: true, Char: '_'},
		'`': {K: true, Char: '`'},
		'a': {U: true, S: true, G: true, F: true, E: true, Char: 'a'},
		'b': {U: true, P: true, H: true, G: true, F: true, E: true, D: true, Char: 'b'},
		'c': {U: true, P: true, G: true, F: true, E: true, Char: 'c'},
		'd': {U: true, P: true, G: true, F: true, E: true, D: true, C: true, Char: 'd'},
		'e': {U: true, T: true, G: true, F: true, Char: 'e'},
		'f': {U: true, S: true, P: true, M: true, B: true, Char: 'f'},
		'g': {U: true, S: true, M: true, H: true, F: true, A: true, Char: 'g'},
		'h': {U: true, P: true, H: true, G: true, D: true, Char: 'h'},
		'i': {S: true, B: true, Char: 'i'},
		'j': {S: true, M: true, G: true, F: true, Char: 'j'},
		'k': {S: true, R: true, N: true, M: true, Char: 'k'},
		'l': {S: true, M: true, E: true, Char: 'l'},
		'm': {U: true, S: true, P: true, G: true, D: true, Char: 'm'},
		'n': {U: true, P: true, G: true, D: true, Char: 'n'},
		'o': {U: true, P: true, G: true, F: true, E: true, D: true, Char: 'o'},
		'p': {S: true, P: true, M: true, C: true, B: true, Char: 'p'},
		'q': {U: true, S: true, M: true, H: true, E: true, A: true, Char: 'q'},
		'r': {U: true, P: true, G: true, Char: 'r'},
		's': {U: true, S: true, H: true, F: true, A: true, Char: 's'},
		't': {U: true, S: true, P: true, M: true, E: true, Char: 't'},
		'u': {G: true, F: true, E: true, D: true, Char: 'u'},
		'v': {T: true, G: true, Char: 'v'},
		'w': {S: true, G: true, F: true, E: true, D: true, Char: 'w'},
		'x': {T: true, R: true, N: true, K: true, Char: 'x'},
		'y': {U: true, S: true, M: true, H: true, F: true, Char: 'y'},
		'z': {U: true, T: true, F: true, Char: 'z'},
		'{': {U: true, S: true, M: true, E: true, B: true, Char: '{'},
		'|': {S: true, M: true, Char: '|'},
		'}': {S: true, P: true, M: true, F: true, A: true, Char: '}'},
		'~': {U: true, T: true, P: true, N: true, Char: '~'},
		'¡': {H: true, G: true, B: true, Char: '¡'},
		'¢': {U: true, P: true, M: true, H: true, B: true, A: true, Char: '¢'},
		'£': {U: true, T: true, P: true, M: true, F: true, E: true, B: true, Char: '£'},
		'¤': {U: true, P: true, H: true, C: true, B: true, A: true, Char: '¤'},
		'¥': {U: true, S: true, P: true, N: true, K: true, Char: '¥'},
		'¦': {S: true, M: true, Char: '¦'},
		'§': {U: true, R: true, P: true, K: true, E: true, A: true, Char: '§'},
		'¨': {N: true, K: true, Char: '¨'},
		'©': {U: true, H: true, F: true, E: true, D: true, C: true, A: true, Char: '©'},
		'ª': {U: true, P: true, M: true, H: true, A: true, Char: 'ª'},
		'«': {R: true, N: true, H: true, G: true, Char: '«'},
		'¬': {U: true, P: true, D: true, Char: '¬'},
		'®': {S: true, R: true, P: true, M: true, C: true, B: true, Char: '®'},
		'¯': {B: true, A: true, Char: '¯'},
		'°': {U: true, M: true, H: true, A: true, Char: '°'},
		'±': {U: true, S: true, P: true, M: true, F: true, E: true, Char: '±'},
		'²': {P: true, N: true, B: true, Char: '²'},
		'³': {P: true, E: true, D: true, C: true, B: true, Char: '³'},
		'´': {N: true, Char: '´'},
		'µ': {U: true, P: true, M: true, H: true, G: true, Char: 'µ'},
		'¶': {U: true, S: true, M: true, H: true, D: true, C: true, B: true, A: true, Char: '¶'},
		'·': {U: true, Char: '·'},
		'¸': {R: true, E: true, Char: '¸'},
		'¹': {C: true, Char: '¹'},
		'º': {P: true, M: true, C: true, B: true, Char: 'º'},
		'»': {T: true, K: true, D: true, C: true, Char: '»'},
		'¿': {U: true, M: true, G: true, F: true, E: true, Char: '¿'},
		'À': {U: true, P: true, H: true, G: true, D: true, C: true, B: true, A: true, Char: 'À'},
		'Á': {U: true, P: true, H: true, G: true, D: true, C: true, B: true, A: true, Char: 'Á'},
		'Â': {U: true, P: true, H: true, G: true, D: true, C: true, B: true, A: true, Char: 'Â'},
		'Ã': {U: true, P: true, H: true, G: true, D: true, C: true, B: true, A: true, Char: 'Ã'},
		'Ä': {U: true, P: true, H: true, G: true, D: true, C: true, B: true, A: true, Char: 'Ä'},
		'Å': {U: true, P: true, H: true, G: true, D: true, C: true, B: true, A: true, Char: 'Å'},
		'Æ': {U: true, S: true, P: true, M: true, H: true, G: true, E: true, B: true, A: true, Char: 'Æ'},
		'Ç': {S: true, H: true, G: true, F: true, E: true, B: true, A: true, Char: 'Ç'},
		'È': {U: true, H: true, G: true, F: true, E: true, B: true, A: true, Char: 'È'},
		'É': {U: true, H: true, G: true, F: true, E: true, B: true, A: true, Char: 'É'},
		'Ê': {U: true, H: true, G: true, F: true, E: true, B: true, A: true, Char: 'Ê'},
		'Ë': {U: true, H: true, G: true, F: true, E: true, B: true, A: true, Char: 'Ë'},
		'Ì': {S: true, M: true, F: true, E: true, B: true, A: true, Char: 'Ì'},
		'Í': {S: true, M: true, F: true, E: true, B: true, A: true, Char: 'Í'},
		'Î': {S: true, M: true, F: true, E: true, B: true, A: true, Char: 'Î'},
		'Ï': {S: true, M: true, F: true, E: true, B: true, A: true, Char: 'Ï'},
		'Ð': {U: true, S: true, M: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: 'Ð'},
		'Ñ': {R: true, K: true, H: true, G: true, D: true, C: true, Char: 'Ñ'},
		'Ò': {H: true, G: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: 'Ò'},
		'Ó': {H: true, G: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: 'Ó'},
		'Ô': {H: true, G: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: 'Ô'},
		'Õ': {H: true, G: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: 'Õ'},
		'Ö': {H: true, G: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: 'Ö'},
		'×': {T: true, R: true, N: true, K: true, Char: '×'},
		'Ø': {S: true, M: true, H: true, G: true, F: true, E: true, D: true, C: true, B: true, A: true, Char: 'Ø'},
		'Ù': {H: true, G: true, F: true, E: true, D: true, C: true, Char: 'Ù'},
		'Ú': {H: true, G: true, F: true, E: true, D: true, C: true, Char: 'Ú'},
		'Û': {H: true, G: true, F: true, E: true, D: true, C: true, Char: 'Û'},
		'Ü': {H: true, G: true, F: true, E: true, D: true, C: true, Char: 'Ü'},
		'Ý': {U: true, P: true, H: true, F: true, E: true, D: true, C: true, Char: 'Ý'},
		'Þ': {U: true, S: true, P: true, M: true, C: true, B: true, A: true, Char: 'Þ'},
		'ß': {U: true, R: true, M: true, H: true, G: true, E: true, A: true, Char: 'ß'},
		'à': {U: true, S: true, K: true, G: true, F: true, E: true, Char: 'à'},
		'á': {U: true, S: true, N: true, G: true, F: true, E: true, Char: 'á'},
		'â': {U: true, S: true, N: true, G: true, F: true, E: true, C: true, Char: 'â'},
		'ã': {U: true, S: true, G: true, F: true, E: true, B: true, A: true, Char: 'ã'},
		'ä': {U: true, S: true, N: true, K: true, G: true, F: true, E: true, Char: 'ä'},
		'å': {U: true, S: true, P: true, M: true, G: true, F: true, E: true, C: true, B: true, Char: 'å'},
		'æ': {U: true, S: true, P: true, M: true, G: true, F: true, E: true, B: true, Char: 'æ'},
		'ç': {U: true, R: true, P: true, H: true, E: true, B: true, A: true, Char: 'ç'},
		'è': {U: true, T: true, K: true, G: true, F: true, Char: 'è'},
		'é': {U: true, T: true, N: true, G: true, F: true, Char: 'é'},
		'ê': {U: true, T: true, N: true, G: true, F: true, C: true, Char: 'ê'},
		'ë': {U: true, T: true, N: true, K: true, G: true, F: true, Char: 'ë'},
		'ì': {S: true, K: true, Char: 'ì'},
		'í': {S: true, N: true, Char: 'í'},
		'î': {S: true, N: true, C: true, Char: 'î'},
		'ï': {S: true, N: true, K: true, Char: 'ï'},
		'ð': {U: true, S: true, N: true, M: true, G: true, F: true, Char: 'ð'},
		'ñ': {U: true, P: true, G: true, D: true, B: true, A: true, Char: 'ñ'},
		'ò': {U: true, P: true, K: true, G: true, F: true, E: true, D: true, Char: 'ò'},
		'ó': {U: true, P: true, N: true, G: true, F: true, E: true, D: true, Char: 'ó'},
		'ô': {U: true, P: true, N: true, G: true, F: true, E: true, D: true, C: true, Char: 'ô'},
		'õ': {U: true, P: true, G: true, F: true, E: true, D: true, B: true, A: true, Char: 'õ'},
		'ö': {U: true, P: true, N: true, K: true, G: true, F: true, E: true, D: true, Char: 'ö'},
		'÷': {U: true, P: true, E: true, A: true, Char: '÷'},
		'ø': {U: true, S: true, P: true, G: true, F: true, E: true, D: true, Char: 'ø'},
		'ù': {K: true, G: true, F: true, E: true, D: true, Char: 'ù'},
		'ú': {N: true, G: true, F: true, E: true, D: true, Char: 'ú'},
		'û': {N: true, G: true, F: true, E: true, D: true, C: true, Char: 'û'},
		'ü': {N: true, K: true, G: true, F: true, E: true, D: true, Char: 'ü'},
		'ý': {U: true, S: true, M: true, H: true, F: true, Char: 'ý'},
		'þ': {U: true, S: true, P: true, M: true, F: true, E: true, D: true, Char: 'þ'},
		'ÿ': {U: true, S: true, M: true, H: true, F: true, Char: 'ÿ'},
	})

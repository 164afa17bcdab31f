package segdisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFallback[T Glyph[T]](t *testing.T, tab *Table[T]) {
	t.Helper()
	// U+20AC is absent from every family table.
	assert.Equal(t, tab.Fallback(), tab.Lookup('€'))
	assert.Equal(t, tab.Lookup('€'), tab.Lookup('€'))
}

func TestLookupFallsBackOnUnmappedCode(t *testing.T) {
	t.Run("bcd", func(t *testing.T) { testFallback(t, BCDSegments) })
	t.Run("seven", func(t *testing.T) { testFallback(t, SevenSegments) })
	t.Run("eight", func(t *testing.T) { testFallback(t, EightSegments) })
	t.Run("fourteen", func(t *testing.T) { testFallback(t, FourteenSegments) })
	t.Run("sixteen", func(t *testing.T) { testFallback(t, SixteenSegments) })
	t.Run("ascii", func(t *testing.T) { testFallback(t, ASCIISegments) })
}

func TestLookupIsRepeatable(t *testing.T) {
	for _, code := range []rune{'0', 'A', 'z', ' ', '~'} {
		assert.Equal(t, SevenSegments.Lookup(code), SevenSegments.Lookup(code))
		assert.Equal(t, FourteenSegments.Lookup(code), FourteenSegments.Lookup(code))
	}
}

func TestTableSizes(t *testing.T) {
	assert.Equal(t, 24, BCDSegments.Len())
	assert.Equal(t, 95, SevenSegments.Len())
	assert.Equal(t, 95, EightSegments.Len())
	assert.Equal(t, 95, FourteenSegments.Len())
	assert.Equal(t, 186, SixteenSegments.Len())
	assert.Equal(t, 128, ASCIISegments.Len())
}

func TestWithDotIsIdempotentAndNonMutating(t *testing.T) {
	one := SevenSegments.Lookup('1')
	require.False(t, one.Dot())

	dotted := one.WithDot()
	assert.True(t, dotted.Dot())
	assert.Equal(t, dotted, dotted.WithDot())

	// the receiver is untouched
	assert.False(t, one.Dot())
	assert.Equal(t, SevenSegments.Lookup('1'), one)
}

func TestSpaceGlyphIsBlank(t *testing.T) {
	sp := SevenSegments.Lookup(' ')
	assert.Equal(t, Seven{Char: ' '}, sp)
	assert.Equal(t, byte(0), sp.EncodeDPGFEDCBA())
}

// On BCD displays '!' and '?' are shown as the digits 1 and 2 with the
// decimal point lit. The aliasing is deliberate; the entries differ from
// the digits only by DP and label.
func TestBCDPunctuationAliasesDigits(t *testing.T) {
	bang := BCDSegments.Lookup('!')
	one := BCDSegments.Lookup('1').WithDot()
	one.Char = '!'
	assert.Equal(t, one, bang)

	quest := BCDSegments.Lookup('?')
	two := BCDSegments.Lookup('2').WithDot()
	two.Char = '?'
	assert.Equal(t, two, quest)
}

func TestEqualityIncludesLabel(t *testing.T) {
	// 'U' and 'V' light the same seven segments but stay distinct values.
	u := SevenSegments.Lookup('U')
	v := SevenSegments.Lookup('V')
	assert.Equal(t, u.EncodeDPGFEDCBA(), v.EncodeDPGFEDCBA())
	assert.NotEqual(t, u, v)
}

func TestASCIITableIsIdentity(t *testing.T) {
	for i := 0; i < 128; i++ {
		g := ASCIISegments.Lookup(rune(i))
		require.Equal(t, byte(i), g.Value, "code %d", i)
		require.Equal(t, rune(i), g.Char, "code %d", i)
		require.False(t, g.DP, "code %d", i)
	}
	assert.Equal(t, ASCII{Value: ' ', Char: ' '}, ASCIISegments.Fallback())
}

func TestFallbackGlyphsShowQuestionMark(t *testing.T) {
	assert.Equal(t, '?', BCDSegments.Fallback().Char)
	assert.Equal(t, '?', SevenSegments.Fallback().Char)
	assert.Equal(t, '?', EightSegments.Fallback().Char)
	assert.Equal(t, '?', FourteenSegments.Fallback().Char)
	assert.Equal(t, '?', SixteenSegments.Fallback().Char)
}

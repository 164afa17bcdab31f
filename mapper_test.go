package segdisp

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapTextPadsWithLeadingSpaces(t *testing.T) {
	got := SevenSegments.MapText("1", 4)
	require.Len(t, got, 4)

	blank := SevenSegments.Lookup(' ')
	assert.Equal(t, []Seven{blank, blank, blank, SevenSegments.Lookup('1')}, got)
	assert.False(t, got[3].Dot())
}

func TestMapTextMergesPeriodIntoPreviousCell(t *testing.T) {
	got := SevenSegments.MapText("1.", 1)
	require.Len(t, got, 1)
	assert.Equal(t, SevenSegments.Lookup('1').WithDot(), got[0])
}

func TestMapTextDotMerge(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []Seven
	}{
		{
			name:  "decimal number",
			text:  "3.14",
			width: 4,
			want: []Seven{
				SevenSegments.Lookup(' '),
				SevenSegments.Lookup('3').WithDot(),
				SevenSegments.Lookup('1'),
				SevenSegments.Lookup('4'),
			},
		},
		{
			name:  "second period gets its own cell",
			text:  "1..",
			width: 2,
			want: []Seven{
				SevenSegments.Lookup('1').WithDot(),
				SevenSegments.Lookup('.'),
			},
		},
		{
			// '!' already carries a lit dot in the table, so the period
			// that follows is not folded into it.
			name:  "dot already on blocks merge",
			text:  "!.",
			width: 2,
			want: []Seven{
				SevenSegments.Lookup('!'),
				SevenSegments.Lookup('.'),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SevenSegments.MapText(tt.text, tt.width))
		})
	}
}

func TestMapTextLiteralKeepsPeriodsSeparate(t *testing.T) {
	got := SevenSegments.MapTextLiteral("1.", 2)
	want := []Seven{SevenSegments.Lookup('1'), SevenSegments.Lookup('.')}
	assert.Equal(t, want, got)
}

func TestMapTextTruncatesFromTheFront(t *testing.T) {
	got := SevenSegments.MapText("12345", 3)
	want := []Seven{
		SevenSegments.Lookup('3'),
		SevenSegments.Lookup('4'),
		SevenSegments.Lookup('5'),
	}
	assert.Equal(t, want, got)
}

func TestMapTextWidthZeroAndNegative(t *testing.T) {
	assert.Empty(t, SevenSegments.MapText("12345", 0))
	// negative widths are treated as zero
	assert.Empty(t, SevenSegments.MapText("12345", -3))
	assert.Empty(t, SevenSegments.MapCells([]Cell{{Code: '1'}}, 0))
	assert.Empty(t, SevenSegments.MapCellsWithColor([]Cell{{Code: '1'}}, -1))
}

func TestMapTextUnmappedFallsBack(t *testing.T) {
	got := SevenSegments.MapText("€", 1)
	require.Len(t, got, 1)
	assert.Equal(t, SevenSegments.Fallback(), got[0])
}

func TestMapCellsHonorsExplicitDots(t *testing.T) {
	cells := []Cell{
		{Code: '4', Dot: true},
		{Code: '2'},
	}
	got := SevenSegments.MapCells(cells, 2)
	want := []Seven{
		SevenSegments.Lookup('4').WithDot(),
		SevenSegments.Lookup('2'),
	}
	assert.Equal(t, want, got)
}

func TestMapCellsDoesNotMergePeriods(t *testing.T) {
	// cell input states dots explicitly; a '.' cell stays its own cell
	cells := []Cell{{Code: '1'}, {Code: '.'}}
	got := SevenSegments.MapCells(cells, 2)
	want := []Seven{SevenSegments.Lookup('1'), SevenSegments.Lookup('.')}
	assert.Equal(t, want, got)
}

func TestMapCellsWithColor(t *testing.T) {
	red := color.RGBA{R: 0xFF, A: 0xFF}
	cells := []Cell{{Code: '7', Dot: true, Color: red}}

	got := SevenSegments.MapCellsWithColor(cells, 3)
	require.Len(t, got, 3)

	pad := Colored[Seven]{Glyph: SevenSegments.Lookup(' '), Color: White}
	assert.Equal(t, pad, got[0])
	assert.Equal(t, pad, got[1])
	assert.Equal(t, Colored[Seven]{
		Glyph: SevenSegments.Lookup('7').WithDot(),
		Color: red,
	}, got[2])
}

func TestMapCellsWithColorTruncates(t *testing.T) {
	cells := []Cell{
		{Code: '1', Color: White},
		{Code: '2', Color: White},
		{Code: '3', Color: White},
	}
	got := SevenSegments.MapCellsWithColor(cells, 2)
	require.Len(t, got, 2)
	assert.Equal(t, SevenSegments.Lookup('2'), got[0].Glyph)
	assert.Equal(t, SevenSegments.Lookup('3'), got[1].Glyph)
}

func TestMapTextWorksForEveryFamily(t *testing.T) {
	assert.Len(t, BCDSegments.MapText("13.37", 4), 4)
	assert.Len(t, EightSegments.MapText("13.37", 4), 4)
	assert.Len(t, FourteenSegments.MapText("13.37", 4), 4)
	assert.Len(t, SixteenSegments.MapText("13.37", 4), 4)
	assert.Len(t, ASCIISegments.MapText("13.37", 4), 4)
}

func TestMapTextASCIIFoldsDot(t *testing.T) {
	got := ASCIISegments.MapText("9.", 1)
	require.Len(t, got, 1)
	assert.Equal(t, byte('9'), got[0].Value)
	assert.True(t, got[0].Dot())
}

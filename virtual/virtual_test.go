package virtual

import (
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bosh/segdisp"
)

func TestDisplayStartsEmpty(t *testing.T) {
	d := New("score_left", 4)
	assert.Equal(t, "score_left", d.Name())
	assert.Equal(t, 4, d.Width())
	assert.Equal(t, "", d.Text())

	mode, mask := d.Flash()
	assert.Equal(t, FlashNone, mode)
	assert.Equal(t, "", mask)
}

func TestSetTextRoundTrip(t *testing.T) {
	red := color.RGBA{R: 0xFF, A: 0xFF}
	d := New("clock", 4)
	d.SetText([]segdisp.Cell{
		{Code: '1', Color: red},
		{Code: '2', Dot: true, Color: red},
		{Code: '3', Color: red},
		{Code: '4', Color: red},
	}, FlashAll, "")

	assert.Equal(t, "12.34", d.Text())
	assert.Equal(t, []color.RGBA{red, red, red, red}, d.Colors())

	mode, _ := d.Flash()
	assert.Equal(t, FlashAll, mode)
}

func TestSetTextCopiesCells(t *testing.T) {
	cells := []segdisp.Cell{{Code: '7'}}
	d := New("d", 1)
	d.SetText(cells, FlashNone, "")

	cells[0].Code = '8'
	assert.Equal(t, "7", d.Text())
}

func TestRenderUsesDisplayWidth(t *testing.T) {
	d := New("d", 4)
	d.SetText([]segdisp.Cell{{Code: '1'}}, FlashNone, "")

	glyphs := Render(d, segdisp.SevenSegments)
	require.Len(t, glyphs, 4)
	assert.Equal(t, segdisp.SevenSegments.Lookup(' '), glyphs[0])
	assert.Equal(t, segdisp.SevenSegments.Lookup('1'), glyphs[3])
}

func TestFlashModeString(t *testing.T) {
	assert.Equal(t, "no_flash", FlashNone.String())
	assert.Equal(t, "all", FlashAll.String())
	assert.Equal(t, "match", FlashMatch.String())
	assert.Equal(t, "mask", FlashMask.String())
}

func TestConcurrentSetAndRead(t *testing.T) {
	d := New("d", 2)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			d.SetText([]segdisp.Cell{{Code: '0'}, {Code: '1'}}, FlashNone, "")
		}()
		go func() {
			defer wg.Done()
			_ = d.Text()
			_, _ = d.Flash()
		}()
	}
	wg.Wait()
	assert.Equal(t, "01", d.Text())
}

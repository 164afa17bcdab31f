// Package virtual provides a software segment display for machines that
// run without physical display hardware, and for tests.
//
// A virtual display records the last text handed to it instead of driving
// a chip; callers can read the text, per-cell colors and flash state back,
// or render the text through any segdisp table.
package virtual

import (
	"image/color"
	"strings"
	"sync"

	"github.com/bosh/segdisp"
)

// FlashMode selects how a display flashes its content.
type FlashMode int

const (
	// FlashNone shows the text steadily.
	FlashNone FlashMode = iota
	// FlashAll flashes the whole display.
	FlashAll
	// FlashMatch flashes only cells whose content matches.
	FlashMatch
	// FlashMask flashes the cells selected by the flash mask.
	FlashMask
)

func (m FlashMode) String() string {
	switch m {
	case FlashNone:
		return "no_flash"
	case FlashAll:
		return "all"
	case FlashMatch:
		return "match"
	case FlashMask:
		return "mask"
	}
	return "unknown"
}

// Display is a segment display that exists only in memory.
type Display struct {
	name  string
	width int

	mu    sync.Mutex
	cells []segdisp.Cell
	mode  FlashMode
	mask  string
}

// New returns an empty virtual display with the given name and number of
// display positions.
func New(name string, width int) *Display {
	return &Display{name: name, width: width}
}

// Name returns the display's configured name.
func (d *Display) Name() string { return d.name }

// Width returns the number of display positions.
func (d *Display) Width() int { return d.width }

// SetText replaces the displayed cells and flash state. The cell slice is
// copied; the caller keeps ownership of its slice.
func (d *Display) SetText(cells []segdisp.Cell, mode FlashMode, mask string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cells = append(d.cells[:0:0], cells...)
	d.mode = mode
	d.mask = mask
}

// Cells returns a copy of the displayed cells.
func (d *Display) Cells() []segdisp.Cell {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]segdisp.Cell(nil), d.cells...)
}

// Text returns the displayed text with embedded dots written out as
// periods.
func (d *Display) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var b strings.Builder
	for _, c := range d.cells {
		b.WriteRune(c.Code)
		if c.Dot {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Colors returns the per-cell colors of the displayed text.
func (d *Display) Colors() []color.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()
	colors := make([]color.RGBA, len(d.cells))
	for i, c := range d.cells {
		colors[i] = c.Color
	}
	return colors
}

// Flash returns the current flash mode and mask.
func (d *Display) Flash() (FlashMode, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode, d.mask
}

// Render maps the display's current cells through tab at the display's
// width, exactly as a hardware platform would before encoding.
func Render[T segdisp.Glyph[T]](d *Display, tab *segdisp.Table[T]) []T {
	return tab.MapCells(d.Cells(), d.Width())
}

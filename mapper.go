package segdisp

// MapCells maps an ordered cell sequence onto glyphs, right-aligned to
// width. Each cell's dot state is taken as given; no merging heuristics
// apply.
func (t *Table[T]) MapCells(cells []Cell, width int) []T {
	glyphs := make([]T, 0, len(cells))
	for _, c := range cells {
		g := t.Lookup(c.Code)
		if c.Dot {
			g = g.WithDot()
		}
		glyphs = append(glyphs, g)
	}
	return t.normalize(glyphs, width)
}

// MapCellsWithColor is MapCells with each glyph paired with its cell's
// color. Padding cells are White.
func (t *Table[T]) MapCellsWithColor(cells []Cell, width int) []Colored[T] {
	glyphs := make([]Colored[T], 0, len(cells))
	for _, c := range cells {
		g := t.Lookup(c.Code)
		if c.Dot {
			g = g.WithDot()
		}
		glyphs = append(glyphs, Colored[T]{Glyph: g, Color: c.Color})
	}
	if width <= 0 {
		return nil
	}
	if len(glyphs) > width {
		glyphs = glyphs[len(glyphs)-width:]
	}
	if len(glyphs) == width {
		return glyphs
	}
	out := make([]Colored[T], 0, width)
	pad := Colored[T]{Glyph: t.Lookup(' '), Color: White}
	for n := width - len(glyphs); n > 0; n-- {
		out = append(out, pad)
	}
	return append(out, glyphs...)
}

// MapText maps a plain string onto glyphs, right-aligned to width.
//
// A literal period following a glyph whose decimal point is off is folded
// into that glyph instead of occupying a cell of its own. When the table
// entry already has its decimal point lit (e.g. '!' on BCD displays), a
// following period is kept as a separate cell.
func (t *Table[T]) MapText(text string, width int) []T {
	return t.mapText(text, width, true)
}

// MapTextLiteral maps a plain string without folding periods; every '.'
// occupies its own cell.
func (t *Table[T]) MapTextLiteral(text string, width int) []T {
	return t.mapText(text, width, false)
}

func (t *Table[T]) mapText(text string, width int, embedDots bool) []T {
	runes := []rune(text)
	glyphs := make([]T, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		g := t.Lookup(runes[i])
		if embedDots && !g.Dot() && i+1 < len(runes) && runes[i+1] == '.' {
			g = g.WithDot()
			i++
		}
		glyphs = append(glyphs, g)
	}
	return t.normalize(glyphs, width)
}

// normalize trims or pads glyphs to exactly width cells, keeping the tail:
// overlong input loses its leading cells, short input is padded with the
// table's space glyph (the fallback when space is unmapped). Widths of
// zero or less yield an empty result.
func (t *Table[T]) normalize(glyphs []T, width int) []T {
	if width <= 0 {
		return nil
	}
	if len(glyphs) > width {
		glyphs = glyphs[len(glyphs)-width:]
	}
	if len(glyphs) == width {
		return glyphs
	}
	out := make([]T, 0, width)
	blank := t.Lookup(' ')
	for n := width - len(glyphs); n > 0; n-- {
		out = append(out, blank)
	}
	return append(out, glyphs...)
}

// Package segdisp converts text into the per-cell bit patterns that
// multiplexed segment display driver chips consume.
//
// Segment mappings are based on David Madison's LED-Segment-ASCII project,
// https://github.com/dmadison/LED-Segment-ASCII. The BCD mappings are our
// own.
//
// # Display Families
//
// Six families are supported, each with its own glyph type and character
// table:
//
//   - BCD — 4-bit binary-coded decimal (digits, hex letters)
//   - Seven — classic seven-segment cells
//   - Eight — seven segments plus an inner vertical bar
//   - Fourteen — alphanumeric fourteen-segment cells
//   - Sixteen — fourteen segments with split top/bottom bars
//   - ASCII — intelligent displays that accept raw ASCII
//
// Every glyph carries a dedicated decimal point flag on top of its segment
// flags, and every table carries a fallback glyph, so looking up a
// character the display cannot show degrades to the fallback instead of
// failing. Rendering never halts on unexpected input.
//
// # Mapping Text
//
// Tables map cell sequences or plain strings onto fixed-width,
// right-aligned glyph sequences:
//
//	glyphs := segdisp.SevenSegments.MapText("13.37", 4)
//	for _, g := range glyphs {
//		wire = append(wire, g.EncodeDPGFEDCBA())
//	}
//
// MapText folds a literal period into the preceding cell's decimal point,
// the way scores and clocks are shown on real hardware; MapCells takes
// explicit per-cell dot state instead. Results are truncated from the
// front or padded with leading spaces to the requested width.
//
// # Wire Encodings
//
// Each glyph type exposes the byte orderings of the driver chips deployed
// against it (for example EncodeGFEDCBA and EncodeDPGFEABCD for
// seven-segment drivers, or the PinMAME, APC and VPE two-byte orderings
// for fourteen-segment drivers). The bit positions are a frozen hardware
// compatibility contract.
//
// # Concurrency
//
// Tables are immutable after package initialization and all mapping and
// encoding operations are pure, so the package is safe for concurrent use
// without synchronization.
package segdisp

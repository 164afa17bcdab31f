package segdisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBCDEncodings(t *testing.T) {
	tests := []struct {
		code   rune
		dpx, x byte
	}{
		{'0', 0x00, 0x00},
		{'9', 0x09, 0x09},
		{'A', 0x0A, 0x0A},
		{'f', 0x0F, 0x0F},
		{'!', 0x81, 0x01}, // 1 with dot
		{'?', 0x82, 0x02}, // 2 with dot
	}

	for _, tt := range tests {
		g := BCDSegments.Lookup(tt.code)
		assert.Equal(t, tt.dpx, g.EncodeDPX3X2X1X0(), "dpx3x2x1x0 of %q", tt.code)
		assert.Equal(t, tt.x, g.EncodeX3X2X1X0(), "x3x2x1x0 of %q", tt.code)
	}
}

func TestSevenEncodings(t *testing.T) {
	tests := []struct {
		code                          rune
		gfedcba, dpgfedcba, dpgfeabcd byte
	}{
		{'0', 0x3F, 0x3F, 0x3F},
		{'1', 0x06, 0x06, 0x06},
		{'2', 0x5B, 0x5B, 0x5D},
		{'8', 0x7F, 0x7F, 0x7F},
		{'!', 0x06, 0x86, 0x86},
		{'?', 0x53, 0xD3, 0xDC},
	}

	for _, tt := range tests {
		g := SevenSegments.Lookup(tt.code)
		assert.Equal(t, tt.gfedcba, g.EncodeGFEDCBA(), "gfedcba of %q", tt.code)
		assert.Equal(t, tt.dpgfedcba, g.EncodeDPGFEDCBA(), "dpgfedcba of %q", tt.code)
		assert.Equal(t, tt.dpgfeabcd, g.EncodeDPGFEABCD(), "dpgfeabcd of %q", tt.code)
	}
}

func TestSevenEncodingDropsOrKeepsDot(t *testing.T) {
	dotted := SevenSegments.Lookup('1').WithDot()
	assert.Equal(t, byte(0x06), dotted.EncodeGFEDCBA())
	assert.Equal(t, byte(0x86), dotted.EncodeDPGFEDCBA())
}

func TestEightEncodings(t *testing.T) {
	tests := []struct {
		code     rune
		hgfedcba byte
	}{
		{'0', 0x3F},
		{'A', 0x77},
		{'~', 0x01},
	}

	for _, tt := range tests {
		g := EightSegments.Lookup(tt.code)
		assert.Equal(t, tt.hgfedcba, g.EncodeHGFEDCBA(), "hgfedcba of %q", tt.code)
	}
}

func TestFourteenEncodings(t *testing.T) {
	tests := []struct {
		code              rune
		pinmame, apc, vpe [2]byte
	}{
		{'0', [2]byte{0x3F, 0x14}, [2]byte{0x3F, 0x28}, [2]byte{0x3F, 0x0A}},
		{'-', [2]byte{0x40, 0x08}, [2]byte{0x40, 0x04}, [2]byte{0x40, 0x04}},
		{'A', [2]byte{0x77, 0x08}, [2]byte{0x7E, 0x04}, [2]byte{0x77, 0x04}},
		{'W', [2]byte{0x36, 0x50}, [2]byte{0x36, 0xA0}, [2]byte{0x36, 0x28}},
	}

	for _, tt := range tests {
		g := FourteenSegments.Lookup(tt.code)
		assert.Equal(t, tt.pinmame, g.EncodePinMAME(), "pinmame of %q", tt.code)
		assert.Equal(t, tt.apc, g.EncodeAPC(), "apc of %q", tt.code)
		assert.Equal(t, tt.vpe, g.EncodeVPE(), "vpe of %q", tt.code)
	}
}

// APC packs the decimal point into both output bytes; PinMAME and VPE
// carry it once.
func TestFourteenDotPlacement(t *testing.T) {
	g := FourteenSegments.Lookup('1').WithDot()
	assert.Equal(t, [2]byte{0x06, 0x84}, g.EncodePinMAME())
	assert.Equal(t, [2]byte{0x86, 0x48}, g.EncodeAPC())
	assert.Equal(t, [2]byte{0x06, 0x42}, g.EncodeVPE())
}

func TestASCIIEncodings(t *testing.T) {
	a := ASCIISegments.Lookup('A')
	assert.Equal(t, byte(65), a.Encode())
	assert.Equal(t, byte(65), a.EncodeWithDot())

	dotted := a.WithDot()
	assert.Equal(t, byte(65), dotted.Encode())
	assert.Equal(t, byte(193), dotted.EncodeWithDot())
}

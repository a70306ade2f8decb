package infinitescroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScrollMetrics(t *testing.T) {
	// 10 track cells = 80 subcells; viewport 24 of content 200.
	m := computeScrollMetrics(10, 200, 24, 0)
	assert.Equal(t, 80, m.trackLen)
	assert.Equal(t, 9, m.thumbLen)
	assert.Equal(t, 0, m.thumbStart)

	m = computeScrollMetrics(10, 200, 24, 176)
	assert.Equal(t, 71, m.thumbStart)

	m = computeScrollMetrics(10, 200, 24, 88)
	assert.Equal(t, 35, m.thumbStart)

	// Offsets beyond the scrollable range clamp.
	m = computeScrollMetrics(10, 200, 24, 1000)
	assert.Equal(t, 71, m.thumbStart)
}

func TestComputeScrollMetricsDegenerate(t *testing.T) {
	// Nothing to scroll: the thumb fills the track.
	m := computeScrollMetrics(10, 20, 24, 0)
	assert.Equal(t, 80, m.thumbLen)
	assert.Equal(t, 0, m.thumbStart)

	// The thumb never shrinks below one cell.
	m = computeScrollMetrics(10, 100000, 24, 0)
	assert.Equal(t, subcell, m.thumbLen)

	assert.Equal(t, scrollMetrics{}, computeScrollMetrics(0, 200, 24, 0))
}

func TestCellFill(t *testing.T) {
	m := scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 9, thumbStart: 35}

	// Cell 3 spans subcells 24-32, fully before the thumb.
	start, fillLen := cellFill(m, 3)
	assert.Zero(t, fillLen)

	// Cell 4 spans 32-40; the thumb covers 35-40.
	start, fillLen = cellFill(m, 4)
	assert.Equal(t, 3, start)
	assert.Equal(t, 5, fillLen)

	// Cell 5 spans 40-48; the thumb covers 40-44.
	start, fillLen = cellFill(m, 5)
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, fillLen)

	start, fillLen = cellFill(m, 6)
	assert.Zero(t, fillLen)
}

func TestGlyphSelection(t *testing.T) {
	bar := NewScrollBar(Vertical).SetGlyphSet(BlockGlyphSet())

	glyph, _ := bar.glyphFor(0, 0)
	assert.Equal(t, "│", glyph)

	glyph, _ = bar.glyphFor(0, subcell)
	assert.Equal(t, "█", glyph)

	// Partial fill growing from the leading cell edge uses upper glyphs.
	glyph, _ = bar.glyphFor(0, 4)
	assert.Equal(t, BlockGlyphSet().ThumbVerticalUpper[3], glyph)

	// Partial fill away from the leading edge uses lower glyphs.
	glyph, _ = bar.glyphFor(3, 5)
	assert.Equal(t, BlockGlyphSet().ThumbVerticalLower[4], glyph)
}

func TestScrollBarAutoHide(t *testing.T) {
	bar := NewScrollBar(Vertical).
		SetLengths(ScrollLengths{ContentLen: 20, ViewportLen: 24})
	m := bar.metrics(10)
	assert.False(t, bar.shouldDraw(10, m))

	bar.SetLengths(ScrollLengths{ContentLen: 200, ViewportLen: 24})
	m = bar.metrics(10)
	assert.True(t, bar.shouldDraw(10, m))

	bar.SetAutoHide(false).SetLengths(ScrollLengths{ContentLen: 20, ViewportLen: 24})
	m = bar.metrics(10)
	assert.True(t, bar.shouldDraw(10, m))
}

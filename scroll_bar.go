package infinitescroll

import "github.com/gdamore/tcell/v3"

// ScrollLengths bundles content and viewport lengths in logical units.
type ScrollLengths struct {
	ContentLen  int
	ViewportLen int
}

const subcell = 8

// GlyphSet defines track and fractional thumb glyphs for both orientations.
type GlyphSet struct {
	TrackVertical   string
	TrackHorizontal string

	// Fractional thumbs indexed by fill in 1/8 cells. Lower glyphs grow from
	// the trailing cell edge, upper glyphs from the leading edge.
	ThumbVerticalLower   [8]string
	ThumbVerticalUpper   [8]string
	ThumbHorizontalLower [8]string
	ThumbHorizontalUpper [8]string
}

// MinimalGlyphSet returns the minimal glyph set (space track, fractional
// thumbs).
func MinimalGlyphSet() GlyphSet {
	g := BlockGlyphSet()
	g.TrackVertical = " "
	g.TrackHorizontal = " "
	return g
}

// BlockGlyphSet returns block-element glyphs for 1/8-cell thumb fidelity.
func BlockGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:   "│",
		TrackHorizontal: "─",

		ThumbVerticalLower:   [8]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		ThumbVerticalUpper:   [8]string{"▔", "▔", "▀", "▀", "▀", "▀", "█", "█"},
		ThumbHorizontalLower: [8]string{"▕", "▕", "▐", "▐", "▐", "▐", "█", "█"},
		ThumbHorizontalUpper: [8]string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
	}
}

// ScrollBar renders a customizable scroll bar along either axis.
type ScrollBar struct {
	*Box

	orientation Direction
	autoHide    bool
	contentLen  int
	viewportLen int
	offset      int

	trackStyle tcell.Style
	thumbStyle tcell.Style

	glyphSet  GlyphSet
	showTrack bool
}

// NewScrollBar returns a new scroll bar for the given orientation.
func NewScrollBar(orientation Direction) *ScrollBar {
	return &ScrollBar{
		Box:         NewBox(),
		orientation: orientation,
		autoHide:    true,
		trackStyle:  tcell.StyleDefault.Dim(true),
		thumbStyle:  tcell.StyleDefault.Foreground(Styles.ScrollBarColor),
		glyphSet:    MinimalGlyphSet(),
		showTrack:   true,
	}
}

// SetLengths sets content and viewport lengths.
func (s *ScrollBar) SetLengths(lengths ScrollLengths) *ScrollBar {
	s.contentLen = max(lengths.ContentLen, 0)
	s.viewportLen = max(lengths.ViewportLen, 0)
	return s
}

// SetOffset sets the logical offset.
func (s *ScrollBar) SetOffset(offset int) *ScrollBar {
	s.offset = max(offset, 0)
	return s
}

// SetGlyphSet applies a glyph set.
func (s *ScrollBar) SetGlyphSet(g GlyphSet) *ScrollBar {
	s.glyphSet = g
	return s
}

// SetAutoHide controls whether the scroll bar is hidden when there is nothing
// to scroll.
func (s *ScrollBar) SetAutoHide(autoHide bool) *ScrollBar {
	s.autoHide = autoHide
	return s
}

// SetThumbStyle sets the thumb style.
func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	s.thumbStyle = style
	return s
}

// SetTrackGlyph sets the track symbol and visibility for both orientations.
func (s *ScrollBar) SetTrackGlyph(glyph string, visible bool) *ScrollBar {
	s.glyphSet.TrackVertical = glyph
	s.glyphSet.TrackHorizontal = glyph
	s.showTrack = visible
	return s
}

// SetTrackStyle sets the track style.
func (s *ScrollBar) SetTrackStyle(style tcell.Style) *ScrollBar {
	s.trackStyle = style
	return s
}

func (s *ScrollBar) viewportLength(length int) int {
	if s.viewportLen > 0 {
		return s.viewportLen
	}
	return max(length, 0)
}

type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

// metrics computes scroll bar geometry in subcell units.
func (s *ScrollBar) metrics(length int) scrollMetrics {
	return computeScrollMetrics(length, s.contentLen, s.viewportLength(length), s.offset)
}

func computeScrollMetrics(trackCells int, contentLen int, viewportLen int, offset int) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 {
		return scrollMetrics{}
	}

	contentLen = max(contentLen, 1)
	viewportLen = min(max(viewportLen, 1), contentLen)
	maxOffset := max(contentLen-viewportLen, 0)
	offset = min(max(offset, 0), maxOffset)

	if maxOffset == 0 {
		return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen, thumbStart: 0}
	}

	// Subcell math lets the thumb move in 1/8-cell steps while staying
	// proportional to viewport/content size.
	thumbLen := min(max((trackLen*viewportLen)/contentLen, subcell), trackLen)
	thumbTravel := max(trackLen-thumbLen, 0)
	thumbStart := (thumbTravel * offset) / maxOffset
	return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

func (s *ScrollBar) shouldDraw(length int, m scrollMetrics) bool {
	if length <= 0 || m.trackLen == 0 || s.contentLen <= 0 {
		return false
	}
	if s.autoHide {
		contentLen := max(s.contentLen, 1)
		viewportLen := min(max(s.viewportLength(length), 1), contentLen)
		if contentLen <= viewportLen {
			return false
		}
	}
	return true
}

func cellFill(m scrollMetrics, cellIndex int) (start int, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := cellIndex * subcell
	cellEnd := cellStart + subcell
	thumbEnd := m.thumbStart + m.thumbLen
	start = max(m.thumbStart, cellStart)
	end := min(thumbEnd, cellEnd)
	if end <= start {
		return 0, 0
	}
	// Convert absolute subcell coverage into cell-local [start,len] used by
	// fractional glyph selection.
	fillLen = min(end-start, subcell)
	start = min(max(start-cellStart, 0), subcell)
	return start, fillLen
}

func (s *ScrollBar) glyphFor(start, fillLen int) (string, tcell.Style) {
	track := s.glyphSet.TrackVertical
	lower := s.glyphSet.ThumbVerticalLower
	upper := s.glyphSet.ThumbVerticalUpper
	if s.orientation == Horizontal {
		track = s.glyphSet.TrackHorizontal
		lower = s.glyphSet.ThumbHorizontalLower
		upper = s.glyphSet.ThumbHorizontalUpper
	}

	if fillLen <= 0 {
		if !s.showTrack {
			return " ", s.trackStyle
		}
		return track, s.trackStyle
	}
	if fillLen >= subcell {
		return lower[7], s.thumbStyle
	}
	ix := fillLen - 1
	if start == 0 {
		return upper[ix], s.thumbStyle
	}
	return lower[ix], s.thumbStyle
}

// Draw draws the scroll bar.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	x, y, width, height := s.GetRect()
	length := height
	if s.orientation == Horizontal {
		length = width
	}
	if length <= 0 {
		return
	}

	m := s.metrics(length)
	if !s.shouldDraw(length, m) {
		return
	}

	for cell := 0; cell < m.trackCells; cell++ {
		start, fillLen := cellFill(m, cell)
		glyph, style := s.glyphFor(start, fillLen)
		if s.orientation == Horizontal {
			screen.Put(x+cell, y, glyph, style)
		} else {
			screen.Put(x, y+cell, glyph, style)
		}
	}
}

var _ Primitive = &ScrollBar{}

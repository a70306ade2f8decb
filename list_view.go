package infinitescroll

import "github.com/gdamore/tcell/v3"

// Row represents a list row which can be measured for a given width.
//
// Rows report their own height so the list can lay out and scroll
// variable-height content.
type Row interface {
	Primitive
	Height(width int) int
}

// RowBuilder returns a row for the given index. It must return nil when the
// index is out of range.
type RowBuilder func(index int) Row

// ListView displays a virtual vertical list of rows returned by a builder
// function. It scrolls like a [ScrollView] and additionally implements
// [RowScroller] and [Remeasurer], so a [Controller] reveals the loading
// indicator through row-granular scrolling and can request a fresh
// measurement pass when a load finishes.
type ListView struct {
	*ScrollView

	builder RowBuilder
	gap     int

	// rowTops[i] is the y coordinate of row i in content space; the slice
	// carries one extra entry holding the total content height.
	rowTops   []int
	lastWidth int
}

// NewListView returns a new list view.
func NewListView() *ListView {
	return &ListView{
		ScrollView: NewScrollView(Vertical),
	}
}

// SetBuilder sets the builder used to create rows on demand and re-measures
// the content.
func (l *ListView) SetBuilder(builder RowBuilder) *ListView {
	l.builder = builder
	l.Remeasure()
	return l
}

// SetGap sets the number of blank rows between items and re-measures the
// content.
func (l *ListView) SetGap(gap int) *ListView {
	if gap < 0 {
		gap = 0
	}
	l.gap = gap
	l.Remeasure()
	return l
}

// RowCount returns the number of measured rows.
func (l *ListView) RowCount() int {
	if len(l.rowTops) == 0 {
		return 0
	}
	return len(l.rowTops) - 1
}

// Remeasure runs a measurement pass over all rows at the current width and
// updates the content size.
func (l *ListView) Remeasure() {
	_, _, width, _ := l.GetInnerRect()
	l.measure(width)
}

func (l *ListView) measure(width int) {
	l.lastWidth = width
	l.rowTops = l.rowTops[:0]
	total := 0
	if l.builder != nil && width > 0 {
		for index := 0; ; index++ {
			row := l.builder(index)
			if row == nil {
				break
			}
			l.rowTops = append(l.rowTops, total)
			total += max(row.Height(width), 1)
			total += l.gap
		}
		if len(l.rowTops) > 0 {
			total -= l.gap
		}
	}
	l.rowTops = append(l.rowTops, total)
	l.SetContentSize(Size{Width: width, Height: total})
}

// ScrollToLastRow scrolls so the last row, and any indicator row reserved
// after it, is flush with the bottom of the viewport.
func (l *ListView) ScrollToLastRow(animated bool) {
	inset := l.ContentInset().Add(l.SafeInset())
	end := l.ContentSize().Height - l.ViewportSize().Height + inset.Bottom
	offset := l.ContentOffset()
	offset.Y = end
	l.SetContentOffset(offset, animated)
}

// Draw draws this primitive onto the screen.
func (l *ListView) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	x, y, width, height := l.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	if width != l.lastWidth {
		l.measure(width)
	}

	clipped := newClippedScreen(screen, x, y, width, height)
	offset := l.ContentOffset()
	originX := x - offset.X
	originY := y - offset.Y

	if l.builder != nil {
		for index := 0; index < l.RowCount(); index++ {
			top := l.rowTops[index]
			bottom := l.rowTops[index+1] - l.gap
			if index == l.RowCount()-1 {
				bottom = l.rowTops[index+1]
			}
			if bottom <= offset.Y {
				continue
			}
			if top >= offset.Y+height {
				break
			}
			row := l.builder(index)
			if row == nil {
				break
			}
			row.SetRect(originX, originY+top, width, bottom-top)
			row.Draw(clipped)
		}
	}

	l.drawIndicator(clipped, originX, originY)
	l.drawScrollBar(screen, x, y, width, height)
}

var (
	_ Primitive           = &ListView{}
	_ ScrollableContainer = &ListView{}
	_ RowScroller         = &ListView{}
	_ Remeasurer          = &ListView{}
)

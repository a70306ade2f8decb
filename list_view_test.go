package infinitescroll

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textRow is a fixed-height row for tests.
type textRow struct {
	*Box
	text   string
	height int
}

func newTextRow(text string, height int) *textRow {
	return &textRow{Box: NewBox(), text: text, height: height}
}

func (r *textRow) Height(width int) int {
	return r.height
}

func sliceBuilder(rows []Row) RowBuilder {
	return func(index int) Row {
		if index < 0 || index >= len(rows) {
			return nil
		}
		return rows[index]
	}
}

func TestListViewMeasure(t *testing.T) {
	rows := make([]Row, 5)
	for i := range rows {
		rows[i] = newTextRow(fmt.Sprintf("row %d", i), 2)
	}

	list := NewListView()
	list.SetRect(0, 0, 20, 10)
	list.SetGap(1)
	list.SetBuilder(sliceBuilder(rows))

	require.Equal(t, 5, list.RowCount())
	// 5 rows of height 2 with 4 single-cell gaps.
	assert.Equal(t, Size{Width: 20, Height: 14}, list.ContentSize())
	assert.Equal(t, []int{0, 3, 6, 9, 12, 14}, list.rowTops)
}

func TestListViewMeasureEmpty(t *testing.T) {
	list := NewListView()
	list.SetRect(0, 0, 20, 10)
	list.SetBuilder(sliceBuilder(nil))

	assert.Zero(t, list.RowCount())
	assert.Equal(t, Size{Width: 20, Height: 0}, list.ContentSize())
}

func TestListViewZeroHeightRowsOccupyOneCell(t *testing.T) {
	list := NewListView()
	list.SetRect(0, 0, 20, 10)
	list.SetBuilder(sliceBuilder([]Row{newTextRow("", 0), newTextRow("", 0)}))

	assert.Equal(t, 2, list.ContentSize().Height)
}

func TestListViewRemeasureAfterGrowth(t *testing.T) {
	rows := []Row{newTextRow("a", 2)}
	list := NewListView()
	list.SetRect(0, 0, 20, 10)
	list.SetBuilder(func(index int) Row {
		if index >= len(rows) {
			return nil
		}
		return rows[index]
	})
	require.Equal(t, 2, list.ContentSize().Height)

	sizes := 0
	list.OnContentSizeChanged(func(Size) { sizes++ })
	rows = append(rows, newTextRow("b", 3))
	list.Remeasure()

	assert.Equal(t, 2, list.RowCount())
	assert.Equal(t, 5, list.ContentSize().Height)
	assert.Equal(t, 1, sizes)
}

func TestListViewScrollToLastRow(t *testing.T) {
	rows := make([]Row, 10)
	for i := range rows {
		rows[i] = newTextRow(fmt.Sprintf("row %d", i), 2)
	}

	list := NewListView()
	list.SetRect(0, 0, 20, 10)
	list.SetBuilder(sliceBuilder(rows))
	require.Equal(t, 20, list.ContentSize().Height)

	list.ScrollToLastRow(false)
	assert.Equal(t, 10, list.ContentOffset().Y)

	// A trailing inset, such as one reserved for a loading indicator, stays
	// in view.
	list.SetContentInset(Inset{Bottom: 3}, false, nil)
	list.ScrollToLastRow(false)
	assert.Equal(t, 13, list.ContentOffset().Y)
}

func TestListViewShortContentScrollToLastRow(t *testing.T) {
	list := NewListView()
	list.SetRect(0, 0, 20, 10)
	list.SetBuilder(sliceBuilder([]Row{newTextRow("only", 2)}))

	list.ScrollToLastRow(false)
	// Nothing to scroll: the offset clamps to the leading edge.
	assert.Equal(t, 0, list.ContentOffset().Y)
}

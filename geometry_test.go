package infinitescroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, Width: 20, Height: 10}

	assert.True(t, base.Intersects(Rect{X: 15, Y: 15, Width: 5, Height: 5}))
	assert.True(t, base.Intersects(Rect{X: 29, Y: 19, Width: 10, Height: 10}))
	assert.False(t, base.Intersects(Rect{X: 30, Y: 10, Width: 5, Height: 5}))
	assert.False(t, base.Intersects(Rect{X: 10, Y: 20, Width: 20, Height: 5}))
	assert.False(t, base.Intersects(Rect{X: 0, Y: 0, Width: 10, Height: 10}))
}

func TestInsetAdd(t *testing.T) {
	sum := Inset{Top: 1, Bottom: 2}.Add(Inset{Top: 3, Left: 4, Right: 5})
	assert.Equal(t, Inset{Top: 4, Bottom: 2, Left: 4, Right: 5}, sum)
}

func TestDirectionAxisSelectors(t *testing.T) {
	size := Size{Width: 120, Height: 40}
	point := Point{X: 7, Y: 9}
	inset := Inset{Top: 1, Bottom: 2, Left: 3, Right: 4}
	velocity := Velocity{X: -1.5, Y: 2.5}

	assert.Equal(t, 40, Vertical.length(size))
	assert.Equal(t, 120, Vertical.crossLength(size))
	assert.Equal(t, 9, Vertical.offset(point))
	assert.Equal(t, Point{X: 7, Y: 42}, Vertical.withOffset(point, 42))
	assert.Equal(t, 2.5, Vertical.velocity(velocity))
	assert.Equal(t, 1, Vertical.leading(inset))
	assert.Equal(t, 2, Vertical.trailing(inset))
	assert.Equal(t, Inset{Top: 1, Bottom: 7, Left: 3, Right: 4}, Vertical.addTrailing(inset, 5))

	assert.Equal(t, 120, Horizontal.length(size))
	assert.Equal(t, 40, Horizontal.crossLength(size))
	assert.Equal(t, 7, Horizontal.offset(point))
	assert.Equal(t, Point{X: 42, Y: 9}, Horizontal.withOffset(point, 42))
	assert.Equal(t, -1.5, Horizontal.velocity(velocity))
	assert.Equal(t, 3, Horizontal.leading(inset))
	assert.Equal(t, 4, Horizontal.trailing(inset))
	assert.Equal(t, Inset{Top: 1, Bottom: 2, Left: 3, Right: 9}, Horizontal.addTrailing(inset, 5))
}

func TestDirectionRowFrame(t *testing.T) {
	content := Size{Width: 80, Height: 200}

	assert.Equal(t, Rect{X: 0, Y: 200, Width: 80, Height: 3},
		Vertical.rowFrame(content, 60, 3))
	// The cross axis spans the wider of the content and the viewport.
	assert.Equal(t, Rect{X: 0, Y: 200, Width: 100, Height: 3},
		Vertical.rowFrame(content, 100, 3))
	assert.Equal(t, Rect{X: 80, Y: 0, Width: 3, Height: 200},
		Horizontal.rowFrame(content, 40, 3))
}

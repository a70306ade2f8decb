package infinitescroll

// Point is a position in content coordinates. Offsets may be negative while
// the leading inset is exposed.
type Point struct {
	X, Y int
}

// Size is a width/height pair in cells.
type Size struct {
	Width, Height int
}

// IsZero returns true when both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Rect is a rectangle in content coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Intersects returns true when the two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width && other.X < r.X+r.Width &&
		r.Y < other.Y+other.Height && other.Y < r.Y+r.Height
}

// Inset describes padding applied to the four edges of a container's content.
type Inset struct {
	Top, Bottom, Left, Right int
}

// Add returns the sum of two insets.
func (i Inset) Add(other Inset) Inset {
	return Inset{
		Top:    i.Top + other.Top,
		Bottom: i.Bottom + other.Bottom,
		Left:   i.Left + other.Left,
		Right:  i.Right + other.Right,
	}
}

// Margins is the padding around the loading indicator along the scroll axis.
type Margins struct {
	Leading, Trailing int
}

// Velocity is the pan rate of the content under the viewport, in cells per
// second. It is non-positive along an axis while the content travels toward
// that axis' trailing edge.
type Velocity struct {
	X, Y float64
}

// Direction determines which axis all of a controller's geometry uses.
type Direction int

const (
	// Vertical scrolls along the y axis; the trigger edge is at the bottom.
	Vertical Direction = iota
	// Horizontal scrolls along the x axis; the trigger edge is on the right.
	Horizontal
)

// String returns a readable name for the direction.
func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// length returns the size component along the scroll axis.
func (d Direction) length(s Size) int {
	if d == Horizontal {
		return s.Width
	}
	return s.Height
}

// crossLength returns the size component perpendicular to the scroll axis.
func (d Direction) crossLength(s Size) int {
	if d == Horizontal {
		return s.Height
	}
	return s.Width
}

// offset returns the offset component along the scroll axis.
func (d Direction) offset(p Point) int {
	if d == Horizontal {
		return p.X
	}
	return p.Y
}

// withOffset returns p with its component along the scroll axis replaced.
func (d Direction) withOffset(p Point, along int) Point {
	if d == Horizontal {
		p.X = along
	} else {
		p.Y = along
	}
	return p
}

// velocity returns the pan velocity component along the scroll axis.
func (d Direction) velocity(v Velocity) float64 {
	if d == Horizontal {
		return v.X
	}
	return v.Y
}

// leading returns the inset at the leading edge of the scroll axis.
func (d Direction) leading(i Inset) int {
	if d == Horizontal {
		return i.Left
	}
	return i.Top
}

// trailing returns the inset at the trailing edge of the scroll axis.
func (d Direction) trailing(i Inset) int {
	if d == Horizontal {
		return i.Right
	}
	return i.Bottom
}

// addTrailing returns i with delta added to the trailing edge of the scroll
// axis. Negative deltas shrink the inset.
func (d Direction) addTrailing(i Inset, delta int) Inset {
	if d == Horizontal {
		i.Right += delta
	} else {
		i.Bottom += delta
	}
	return i
}

// rowFrame returns the rectangle occupying rowLength cells immediately after
// the trailing edge of content, spanning the cross axis fully.
func (d Direction) rowFrame(content Size, cross int, rowLength int) Rect {
	if c := d.crossLength(content); c > cross {
		cross = c
	}
	if d == Horizontal {
		return Rect{X: content.Width, Y: 0, Width: rowLength, Height: cross}
	}
	return Rect{X: 0, Y: content.Height, Width: cross, Height: rowLength}
}

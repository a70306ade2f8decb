package infinitescroll

import "github.com/gdamore/tcell/v3"

// BorderSet defines the characters used to draw a box's border.
type BorderSet struct {
	Top, Bottom, Left, Right                   string
	TopLeft, TopRight, BottomLeft, BottomRight string
}

// BorderSetPlain returns single-line box drawing characters.
func BorderSetPlain() BorderSet {
	return BorderSet{
		Top: "─", Bottom: "─", Left: "│", Right: "│",
		TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
	}
}

// BorderSetRound returns single-line border characters with round corners.
func BorderSetRound() BorderSet {
	set := BorderSetPlain()
	set.TopLeft, set.TopRight, set.BottomLeft, set.BottomRight = "╭", "╮", "╰", "╯"
	return set
}

// Box implements the Primitive interface with an empty background and
// optional elements such as a border and a title. Box itself does not hold
// any content but serves as the superclass of other primitives.
type Box struct {
	// The position of the rect.
	x, y, width, height int

	// Border padding.
	paddingTop, paddingBottom, paddingLeft, paddingRight int

	// The box's background color.
	backgroundColor tcell.Color

	// Border
	border      bool
	borderSet   BorderSet
	borderStyle tcell.Style

	// Title
	title      string
	titleStyle tcell.Style

	hasFocus bool
}

// NewBox returns a Box without a border.
func NewBox() *Box {
	return &Box{
		width:           15,
		height:          10,
		backgroundColor: Styles.PrimitiveBackgroundColor,
		borderSet:       BorderSetPlain(),
		borderStyle:     tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		titleStyle:      tcell.StyleDefault.Foreground(Styles.TitleColor),
	}
}

// SetBorderPadding sets the size of the borders around the box content.
func (b *Box) SetBorderPadding(top, bottom, left, right int) *Box {
	b.paddingTop, b.paddingBottom, b.paddingLeft, b.paddingRight = top, bottom, left, right
	return b
}

// GetRect returns the current position of the rectangle, x, y, width, and
// height.
func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

// GetInnerRect returns the position of the inner rectangle (x, y, width,
// height), without the border and without any padding. Width and height
// values will clamp to 0 and thus never be negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	x, y, width, height := b.GetRect()

	if b.border {
		x++
		y++
		width -= 2
		height -= 2
	} else if b.title != "" {
		y++
		height--
	}

	x += b.paddingLeft
	y += b.paddingTop
	width -= (b.paddingLeft + b.paddingRight)
	height -= (b.paddingTop + b.paddingBottom)
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	return x, y, width, height
}

// SetRect sets a new position of the primitive.
func (b *Box) SetRect(x, y, width, height int) {
	b.x = x
	b.y = y
	b.width = width
	b.height = height
}

// InputHandler returns false for all key events.
func (b *Box) InputHandler(event *tcell.EventKey) bool {
	return false
}

// MouseHandler handles mouse events for this primitive.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) bool {
	return false
}

// InRect returns true if the given coordinate is within the bounds of the
// box's rectangle.
func (b *Box) InRect(x, y int) bool {
	rectX, rectY, width, height := b.GetRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// InInnerRect returns true if the given coordinate is within the bounds of
// the box's inner rectangle (within the border and padding).
func (b *Box) InInnerRect(x, y int) bool {
	rectX, rectY, width, height := b.GetInnerRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// SetBackgroundColor sets the box's background color.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	b.backgroundColor = color
	b.borderStyle = b.borderStyle.Background(color)
	return b
}

// GetBackgroundColor returns the box's background color.
func (b *Box) GetBackgroundColor() tcell.Color {
	return b.backgroundColor
}

// SetBorder toggles the box's border.
func (b *Box) SetBorder(border bool) *Box {
	b.border = border
	return b
}

// SetBorderSet sets the box's border set.
func (b *Box) SetBorderSet(borderSet BorderSet) *Box {
	b.borderSet = borderSet
	return b
}

// SetBorderStyle sets the box's border style.
func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	b.borderStyle = style
	return b
}

// GetTitle returns the box's current title.
func (b *Box) GetTitle() string {
	return b.title
}

// SetTitle sets the box's title, drawn centered in the top border.
func (b *Box) SetTitle(title string) *Box {
	b.title = title
	return b
}

// SetTitleStyle sets the style of the title.
func (b *Box) SetTitleStyle(style tcell.Style) *Box {
	b.titleStyle = style
	return b
}

// Draw draws this primitive onto the screen.
func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws this box under the assumption that primitive p is a
// subclass of this box. Only call this function from your own custom
// primitives.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	// Don't draw anything if there is no space.
	if b.width <= 0 || b.height <= 0 {
		return
	}

	// Fill background.
	background := tcell.StyleDefault.Background(b.backgroundColor)
	for y := b.y; y < b.y+b.height; y++ {
		for x := b.x; x < b.x+b.width; x++ {
			screen.Put(x, y, " ", background)
		}
	}

	// Draw border.
	if b.border && b.width >= 2 && b.height >= 2 {
		for x := b.x + 1; x < b.x+b.width-1; x++ {
			screen.Put(x, b.y, b.borderSet.Top, b.borderStyle)
			screen.Put(x, b.y+b.height-1, b.borderSet.Bottom, b.borderStyle)
		}
		for y := b.y + 1; y < b.y+b.height-1; y++ {
			screen.Put(b.x, y, b.borderSet.Left, b.borderStyle)
			screen.Put(b.x+b.width-1, y, b.borderSet.Right, b.borderStyle)
		}
		screen.Put(b.x, b.y, b.borderSet.TopLeft, b.borderStyle)
		screen.Put(b.x+b.width-1, b.y, b.borderSet.TopRight, b.borderStyle)
		screen.Put(b.x, b.y+b.height-1, b.borderSet.BottomLeft, b.borderStyle)
		screen.Put(b.x+b.width-1, b.y+b.height-1, b.borderSet.BottomRight, b.borderStyle)
	}

	// Draw title.
	if b.title != "" && b.width >= 4 {
		row := b.y
		width := TruncateString(b.title, b.width-2)
		x := b.x + 1 + (b.width-2-StringWidth(width))/2
		PutString(screen, width, x, row, b.titleStyle)
	}
}

// Focus is called when this primitive receives focus.
func (b *Box) Focus() {
	b.hasFocus = true
}

// Blur is called when this primitive loses focus.
func (b *Box) Blur() {
	b.hasFocus = false
}

// HasFocus returns whether or not this primitive has focus.
func (b *Box) HasFocus() bool {
	return b.hasFocus
}

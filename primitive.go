package infinitescroll

import "github.com/gdamore/tcell/v3"

// Primitive is the interface for everything that can be drawn onto the
// screen, including scroll containers, their content, and the rows of a
// ListView.
type Primitive interface {
	// Draw draws this primitive onto the screen.
	Draw(screen tcell.Screen)

	// GetRect returns the current position of the primitive, x, y, width, and
	// height.
	GetRect() (int, int, int, int)
	// SetRect sets a new position of the primitive.
	SetRect(x, y, width, height int)

	// InputHandler receives key events when this primitive has focus. It
	// returns true when the event was consumed.
	InputHandler(event *tcell.EventKey) bool
	// MouseHandler receives mouse events. It returns true when the event was
	// consumed.
	MouseHandler(action MouseAction, event *tcell.EventMouse) bool

	// HasFocus determines if the primitive has focus.
	HasFocus() bool
	// Focus is called when the primitive receives focus.
	Focus()
	// Blur is called when the primitive loses focus.
	Blur()
}

// MouseAction indicates one of the actions the mouse is logically doing.
type MouseAction int16

// Available mouse actions.
const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

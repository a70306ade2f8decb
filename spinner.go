package infinitescroll

import (
	"time"

	"github.com/gdamore/tcell/v3"
)

// spinnerFrames is the default Braille animation cycle.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerFrameInterval = 80 * time.Millisecond

// Spinner is the default loading indicator: a one-cell Braille spinner with
// an optional label. The frame shown is derived from the time elapsed since
// StartAnimating, so the spinner advances on every redraw without its own
// timer.
type Spinner struct {
	frames []string
	label  string
	style  tcell.Style

	// frame is the position assigned by the controller, in content
	// coordinates of the container the spinner is attached to.
	frame Rect
	// rect is the screen-space position assigned by the container.
	x, y, width, height int

	animating bool
	startedAt time.Time
}

// NewSpinner returns a new spinner with the default frames.
func NewSpinner() *Spinner {
	return &Spinner{
		frames: spinnerFrames,
		style:  tcell.StyleDefault.Foreground(Styles.SecondaryTextColor),
	}
}

// SetLabel sets a text drawn after the spinner glyph. The label widens the
// spinner's size.
func (s *Spinner) SetLabel(label string) *Spinner {
	s.label = label
	return s
}

// SetStyle sets the style of the spinner glyph and label.
func (s *Spinner) SetStyle(style tcell.Style) *Spinner {
	s.style = style
	return s
}

// SetFrames replaces the animation cycle. Empty input is ignored.
func (s *Spinner) SetFrames(frames []string) *Spinner {
	if len(frames) > 0 {
		s.frames = frames
	}
	return s
}

// StartAnimating begins the animation cycle.
func (s *Spinner) StartAnimating() {
	if s.animating {
		return
	}
	s.animating = true
	s.startedAt = time.Now()
}

// StopAnimating halts the animation cycle.
func (s *Spinner) StopAnimating() {
	s.animating = false
}

// IsAnimating returns true while the spinner is animating.
func (s *Spinner) IsAnimating() bool {
	return s.animating
}

// Size returns the spinner's bounding size: one row, one cell for the glyph
// plus the label and a separating space.
func (s *Spinner) Size() Size {
	width := 1
	if s.label != "" {
		width += 1 + StringWidth(s.label)
	}
	return Size{Width: width, Height: 1}
}

// SetFrame positions the spinner in content coordinates.
func (s *Spinner) SetFrame(frame Rect) {
	s.frame = frame
}

// Frame returns the spinner's position in content coordinates.
func (s *Spinner) Frame() Rect {
	return s.frame
}

// GetRect returns the spinner's screen-space rectangle.
func (s *Spinner) GetRect() (int, int, int, int) {
	return s.x, s.y, s.width, s.height
}

// SetRect sets the spinner's screen-space rectangle.
func (s *Spinner) SetRect(x, y, width, height int) {
	s.x, s.y, s.width, s.height = x, y, width, height
}

// InputHandler returns false for all key events.
func (s *Spinner) InputHandler(event *tcell.EventKey) bool {
	return false
}

// MouseHandler returns false for all mouse events.
func (s *Spinner) MouseHandler(action MouseAction, event *tcell.EventMouse) bool {
	return false
}

// HasFocus always returns false; a spinner never takes focus.
func (s *Spinner) HasFocus() bool {
	return false
}

// Focus is a no-op.
func (s *Spinner) Focus() {}

// Blur is a no-op.
func (s *Spinner) Blur() {}

// Draw draws the spinner centered in its rectangle.
func (s *Spinner) Draw(screen tcell.Screen) {
	if s.width <= 0 || s.height <= 0 {
		return
	}
	glyph := s.frames[0]
	if s.animating {
		elapsed := time.Since(s.startedAt)
		glyph = s.frames[int(elapsed/spinnerFrameInterval)%len(s.frames)]
	}
	text := glyph
	if s.label != "" {
		text += " " + s.label
	}
	text = TruncateString(text, s.width)
	x := s.x + (s.width-StringWidth(text))/2
	y := s.y + (s.height-1)/2
	PutString(screen, text, x, y, s.style)
}

var (
	_ LoadingIndicator = &Spinner{}
	_ Primitive        = &Spinner{}
)

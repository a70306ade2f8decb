package infinitescroll

import (
	"time"

	"github.com/gdamore/tcell/v3"
)

// ScrollView is a Box-based primitive that scrolls a content primitive of
// arbitrary size in one direction and implements [ScrollableContainer], so a
// [Controller] can drive infinite scrolling on it.
//
// The content primitive is laid out at the content size and clipped to the
// viewport. Mouse wheel, click-dragging the content, and keyboard scrolling
// all count as user scrolling for trigger detection; offsets set through
// SetContentOffset do not.
type ScrollView struct {
	*Box

	direction Direction
	content   Primitive

	contentSize Size
	offset      Point
	inset       Inset
	safeInset   Inset

	animator        *Animator
	offsetAnimation *Animation
	insetAnimation  *Animation

	scrollBar *ScrollBar

	// dragging is true while a user scroll gesture is in progress, including
	// the momentary gesture window around a wheel or keyboard scroll.
	dragging bool
	// captured is true between a mouse press in the view and its release.
	captured      bool
	capturedThumb bool
	lastMouseX    int
	lastMouseY    int

	lastScrollAt time.Time

	offsetObservers map[int]func(Point, Velocity)
	sizeObservers   map[int]func(Size)
	dragObservers   map[int]func()
	nextObserver    int

	indicator LoadingIndicator
}

// NewScrollView returns a new scroll view scrolling in the given direction.
func NewScrollView(direction Direction) *ScrollView {
	return &ScrollView{
		Box:             NewBox(),
		direction:       direction,
		scrollBar:       NewScrollBar(direction),
		offsetObservers: map[int]func(Point, Velocity){},
		sizeObservers:   map[int]func(Size){},
		dragObservers:   map[int]func(){},
	}
}

// SetContent sets the primitive drawn as the scrolled content. The content is
// positioned at the content size; set that with SetContentSize.
func (v *ScrollView) SetContent(content Primitive) *ScrollView {
	v.content = content
	return v
}

// SetContentSize sets the size of the scrollable content and notifies
// observers. The offset is re-clamped to the new bounds.
func (v *ScrollView) SetContentSize(size Size) *ScrollView {
	if v.contentSize == size {
		return v
	}
	v.contentSize = size
	v.offset = v.clampOffset(v.offset)
	for _, observer := range v.sizeObservers {
		observer(size)
	}
	return v
}

// SetAnimator sets the animator used for animated offset and inset changes.
// Without one, every change is applied immediately.
func (v *ScrollView) SetAnimator(animator *Animator) *ScrollView {
	v.animator = animator
	return v
}

// SetSafeInset sets the reserved region permanently covered within the
// viewport.
func (v *ScrollView) SetSafeInset(inset Inset) *ScrollView {
	v.safeInset = inset
	return v
}

// SetScrollBar replaces the composed scroll bar. Pass nil to hide it.
func (v *ScrollView) SetScrollBar(bar *ScrollBar) *ScrollView {
	v.scrollBar = bar
	return v
}

// Direction returns the view's scroll direction.
func (v *ScrollView) Direction() Direction {
	return v.direction
}

// ContentOffset returns the current scroll position.
func (v *ScrollView) ContentOffset() Point {
	return v.offset
}

// ContentSize returns the size of the scrollable content.
func (v *ScrollView) ContentSize() Size {
	return v.contentSize
}

// ViewportSize returns the size of the visible area.
func (v *ScrollView) ViewportSize() Size {
	_, _, width, height := v.GetInnerRect()
	return Size{Width: width, Height: height}
}

// ContentInset returns the view's current inset.
func (v *ScrollView) ContentInset() Inset {
	return v.inset
}

// SafeInset returns the reserved region set with SetSafeInset.
func (v *ScrollView) SafeInset() Inset {
	return v.safeInset
}

// IsDragging returns true while the user is actively scrolling.
func (v *ScrollView) IsDragging() bool {
	return v.dragging
}

// SetContentOffset scrolls to the given position. Offsets are clamped to the
// scrollable range, which includes the current insets.
func (v *ScrollView) SetContentOffset(offset Point, animated bool) {
	offset = v.clampOffset(offset)
	if v.offsetAnimation != nil {
		v.offsetAnimation.Cancel(false)
		v.offsetAnimation = nil
	}
	if !animated || v.animator == nil {
		v.applyOffset(offset, Velocity{})
		return
	}
	from := v.offset
	v.offsetAnimation = v.animator.Animate(
		[]int{from.X, from.Y},
		[]int{offset.X, offset.Y},
		func(values []int) {
			v.applyOffset(Point{X: values[0], Y: values[1]}, Velocity{})
		},
		nil,
	)
}

// SetContentInset replaces the view's inset. An in-flight inset animation is
// completed immediately before the new one starts, so inset deltas applied by
// a controller always add up. The animation does not block ongoing drags.
func (v *ScrollView) SetContentInset(inset Inset, animated bool, completion func()) {
	if v.insetAnimation != nil {
		v.insetAnimation.Cancel(true)
		v.insetAnimation = nil
	}
	if !animated || v.animator == nil {
		v.inset = inset
		v.offset = v.clampOffset(v.offset)
		if completion != nil {
			completion()
		}
		return
	}
	from := v.inset
	v.insetAnimation = v.animator.Animate(
		[]int{from.Top, from.Bottom, from.Left, from.Right},
		[]int{inset.Top, inset.Bottom, inset.Left, inset.Right},
		func(values []int) {
			v.inset = Inset{Top: values[0], Bottom: values[1], Left: values[2], Right: values[3]}
			v.offset = v.clampOffset(v.offset)
		},
		completion,
	)
}

// OnOffsetChanged registers an observer for scroll position changes.
func (v *ScrollView) OnOffsetChanged(observer func(Point, Velocity)) (remove func()) {
	id := v.nextObserver
	v.nextObserver++
	v.offsetObservers[id] = observer
	return func() {
		delete(v.offsetObservers, id)
	}
}

// OnContentSizeChanged registers an observer for content size changes.
func (v *ScrollView) OnContentSizeChanged(observer func(Size)) (remove func()) {
	id := v.nextObserver
	v.nextObserver++
	v.sizeObservers[id] = observer
	return func() {
		delete(v.sizeObservers, id)
	}
}

// OnDragEnded registers an observer invoked when a user scroll settles.
func (v *ScrollView) OnDragEnded(observer func()) (remove func()) {
	id := v.nextObserver
	v.nextObserver++
	v.dragObservers[id] = observer
	return func() {
		delete(v.dragObservers, id)
	}
}

// AttachIndicator adds the indicator to the view. Indicators that also
// implement [Primitive] are drawn at their frame in content coordinates.
func (v *ScrollView) AttachIndicator(indicator LoadingIndicator) {
	v.indicator = indicator
}

// DetachIndicator removes a previously attached indicator.
func (v *ScrollView) DetachIndicator(indicator LoadingIndicator) {
	if v.indicator == indicator {
		v.indicator = nil
	}
}

// ScrollBy scrolls the content by the given number of cells along the scroll
// axis as a user gesture: positive values scroll toward the trailing edge.
func (v *ScrollView) ScrollBy(cells int) {
	v.userScroll(cells)
}

// clampOffset keeps an offset within the inset-extended scrollable range.
func (v *ScrollView) clampOffset(offset Point) Point {
	viewport := v.ViewportSize()
	inset := v.inset.Add(v.safeInset)

	clamp := func(value, min, max int) int {
		if max < min {
			max = min
		}
		if value < min {
			return min
		}
		if value > max {
			return max
		}
		return value
	}
	offset.X = clamp(offset.X, -inset.Left, v.contentSize.Width-viewport.Width+inset.Right)
	offset.Y = clamp(offset.Y, -inset.Top, v.contentSize.Height-viewport.Height+inset.Bottom)
	return offset
}

func (v *ScrollView) applyOffset(offset Point, velocity Velocity) {
	offset = v.clampOffset(offset)
	if offset == v.offset {
		return
	}
	v.offset = offset
	for _, observer := range v.offsetObservers {
		observer(offset, velocity)
	}
}

// userScroll applies a scroll of delta cells along the scroll axis as a
// momentary user gesture: the drag flag is set around the offset change and a
// drag-end notification follows immediately.
func (v *ScrollView) userScroll(delta int) {
	if delta == 0 {
		return
	}
	if v.offsetAnimation != nil {
		// The user takes over; never fight them.
		v.offsetAnimation.Cancel(false)
		v.offsetAnimation = nil
	}

	wasDragging := v.dragging
	v.dragging = true
	along := v.direction.offset(v.offset) + delta
	v.applyOffset(v.direction.withOffset(v.offset, along), v.panVelocity(delta))
	if !wasDragging {
		v.dragging = false
		v.notifyDragEnded()
	}
}

// panVelocity derives the pan velocity of the content from an offset delta:
// the content travels opposite to the offset, so scrolling toward the
// trailing edge yields a negative component.
func (v *ScrollView) panVelocity(delta int) Velocity {
	now := time.Now()
	dt := now.Sub(v.lastScrollAt).Seconds()
	v.lastScrollAt = now
	if dt <= 0 || dt > 1 {
		dt = 1
	}
	speed := -float64(delta) / dt
	if v.direction == Horizontal {
		return Velocity{X: speed}
	}
	return Velocity{Y: speed}
}

func (v *ScrollView) notifyDragEnded() {
	for _, observer := range v.dragObservers {
		observer()
	}
}

// InputHandler scrolls on arrow, page, home, and end keys.
func (v *ScrollView) InputHandler(event *tcell.EventKey) bool {
	viewport := v.direction.length(v.ViewportSize())
	if viewport < 1 {
		viewport = 1
	}

	switch event.Key() {
	case tcell.KeyDown, tcell.KeyRight:
		v.userScroll(1)
	case tcell.KeyUp, tcell.KeyLeft:
		v.userScroll(-1)
	case tcell.KeyPgDn:
		v.userScroll(viewport)
	case tcell.KeyPgUp:
		v.userScroll(-viewport)
	case tcell.KeyHome:
		inset := v.inset.Add(v.safeInset)
		v.SetContentOffset(v.direction.withOffset(v.offset, -v.direction.leading(inset)), true)
	case tcell.KeyEnd:
		inset := v.inset.Add(v.safeInset)
		end := v.direction.length(v.contentSize) - viewport + v.direction.trailing(inset)
		v.userScroll(end - v.direction.offset(v.offset))
	default:
		return false
	}
	return true
}

// MouseHandler scrolls on wheel events and click-drags of the content.
func (v *ScrollView) MouseHandler(action MouseAction, event *tcell.EventMouse) bool {
	x, y := event.Position()

	switch action {
	case MouseScrollDown:
		if !v.InRect(x, y) {
			return false
		}
		if v.direction == Vertical {
			v.userScroll(3)
			return true
		}
	case MouseScrollUp:
		if !v.InRect(x, y) {
			return false
		}
		if v.direction == Vertical {
			v.userScroll(-3)
			return true
		}
	case MouseScrollRight:
		if v.InRect(x, y) && v.direction == Horizontal {
			v.userScroll(3)
			return true
		}
	case MouseScrollLeft:
		if v.InRect(x, y) && v.direction == Horizontal {
			v.userScroll(-3)
			return true
		}
	case MouseLeftDown:
		if !v.InRect(x, y) {
			return false
		}
		v.captured = true
		v.capturedThumb = v.scrollBar != nil && v.scrollBar.InRect(x, y)
		v.dragging = true
		v.lastMouseX, v.lastMouseY = x, y
		if v.offsetAnimation != nil {
			v.offsetAnimation.Cancel(false)
			v.offsetAnimation = nil
		}
		return true
	case MouseMove:
		if !v.captured {
			return false
		}
		deltaX, deltaY := x-v.lastMouseX, y-v.lastMouseY
		v.lastMouseX, v.lastMouseY = x, y
		if v.capturedThumb {
			v.dragThumb(deltaX, deltaY)
			return true
		}
		// The content follows the pointer.
		delta := -deltaY
		if v.direction == Horizontal {
			delta = -deltaX
		}
		if delta != 0 {
			along := v.direction.offset(v.offset) + delta
			v.applyOffset(v.direction.withOffset(v.offset, along), v.panVelocity(delta))
		}
		return true
	case MouseLeftUp:
		if !v.captured {
			return false
		}
		v.captured = false
		v.capturedThumb = false
		v.dragging = false
		v.notifyDragEnded()
		return true
	}

	return false
}

// dragThumb converts a pointer delta on the scroll bar into an offset change.
func (v *ScrollView) dragThumb(deltaX, deltaY int) {
	delta := deltaY
	if v.direction == Horizontal {
		delta = deltaX
	}
	if delta == 0 {
		return
	}
	viewport := v.direction.length(v.ViewportSize())
	track := viewport
	if track < 1 {
		track = 1
	}
	content := v.direction.length(v.contentSize)
	step := max(content/track, 1)
	along := v.direction.offset(v.offset) + delta*step
	v.applyOffset(v.direction.withOffset(v.offset, along), v.panVelocity(delta*step))
}

// Draw draws this primitive onto the screen.
func (v *ScrollView) Draw(screen tcell.Screen) {
	v.DrawForSubclass(screen, v)

	x, y, width, height := v.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	clipped := newClippedScreen(screen, x, y, width, height)
	originX := x - v.offset.X
	originY := y - v.offset.Y

	if v.content != nil {
		v.content.SetRect(originX, originY, v.contentSize.Width, v.contentSize.Height)
		v.content.Draw(clipped)
	}

	v.drawIndicator(clipped, originX, originY)
	v.drawScrollBar(screen, x, y, width, height)
}

// drawIndicator draws an attached indicator at its content-space frame.
func (v *ScrollView) drawIndicator(screen tcell.Screen, originX, originY int) {
	indicator, ok := v.indicator.(Primitive)
	if !ok {
		return
	}
	frame := Rect{}
	if framed, ok := v.indicator.(interface{ Frame() Rect }); ok {
		frame = framed.Frame()
	}
	indicator.SetRect(originX+frame.X, originY+frame.Y, frame.Width, frame.Height)
	indicator.Draw(screen)
}

func (v *ScrollView) drawScrollBar(screen tcell.Screen, x, y, width, height int) {
	if v.scrollBar == nil {
		return
	}
	if v.direction == Horizontal {
		v.scrollBar.SetRect(x, y+height-1, width, 1)
	} else {
		v.scrollBar.SetRect(x+width-1, y, 1, height)
	}
	inset := v.inset.Add(v.safeInset)
	v.scrollBar.
		SetLengths(ScrollLengths{
			ContentLen:  v.direction.length(v.contentSize) + v.direction.trailing(inset),
			ViewportLen: v.direction.length(v.ViewportSize()),
		}).
		SetOffset(v.direction.offset(v.offset) + v.direction.leading(inset))
	v.scrollBar.Draw(screen)
}

var (
	_ Primitive           = &ScrollView{}
	_ ScrollableContainer = &ScrollView{}
)

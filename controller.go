package infinitescroll

import "time"

const (
	// Window between the trigger condition being met and the begin sequence
	// running, coalescing bursts of offset changes from one gesture.
	triggerDebounce = 100 * time.Millisecond

	// Delay between the indicator becoming visible and the host's begin
	// callback.
	beginDelay = 100 * time.Millisecond
)

type controllerState int

const (
	stateIdle controllerState = iota
	stateTriggering
	stateLoading
)

func (s controllerState) String() string {
	switch s {
	case stateTriggering:
		return "triggering"
	case stateLoading:
		return "loading"
	default:
		return "idle"
	}
}

// Controller augments one scrollable container with infinite scrolling: it
// watches the container's scroll position, and when the user drags near the
// trailing edge of content it reserves room for a loading indicator, invokes
// the host's begin callback, and reconciles insets and offset once the host
// signals completion.
//
// A controller never outlives its container's interest in it; call
// [Controller.Detach] when the container goes away, after which every
// operation is a no-op.
//
// The controller runs entirely on the host's event loop. It never blocks;
// inset and offset animations continue via completion callbacks. There is no
// timeout on a load: if the host never invokes the completion token the
// controller stays in its loading state, which is the host's obligation to
// avoid.
type Controller struct {
	container ScrollableContainer
	direction Direction

	state controllerState
	// seq increments on every state transition so scheduled callbacks and
	// animation completions from a superseded sequence can bail out.
	seq uint64
	// finishing guards the teardown that runs between the completion token
	// being invoked and the state returning to idle.
	finishing bool

	triggerOffset int
	margins       Margins

	indicator         LoadingIndicator
	indicatorAttached bool
	revealed          bool

	// insetAdjustment is the inset delta currently reserved for the
	// indicator on the trailing edge. Zero when idle.
	insetAdjustment int

	// scrollToStartOnFinish records whether the container had no content
	// along the scroll axis when the load began.
	scrollToStartOnFinish bool

	shouldBegin func() bool
	began       func(container ScrollableContainer, done func())
	finished    func(container ScrollableContainer)

	schedule func(delay time.Duration, fn func())

	removeObservers []func()
}

// NewController returns a controller bound to the given container. The
// controller observes the container's geometry and gesture state immediately.
// The direction is fixed for the controller's lifetime.
//
// The default indicator is a [Spinner]; replace it with
// [Controller.SetIndicator]. Deferred work is scheduled with time.AfterFunc
// by default; hosts running an event loop should route it through the loop
// with [Controller.SetScheduleFunc] (for [App], pass App.After).
func NewController(container ScrollableContainer, direction Direction) *Controller {
	c := &Controller{
		container: container,
		direction: direction,
		indicator: NewSpinner(),
		schedule: func(delay time.Duration, fn func()) {
			time.AfterFunc(delay, fn)
		},
	}
	c.removeObservers = append(c.removeObservers,
		container.OnOffsetChanged(c.offsetChanged),
		container.OnContentSizeChanged(c.contentSizeChanged),
		container.OnDragEnded(c.dragEnded),
	)
	return c
}

// Direction returns the scroll direction the controller was constructed with.
func (c *Controller) Direction() Direction {
	return c.direction
}

// SetTriggerOffset sets the distance from the trailing edge, in cells, at
// which the edge counts as reached. The default is 0.
func (c *Controller) SetTriggerOffset(offset int) *Controller {
	c.triggerOffset = offset
	return c
}

// TriggerOffset returns the current trigger offset.
func (c *Controller) TriggerOffset() int {
	return c.triggerOffset
}

// SetIndicatorMargins sets the padding before and after the indicator along
// the scroll axis. The margins are part of the reserved footprint.
func (c *Controller) SetIndicatorMargins(leading, trailing int) *Controller {
	c.margins = Margins{Leading: leading, Trailing: trailing}
	return c
}

// IndicatorMargins returns the current indicator margins.
func (c *Controller) IndicatorMargins() Margins {
	return c.margins
}

// SetIndicator replaces the loading indicator. The old indicator is detached
// from the container immediately. When a load is in progress the new
// indicator is attached, positioned, and started; the loading state and the
// inset already reserved are unchanged, so a footprint difference is only
// picked up by the next load.
func (c *Controller) SetIndicator(indicator LoadingIndicator) *Controller {
	if indicator == c.indicator {
		return c
	}
	if old := c.indicator; old != nil && c.indicatorAttached {
		if c.container != nil {
			c.container.DetachIndicator(old)
		}
		old.StopAnimating()
	}
	c.indicatorAttached = false
	c.indicator = indicator
	if c.state == stateLoading && indicator != nil && c.container != nil {
		indicator.SetFrame(c.indicatorFrame())
		c.container.AttachIndicator(indicator)
		c.indicatorAttached = true
		indicator.StartAnimating()
	}
	return c
}

// Indicator returns the current loading indicator.
func (c *Controller) Indicator() LoadingIndicator {
	return c.indicator
}

// SetShouldBeginFunc sets an optional predicate consulted before a load
// begins. Returning false aborts the begin sequence with no visual change.
func (c *Controller) SetShouldBeginFunc(handler func() bool) *Controller {
	c.shouldBegin = handler
	return c
}

// SetBeginFunc sets the handler invoked when a load begins. The handler
// receives a one-shot completion token; invoking the token finishes the load
// and invoking it again is a no-op. The token may be called from any
// goroutine as long as the call is delivered on the controller's event loop
// (e.g. via [App.QueueUpdate]).
func (c *Controller) SetBeginFunc(handler func(container ScrollableContainer, done func())) *Controller {
	c.began = handler
	return c
}

// SetFinishFunc sets the handler invoked after a finished load has been fully
// reconciled.
func (c *Controller) SetFinishFunc(handler func(container ScrollableContainer)) *Controller {
	c.finished = handler
	return c
}

// SetScheduleFunc replaces the timer used for the trigger debounce and the
// begin delay. The function must invoke fn on the controller's event loop
// after roughly the given delay.
func (c *Controller) SetScheduleFunc(schedule func(delay time.Duration, fn func())) *Controller {
	if schedule != nil {
		c.schedule = schedule
	}
	return c
}

// IsLoading returns true from a successful trigger until the load has
// finished. While true, no new trigger fires.
func (c *Controller) IsLoading() bool {
	return c.state == stateLoading
}

// IsAnimating returns true while the loading indicator is animating.
func (c *Controller) IsAnimating() bool {
	return c.indicator != nil && c.indicator.IsAnimating()
}

// Begin starts a load as if the user had scrolled past the trigger edge,
// bypassing gesture detection (e.g. for a "load more" button). The begin
// predicate still applies. With forceScroll, the indicator row is revealed
// regardless of its current visibility. Begin does nothing while a load is
// pending or in progress.
func (c *Controller) Begin(forceScroll bool) {
	if c.container == nil || c.state != stateIdle {
		return
	}
	c.beginIfNeeded(forceScroll)
}

// Finish completes the current load: the reserved inset is released, the
// scroll position is reconciled, and the finish handler fires. Calling
// Finish while no load is in progress is a no-op, which makes the completion
// token handed to the begin handler safe against double invocation.
func (c *Controller) Finish() {
	if c.container == nil || c.state != stateLoading || c.finishing {
		return
	}
	c.finishing = true
	container := c.container

	// Dynamic-height containers re-run their measurement pass now so the
	// reconciliation below sees an accurate content size.
	if r, ok := container.(Remeasurer); ok {
		r.Remeasure()
	}

	inset := c.direction.addTrailing(container.ContentInset(), -c.insetAdjustment)
	seq := c.seq
	container.SetContentInset(inset, true, func() {
		if c.seq != seq || c.container == nil {
			return
		}
		c.insetAdjustment = 0
		if c.scrollToStartOnFinish {
			c.scrollToStart()
		} else if c.revealed {
			c.scrollToIndicatorRow(false, false)
		}
		c.completeFinish()
	})
}

// Detach disconnects the controller from its container: observers are
// removed, the indicator is taken out of the container's view tree, and every
// subsequent operation becomes a no-op. Detach is idempotent. Containers own
// calling it on teardown so no late callback touches a dead container.
func (c *Controller) Detach() {
	for _, remove := range c.removeObservers {
		remove()
	}
	c.removeObservers = nil
	if c.indicatorAttached {
		if c.container != nil {
			c.container.DetachIndicator(c.indicator)
		}
		c.indicatorAttached = false
	}
	if c.indicator != nil {
		c.indicator.StopAnimating()
	}
	c.container = nil
	c.finishing = false
	c.insetAdjustment = 0
	c.revealed = false
	c.transition(stateIdle)
}

// offsetChanged evaluates the trigger condition. Only drag-active changes are
// considered so the controller's own reveal and hide animations never
// re-trigger a load.
func (c *Controller) offsetChanged(offset Point, velocity Velocity) {
	container := c.container
	if container == nil || c.state != stateIdle {
		return
	}
	if !container.IsDragging() {
		return
	}
	if c.direction.velocity(velocity) > 0 {
		// Moving away from the trigger edge.
		return
	}
	if c.direction.offset(offset) < c.actionablePoint() {
		return
	}
	logger.Debug("trigger edge reached",
		"direction", c.direction,
		"offset", c.direction.offset(offset),
		"actionable", c.actionablePoint())
	c.transition(stateTriggering)
	seq := c.seq
	c.schedule(triggerDebounce, func() {
		if c.seq != seq || c.container == nil {
			return
		}
		c.beginIfNeeded(false)
	})
}

// contentSizeChanged keeps the indicator at the current trailing edge, which
// can move while a load is in progress.
func (c *Controller) contentSizeChanged(Size) {
	if c.state != stateLoading || c.indicator == nil || c.container == nil {
		return
	}
	c.indicator.SetFrame(c.indicatorFrame())
}

// dragEnded retries the reveal that begin skipped while the user was
// dragging.
func (c *Controller) dragEnded() {
	if c.state != stateLoading || c.finishing || c.revealed {
		return
	}
	c.scrollToIndicatorRow(true, false)
}

func (c *Controller) beginIfNeeded(forceScroll bool) {
	if c.container == nil || c.state == stateLoading {
		return
	}
	if c.shouldBegin != nil && !c.shouldBegin() {
		logger.Debug("begin declined by host")
		c.transition(stateIdle)
		return
	}
	c.begin(forceScroll)
}

func (c *Controller) begin(forceScroll bool) {
	container := c.container
	c.scrollToStartOnFinish = c.direction.length(container.ContentSize()) <= 0
	c.revealed = false
	c.transition(stateLoading)

	if indicator := c.indicator; indicator != nil {
		indicator.SetFrame(c.indicatorFrame())
		if !c.indicatorAttached {
			container.AttachIndicator(indicator)
			c.indicatorAttached = true
		}
		indicator.StartAnimating()
	}

	// Reserve room for the indicator before it is shown.
	c.insetAdjustment = c.indicatorFootprint()
	inset := c.direction.addTrailing(container.ContentInset(), c.insetAdjustment)
	seq := c.seq
	container.SetContentInset(inset, true, func() {
		if c.seq != seq || c.container == nil {
			return
		}
		c.scrollToIndicatorRow(true, forceScroll)
		c.schedule(beginDelay, func() {
			if c.seq != seq || c.container == nil {
				return
			}
			if c.began != nil {
				c.began(c.container, c.Finish)
			}
		})
	})
}

func (c *Controller) completeFinish() {
	if c.indicator != nil {
		c.indicator.StopAnimating()
	}
	if c.indicatorAttached {
		c.container.DetachIndicator(c.indicator)
		c.indicatorAttached = false
	}
	container := c.container
	c.revealed = false
	c.scrollToStartOnFinish = false
	c.finishing = false
	c.transition(stateIdle)
	if c.finished != nil {
		c.finished(container)
	}
}

// actionablePoint converts the trigger threshold into an absolute offset
// coordinate along the scroll axis. The controller's own reserved inset is
// excluded from the trailing inset so reserving room for the indicator never
// counts as more room to scroll.
func (c *Controller) actionablePoint() int {
	container := c.container
	inset := container.ContentInset().Add(container.SafeInset())
	trailing := c.direction.trailing(inset) - c.insetAdjustment
	return c.direction.length(container.ContentSize()) -
		c.direction.length(container.ViewportSize()) +
		trailing - c.triggerOffset
}

// indicatorFootprint returns the length the indicator row occupies along the
// scroll axis, margins included.
func (c *Controller) indicatorFootprint() int {
	if c.indicator == nil {
		return 0
	}
	return c.margins.Leading + c.direction.length(c.indicator.Size()) + c.margins.Trailing
}

// indicatorRowFrame returns the rectangle of the indicator row immediately
// after the current content's trailing edge, spanning the cross axis fully.
// It is recomputed from the live content size so the row tracks content that
// grows while loading.
func (c *Controller) indicatorRowFrame() Rect {
	container := c.container
	cross := c.direction.crossLength(container.ViewportSize())
	return c.direction.rowFrame(container.ContentSize(), cross, c.indicatorFootprint())
}

// indicatorFrame returns the indicator row minus the margins along the scroll
// axis.
func (c *Controller) indicatorFrame() Rect {
	frame := c.indicatorRowFrame()
	if c.direction == Horizontal {
		frame.X += c.margins.Leading
		frame.Width -= c.margins.Leading + c.margins.Trailing
	} else {
		frame.Y += c.margins.Leading
		frame.Height -= c.margins.Leading + c.margins.Trailing
	}
	return frame
}

// scrollToIndicatorRow aligns the viewport with the indicator row: reveal
// scrolls until the row's far edge meets the viewport edge, hide scrolls it
// just out of view. It does nothing while the user is dragging or when no
// load is in progress, and unless forced it only acts when the row already
// intersects the visible region.
//
// Row-granular containers reveal through their own last-row primitive
// instead, since they can reflow row heights between this computation and the
// animation.
func (c *Controller) scrollToIndicatorRow(reveal, force bool) {
	container := c.container
	if container == nil || c.state != stateLoading {
		return
	}
	if container.IsDragging() {
		// Never fight an active gesture; dragEnded retries the reveal.
		return
	}
	if reveal {
		if rows, ok := container.(RowScroller); ok {
			c.revealed = true
			rows.ScrollToLastRow(true)
			return
		}
	}

	inset := container.ContentInset().Add(container.SafeInset())
	baseTrailing := c.direction.trailing(inset) - c.insetAdjustment
	hidden := c.direction.length(container.ContentSize()) -
		c.direction.length(container.ViewportSize()) + baseTrailing
	shown := hidden + c.indicatorFootprint()

	along := c.direction.offset(container.ContentOffset())
	if !force && (along <= hidden || along >= shown) {
		return
	}
	target := hidden
	if reveal {
		target = shown
		c.revealed = true
	}
	container.SetContentOffset(c.direction.withOffset(container.ContentOffset(), target), true)
}

// scrollToStart scrolls the container to its leading edge, exposing the full
// leading inset.
func (c *Controller) scrollToStart() {
	container := c.container
	inset := container.ContentInset().Add(container.SafeInset())
	offset := c.direction.withOffset(container.ContentOffset(), -c.direction.leading(inset))
	container.SetContentOffset(offset, true)
}

func (c *Controller) transition(state controllerState) {
	if c.state != state {
		logger.Debug("infinite scroll state", "from", c.state, "to", state)
	}
	c.state = state
	c.seq++
}

package infinitescroll

// ScrollableContainer is the capability set a Controller needs from its host
// container. Any scrollable widget can adopt infinite scrolling by satisfying
// this interface; ScrollView and ListView are the tcell-backed
// implementations shipped with this package.
//
// Offsets follow the inset-aware convention: the leading coordinate of the
// content sits at offset zero, so the offset equals the negative leading
// inset when the container is scrolled all the way to the start.
type ScrollableContainer interface {
	// ContentOffset returns the current scroll position.
	ContentOffset() Point
	// ContentSize returns the size of the scrollable content.
	ContentSize() Size
	// ViewportSize returns the size of the visible area.
	ViewportSize() Size
	// ContentInset returns the container's current inset, including any
	// adjustment a controller has applied.
	ContentInset() Inset
	// SafeInset returns the reserved region that is part of the viewport but
	// permanently covered (e.g. by overlaid chrome). Containers without such
	// a region return the zero Inset.
	SafeInset() Inset
	// IsDragging returns true while the user is actively scrolling.
	IsDragging() bool

	// SetContentOffset scrolls to the given position, optionally animated.
	SetContentOffset(offset Point, animated bool)
	// SetContentInset replaces the container's inset. When animated, the
	// change is eased over a fixed short duration and must not block an
	// ongoing drag. The completion callback, if non-nil, runs exactly once
	// after the new inset is fully applied.
	SetContentInset(inset Inset, animated bool, completion func())

	// OnOffsetChanged registers an observer for scroll position changes. The
	// observer receives the new offset and the pan velocity of the content.
	// The returned func removes the observer.
	OnOffsetChanged(func(offset Point, velocity Velocity)) (remove func())
	// OnContentSizeChanged registers an observer for content size changes.
	OnContentSizeChanged(func(size Size)) (remove func())
	// OnDragEnded registers an observer invoked when a user scroll gesture
	// settles.
	OnDragEnded(func()) (remove func())

	// AttachIndicator adds the indicator to the container's view tree. The
	// container draws it at the frame set by the controller, in content
	// coordinates.
	AttachIndicator(indicator LoadingIndicator)
	// DetachIndicator removes a previously attached indicator. Detaching an
	// indicator that is not attached is a no-op.
	DetachIndicator(indicator LoadingIndicator)
}

// LoadingIndicator is a visual with a start/stop animation lifecycle and a
// size. The default implementation is Spinner.
type LoadingIndicator interface {
	// StartAnimating begins the indicator's animation.
	StartAnimating()
	// StopAnimating halts the indicator's animation.
	StopAnimating()
	// IsAnimating returns true while the indicator is animating.
	IsAnimating() bool
	// Size returns the indicator's bounding size.
	Size() Size
	// SetFrame positions the indicator, in content coordinates.
	SetFrame(frame Rect)
}

// RowScroller is an optional container capability for row-granular widgets.
// When present, the controller reveals the indicator row by delegating to
// ScrollToLastRow instead of raw offset math, since such containers can
// reflow row heights between the computation and the animation.
type RowScroller interface {
	ScrollToLastRow(animated bool)
}

// Remeasurer is an optional container capability. When present, the
// controller requests a measurement pass right before releasing the
// indicator's reserved inset, so dynamic-height containers report an accurate
// content size for the final reconciliation.
type Remeasurer interface {
	Remeasure()
}

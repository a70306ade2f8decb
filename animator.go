package infinitescroll

import (
	"math"
	"time"
)

const (
	// animationDuration is the fixed duration of offset and inset animations.
	animationDuration = 120 * time.Millisecond
	// animationInterval is the time between animation steps.
	animationInterval = 30 * time.Millisecond
)

// Animator runs fixed-short-duration stepped animations for scroll offsets
// and insets. Steps are delivered through a post function so they run on the
// host's event loop; animations never block input, which keeps an ongoing
// drag interactive while an inset animates underneath it.
type Animator struct {
	post     func(fn func())
	schedule func(delay time.Duration, fn func())
	now      func() time.Time
}

// NewAnimator returns an animator delivering steps through post. For [App],
// pass App.Post so steps are serialized with input events.
func NewAnimator(post func(fn func())) *Animator {
	return &Animator{
		post: post,
		schedule: func(delay time.Duration, fn func()) {
			time.AfterFunc(delay, fn)
		},
		now: time.Now,
	}
}

// Animation is one in-flight interpolation. It is finished or cancelled at
// most once.
type Animation struct {
	animator   *Animator
	from, to   []int
	apply      func(values []int)
	completion func()
	startedAt  time.Time
	done       bool
}

// Animate interpolates each value in from toward the corresponding value in
// to over the fixed animation duration, invoking apply with the intermediate
// values on every step and completion exactly once at the end (unless the
// animation is cancelled first).
func (a *Animator) Animate(from, to []int, apply func(values []int), completion func()) *Animation {
	animation := &Animation{
		animator:   a,
		from:       append([]int(nil), from...),
		to:         append([]int(nil), to...),
		apply:      apply,
		completion: completion,
		startedAt:  a.now(),
	}
	a.step(animation)
	return animation
}

// Cancel stops the animation. With jumpToEnd, the final values are applied
// and the completion callback runs; otherwise the animation halts where it is
// and the completion callback never fires. Cancelling a finished animation is
// a no-op.
func (an *Animation) Cancel(jumpToEnd bool) {
	if an.done {
		return
	}
	an.done = true
	if jumpToEnd {
		an.apply(an.to)
		if an.completion != nil {
			an.completion()
		}
	}
}

// Done returns true once the animation has finished or was cancelled.
func (an *Animation) Done() bool {
	return an.done
}

func (a *Animator) step(animation *Animation) {
	if animation.done {
		return
	}
	elapsed := a.now().Sub(animation.startedAt)
	if elapsed >= animationDuration {
		animation.done = true
		animation.apply(animation.to)
		if animation.completion != nil {
			animation.completion()
		}
		return
	}

	progress := easeOut(float64(elapsed) / float64(animationDuration))
	values := make([]int, len(animation.from))
	for i := range values {
		delta := animation.to[i] - animation.from[i]
		values[i] = animation.from[i] + int(math.Round(float64(delta)*progress))
	}
	animation.apply(values)

	a.schedule(animationInterval, func() {
		a.post(func() {
			a.step(animation)
		})
	})
}

// easeOut decelerates toward the end of the animation.
func easeOut(t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return 1 - (1-t)*(1-t)
}

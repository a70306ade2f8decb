package infinitescroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// runNext pops and runs the oldest scheduled callback.
func (s *fakeScheduler) runNext() {
	fn := s.queue[0]
	s.queue = s.queue[1:]
	fn()
}

// newTestAnimator returns an animator with synchronous posting, a manual
// scheduler, and a manual clock.
func newTestAnimator() (*Animator, *fakeScheduler, *fakeClock) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	scheduler := &fakeScheduler{}
	animator := NewAnimator(func(fn func()) { fn() })
	animator.schedule = scheduler.schedule
	animator.now = clock.now
	return animator, scheduler, clock
}

func TestAnimatorInterpolatesAndCompletes(t *testing.T) {
	animator, scheduler, clock := newTestAnimator()

	var applied []int
	completions := 0
	animation := animator.Animate([]int{0}, []int{10},
		func(values []int) { applied = append(applied, values[0]) },
		func() { completions++ })
	require.False(t, animation.Done())

	for !animation.Done() {
		require.NotEmpty(t, scheduler.queue)
		clock.advance(animationInterval)
		scheduler.runNext()
	}

	assert.Equal(t, []int{0, 4, 8, 9, 10}, applied)
	assert.Equal(t, 1, completions)
	assert.Empty(t, scheduler.queue)
}

func TestAnimatorNegativeDelta(t *testing.T) {
	animator, scheduler, clock := newTestAnimator()

	var applied []int
	animation := animator.Animate([]int{10}, []int{0},
		func(values []int) { applied = append(applied, values[0]) },
		nil)
	for !animation.Done() {
		clock.advance(animationInterval)
		scheduler.runNext()
	}

	assert.Equal(t, []int{10, 6, 2, 1, 0}, applied)
}

func TestAnimationCancelHaltsInPlace(t *testing.T) {
	animator, scheduler, clock := newTestAnimator()

	var applied []int
	completions := 0
	animation := animator.Animate([]int{0}, []int{10},
		func(values []int) { applied = append(applied, values[0]) },
		func() { completions++ })

	clock.advance(animationInterval)
	scheduler.runNext()
	require.Equal(t, []int{0, 4}, applied)

	animation.Cancel(false)
	require.True(t, animation.Done())

	// The already-scheduled step is a no-op.
	clock.advance(animationInterval)
	scheduler.runNext()
	assert.Equal(t, []int{0, 4}, applied)
	assert.Zero(t, completions)
	assert.Empty(t, scheduler.queue)
}

func TestAnimationCancelJumpToEnd(t *testing.T) {
	animator, _, _ := newTestAnimator()

	var applied []int
	completions := 0
	animation := animator.Animate([]int{0}, []int{10},
		func(values []int) { applied = append(applied, values[0]) },
		func() { completions++ })

	animation.Cancel(true)
	require.True(t, animation.Done())
	assert.Equal(t, 10, applied[len(applied)-1])
	assert.Equal(t, 1, completions)

	// Cancelling again does nothing.
	animation.Cancel(true)
	assert.Equal(t, 1, completions)
}

func TestEaseOut(t *testing.T) {
	assert.Equal(t, 0.0, easeOut(0))
	assert.Equal(t, 1.0, easeOut(1))
	assert.Equal(t, 0.0, easeOut(-2))
	assert.Equal(t, 1.0, easeOut(3))

	// Monotonic, and front-loaded: halfway in time is past halfway in value.
	assert.Greater(t, easeOut(0.5), 0.5)
	prev := 0.0
	for i := 1; i <= 10; i++ {
		v := easeOut(float64(i) / 10)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

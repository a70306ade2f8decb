package infinitescroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringWidth(t *testing.T) {
	assert.Equal(t, 0, StringWidth(""))
	assert.Equal(t, 5, StringWidth("hello"))
	assert.Equal(t, 6, StringWidth("日本語"))
	// A combining accent stays within its cluster.
	assert.Equal(t, 1, StringWidth("é"))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "", TruncateString("hello", 0))
	assert.Equal(t, "", TruncateString("hello", -1))
	assert.Equal(t, "hello", TruncateString("hello", 5))
	assert.Equal(t, "hel", TruncateString("hello", 3))
	// Wide characters are never split in half.
	assert.Equal(t, "日本", TruncateString("日本語", 5))
	assert.Equal(t, "日本語", TruncateString("日本語", 6))
}

func TestSpinnerSize(t *testing.T) {
	spinner := NewSpinner()
	assert.Equal(t, Size{Width: 1, Height: 1}, spinner.Size())

	spinner.SetLabel("Loading")
	assert.Equal(t, Size{Width: 9, Height: 1}, spinner.Size())
}

func TestSpinnerAnimationState(t *testing.T) {
	spinner := NewSpinner()
	assert.False(t, spinner.IsAnimating())

	spinner.StartAnimating()
	assert.True(t, spinner.IsAnimating())
	started := spinner.startedAt

	// Starting again does not restart the cycle.
	spinner.StartAnimating()
	assert.Equal(t, started, spinner.startedAt)

	spinner.StopAnimating()
	assert.False(t, spinner.IsAnimating())
}

func TestSpinnerFrame(t *testing.T) {
	spinner := NewSpinner()
	frame := Rect{X: 0, Y: 200, Width: 80, Height: 1}
	spinner.SetFrame(frame)
	assert.Equal(t, frame, spinner.Frame())
}

func TestSpinnerSetFramesIgnoresEmpty(t *testing.T) {
	spinner := NewSpinner().SetFrames(nil)
	assert.Equal(t, spinnerFrames, spinner.frames)

	spinner.SetFrames([]string{"-", "\\", "|", "/"})
	assert.Len(t, spinner.frames, 4)
}

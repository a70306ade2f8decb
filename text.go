package infinitescroll

import (
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// StringWidth returns the number of cells needed to print the given string.
func StringWidth(text string) (width int) {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		width += max(uniseg.StringWidth(gr.Str()), 1)
	}
	return width
}

// TruncateString cuts text on a grapheme cluster boundary so it fits within
// maxWidth cells.
func TruncateString(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	width := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		width += max(uniseg.StringWidth(gr.Str()), 1)
		if width > maxWidth {
			_, to := gr.Positions()
			return text[:to-len(gr.Str())]
		}
	}
	return text
}

// PutString prints text onto the screen at the given position, one grapheme
// cluster per cell step, and returns the width printed.
func PutString(screen tcell.Screen, text string, x, y int, style tcell.Style) int {
	printed := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Str()
		width := max(uniseg.StringWidth(cluster), 1)
		screen.Put(x+printed, y, cluster, style)
		printed += width
	}
	return printed
}

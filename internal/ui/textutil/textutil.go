// Package textutil provides unicode-aware text utilities for TUI rendering.
// Consent purposes, patient names, and record descriptions are free text and
// can contain wide characters, so truncation works in visual columns.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the visual width of a string, accounting for unicode
// characters. This is the number of terminal columns the string will occupy.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates a string to fit within maxWidth visual columns.
// If truncation is needed, it appends the unicode ellipsis character (…).
// The result will be at most maxWidth visual columns wide.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if VisualWidth(s) <= maxWidth {
		return s
	}

	// The ellipsis takes 1 column.
	availableWidth := maxWidth - VisualWidth(TruncateEllipsis)
	if availableWidth < 0 {
		return TruncateEllipsis
	}

	runes := []rune(s)
	result := make([]rune, 0, len(runes))
	currentWidth := 0
	for _, r := range runes {
		w := runewidth.RuneWidth(r)
		if currentWidth+w > availableWidth {
			break
		}
		result = append(result, r)
		currentWidth += w
	}
	return string(result) + TruncateEllipsis
}

// PadRightVisual pads a string with spaces to reach targetWidth visual
// columns. If the string is already wider than targetWidth, it's truncated.
func PadRightVisual(s string, targetWidth int) string {
	currentWidth := VisualWidth(s)
	if currentWidth >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + runewidth.FillRight("", targetWidth-currentWidth)
}

package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayAt composites overlay on top of base with its top left corner at
// column x, row y. Rows outside base or beyond height are dropped.
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitLines(base)
	overlayLines := splitLines(overlay)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		overlayLine := padRight(line, overlayWidth)
		right := ansi.TruncateLeft(target, x+overlayWidth, "")
		baseLines[row] = left + overlayLine + right
	}
	return strings.Join(baseLines, "\n")
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

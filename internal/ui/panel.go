package ui

import (
	"fmt"
	"strings"
)

// ProgressBar renders count/total as a bar of width cells plus a percentage.
func (t Theme) ProgressBar(count, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := count * width / total
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat(t.BarFilled, filled) + strings.Repeat(t.BarEmpty, width-filled)
	pct := count * 100 / total
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Frame draws lines inside the theme panel border.
func (t Theme) Frame(lines []string) string {
	return t.Panel.Render(strings.Join(lines, "\n"))
}

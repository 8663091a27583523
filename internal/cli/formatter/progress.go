package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderShare renders a share bar like [████░░░░] 45%, used for each worker's
// part of the day's cost.
func RenderShare(part, total float64, width int) string {
	pct := 0.0
	if total > 0 {
		pct = part / total
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return fmt.Sprintf("[%s] %3.0f%%", StyleBlue.Render(bar), pct*100)
}

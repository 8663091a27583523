package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatHours renders hours with at most two decimals, e.g. "8h", "2.5h".
func FormatHours(h float64) string {
	rounded := math.Round(h*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + "h"
}

// FormatCost renders an amount in yen with thousands separators, rounded to
// the nearest yen.
func FormatCost(v float64) string {
	return "¥" + humanize.Comma(int64(math.Round(v)))
}

// FormatRate renders an hourly rate, e.g. "¥2,500/h". Zero renders as a dim dash.
func FormatRate(v float64) string {
	if v == 0 {
		return Dim("—")
	}
	return FormatCost(v) + "/h"
}

// Placeholder renders a dim stand-in for an empty field.
func Placeholder(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return Dim(placeholder)
	}
	return v
}

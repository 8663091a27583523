package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	colGap       = 2
	cursorMarker = "▸ "
	cursorBlank  = "  "
)

// RenderTable renders an aligned table with a header separator line. Columns
// are padded to the widest visible cell. When cursor is a valid row index that
// row is marked and bolded; pass -1 for no selection.
func RenderTable(headers []string, rows [][]string, cursor int) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)
	widths := columnWidths(headers, rows)

	var b strings.Builder

	b.WriteString(cursorBlank)
	for i, h := range headers {
		writeCell(&b, StyleHeader.Render(h), lipgloss.Width(h), widths[i], i == cols-1)
	}
	b.WriteString("\n")

	b.WriteString(cursorBlank)
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for r, row := range rows {
		selected := r == cursor
		if selected {
			b.WriteString(StyleYellow.Render(cursorMarker))
		} else {
			b.WriteString(cursorBlank)
		}
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			visible := lipgloss.Width(cell)
			if selected {
				cell = StyleBold.Render(cell)
			}
			writeCell(&b, cell, visible, widths[i], i == cols-1)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}
	return widths
}

func writeCell(b *strings.Builder, rendered string, visible, width int, last bool) {
	b.WriteString(rendered)
	if !last {
		b.WriteString(strings.Repeat(" ", max(width-visible, 0)+colGap))
	}
}

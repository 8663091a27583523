package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/genbaflow/internal/domain"
	"github.com/alexanderramin/genbaflow/internal/session"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ModeColor returns the accent style of a view mode: green for field entry,
// blue for admin.
func ModeColor(mode domain.AppMode) lipgloss.Style {
	if mode == domain.ModeAdmin {
		return StyleBlue
	}
	return StyleGreen
}

// ModeTabs renders both modes with the active one highlighted.
func ModeTabs(active domain.AppMode) string {
	var tabs []string
	for _, m := range []domain.AppMode{domain.ModeField, domain.ModeAdmin} {
		label := " " + m.Label() + " "
		if m == active {
			tabs = append(tabs, ModeColor(m).Bold(true).Reverse(true).Render(label))
		} else {
			tabs = append(tabs, StyleDim.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

// StateIndicator returns a colored generation state indicator such as "● DONE".
func StateIndicator(kind session.StateKind) string {
	switch kind {
	case session.StateGenerating:
		return StylePurple.Render("● GENERATING")
	case session.StateDone:
		return StyleGreen.Render("● DONE")
	case session.StateFailed:
		return StyleRed.Render("● FAILED")
	default:
		return StyleDim.Render("● IDLE")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

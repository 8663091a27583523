package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/genbaflow/internal/cli/formatter"
	"github.com/alexanderramin/genbaflow/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// genbaHuhTheme returns a huh theme matching the formatter palette.
func genbaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(genbaHuhTheme()).WithShowHelp(false)
}

// clockInput returns a huh.Input for an "HH:MM" time of day.
func clockInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("08:00").
		Value(value).
		Validate(validateClock)
}

// notesInput returns a multi-line huh.Text for a narrative field.
func notesInput(title, placeholder string, value *string) *huh.Text {
	return huh.NewText().
		Title(title).
		Placeholder(placeholder).
		Lines(3).
		Value(value)
}

func validateClock(s string) error {
	if err := domain.ValidateClock(strings.TrimSpace(s)); err != nil {
		return errors.New("use HH:MM between 00:00 and 23:59")
	}
	return nil
}

func validateBreak(s string) error {
	if err := domain.ValidateBreak(s); err != nil {
		return errors.New("enter a non-negative number of minutes")
	}
	return nil
}

// validateRate accepts empty (no rate) or a non-negative amount.
func validateRate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || v < 0 {
		return errors.New("enter a non-negative amount in yen")
	}
	return nil
}

// validateOptionalDate accepts empty or YYYY-MM-DD.
func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func parseRate(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Package clipboard copies generated reports to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported indicates no clipboard utility is available on this system.
var ErrUnsupported = errors.New("clipboard is not available on this system")

// Clipboard places text on a clipboard.
type Clipboard interface {
	Copy(text string) error
}

// System writes to the OS clipboard.
type System struct {
	writeAll func(string) error
}

// NewSystem returns the OS clipboard.
func NewSystem() *System {
	return &System{writeAll: clipboard.WriteAll}
}

func (s *System) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := s.writeAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// Memory is an in-process clipboard for tests and headless runs.
type Memory struct {
	Text   string
	Copies int
	Err    error
}

func (m *Memory) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	m.Copies++
	return nil
}

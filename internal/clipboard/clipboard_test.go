package clipboard

import (
	"errors"
	"testing"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_WrapsWriteError(t *testing.T) {
	if clipboard.Unsupported {
		t.Skip("no clipboard utility on this system")
	}
	cause := errors.New("xclip exited 1")
	s := &System{writeAll: func(string) error { return cause }}

	err := s.Copy("text")

	assert.ErrorIs(t, err, cause)
}

func TestSystem_Writes(t *testing.T) {
	if clipboard.Unsupported {
		t.Skip("no clipboard utility on this system")
	}
	var got string
	s := &System{writeAll: func(text string) error { got = text; return nil }}

	require.NoError(t, s.Copy("お疲れ様です。"))
	assert.Equal(t, "お疲れ様です。", got)
}

func TestMemory(t *testing.T) {
	m := &Memory{}
	require.NoError(t, m.Copy("a"))
	require.NoError(t, m.Copy("b"))
	assert.Equal(t, "b", m.Text)
	assert.Equal(t, 2, m.Copies)

	m.Err = ErrUnsupported
	assert.ErrorIs(t, m.Copy("c"), ErrUnsupported)
	assert.Equal(t, "b", m.Text)
}

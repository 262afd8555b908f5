package clipboard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seliware/hilite/internal/buffer"
	"github.com/seliware/hilite/internal/editor"
	"github.com/seliware/hilite/internal/types"
)

func newEditor(t *testing.T, text string) *editor.Editor {
	t.Helper()
	return editor.New(buffer.NewSliceBufferFromString(text))
}

func TestYankSelection(t *testing.T) {
	ed := newEditor(t, "hello world")
	ed.SetSelection(types.Position{Line: 0, Col: 0}, types.Position{Line: 0, Col: 5})
	m := NewManager(ed, false)

	ok, err := m.YankSelection()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "hello", m.Contents())
	require.False(t, ed.HasSelection(), "yank clears the selection")
}

func TestYankSelection_NothingSelected(t *testing.T) {
	ed := newEditor(t, "hello")
	m := NewManager(ed, false)

	ok, err := m.YankSelection()
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, m.Contents())
}

func TestYank_MultiLine(t *testing.T) {
	ed := newEditor(t, "abc\ndef")
	ed.SetSelection(types.Position{Line: 0, Col: 1}, types.Position{Line: 1, Col: 2})
	m := NewManager(ed, false)

	ok, err := m.YankSelection()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "bc\nde", m.Contents())
}

func TestPaste(t *testing.T) {
	ed := newEditor(t, "ab")
	ed.SetSelection(types.Position{Line: 0, Col: 0}, types.Position{Line: 0, Col: 1})
	m := NewManager(ed, false)

	ok, err := m.YankSelection()
	require.NoError(t, err)
	require.True(t, ok)

	ed.SetCursor(types.Position{Line: 0, Col: 2})
	ok, err = m.Paste()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "aba", string(ed.GetBuffer().Bytes()))
}

func TestPaste_EmptyRegister(t *testing.T) {
	ed := newEditor(t, "ab")
	m := NewManager(ed, false)

	ok, err := m.Paste()
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "ab", string(ed.GetBuffer().Bytes()))
}

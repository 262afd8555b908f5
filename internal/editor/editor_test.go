package editor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seliware/hilite/internal/buffer"
	"github.com/seliware/hilite/internal/event"
	"github.com/seliware/hilite/internal/types"
)

func newTestEditor(t *testing.T, text string) *Editor {
	t.Helper()
	return New(buffer.NewSliceBufferFromString(text))
}

func pos(line, col int) types.Position {
	return types.Position{Line: line, Col: col}
}

// ===========================================================================
// Cursor movement
// ===========================================================================

func TestMoveCursor_Clamping(t *testing.T) {
	e := newTestEditor(t, "abc\nde")

	e.SetCursor(pos(10, 10))
	require.Equal(t, pos(1, 2), e.GetCursor(), "clamps to last line and line end")

	e.SetCursor(pos(-5, -5))
	require.Equal(t, pos(0, 0), e.GetCursor())
}

func TestMoveCursor_WrapsAtLineEnds(t *testing.T) {
	e := newTestEditor(t, "ab\ncd")

	e.SetCursor(pos(0, 2))
	e.MoveCursor(0, 1)
	require.Equal(t, pos(1, 0), e.GetCursor(), "right at line end wraps down")

	e.MoveCursor(0, -1)
	require.Equal(t, pos(0, 2), e.GetCursor(), "left at line start wraps up")
}

func TestHomeEnd(t *testing.T) {
	e := newTestEditor(t, "hello")
	e.SetCursor(pos(0, 3))

	e.End()
	require.Equal(t, pos(0, 5), e.GetCursor())
	e.Home()
	require.Equal(t, pos(0, 0), e.GetCursor())
}

// ===========================================================================
// Selection
// ===========================================================================

func TestSelection_Lifecycle(t *testing.T) {
	e := newTestEditor(t, "hello world")
	require.False(t, e.HasSelection())

	e.SetSelection(pos(0, 0), pos(0, 5))
	require.True(t, e.HasSelection())
	require.Equal(t, pos(0, 5), e.GetCursor(), "cursor follows the selection head")

	start, end, ok := e.GetSelection()
	require.True(t, ok)
	require.Equal(t, pos(0, 0), start)
	require.Equal(t, pos(0, 5), end)

	e.ClearSelection()
	require.False(t, e.HasSelection())
	_, _, ok = e.GetSelection()
	require.False(t, ok)
}

func TestSelection_ReversedNormalizes(t *testing.T) {
	e := newTestEditor(t, "hello world")
	e.SetSelection(pos(0, 5), pos(0, 0))

	start, end, ok := e.GetSelection()
	require.True(t, ok)
	require.Equal(t, pos(0, 0), start)
	require.Equal(t, pos(0, 5), end)
}

func TestSelection_ClampsToBuffer(t *testing.T) {
	e := newTestEditor(t, "abc")
	e.SetSelection(pos(0, 0), pos(0, 99))

	_, end, ok := e.GetSelection()
	require.True(t, ok)
	require.Equal(t, pos(0, 3), end)
}

func TestSelection_EmptyIsNoSelection(t *testing.T) {
	e := newTestEditor(t, "abc")
	e.SetSelection(pos(0, 1), pos(0, 1))
	require.False(t, e.HasSelection())
}

func TestStartOrUpdateSelection(t *testing.T) {
	e := newTestEditor(t, "hello")
	e.SetCursor(pos(0, 1))

	e.StartOrUpdateSelection()
	e.MoveCursor(0, 3)

	start, end, ok := e.GetSelection()
	require.True(t, ok)
	require.Equal(t, pos(0, 1), start)
	require.Equal(t, pos(0, 4), end)
}

// ===========================================================================
// Text extraction and replacement
// ===========================================================================

func TestGetRange_SingleLine(t *testing.T) {
	e := newTestEditor(t, "hello world")
	require.Equal(t, "lo wo", e.GetRange(pos(0, 3), pos(0, 8)))
	require.Equal(t, "lo wo", e.GetRange(pos(0, 8), pos(0, 3)), "reversed range normalizes")
	require.Equal(t, "", e.GetRange(pos(5, 0), pos(5, 3)), "missing line yields empty")
}

func TestGetRange_ClampsColumns(t *testing.T) {
	e := newTestEditor(t, "hello")
	require.Equal(t, "hello", e.GetRange(pos(0, -4), pos(0, 99)))
}

func TestGetRange_MultiLine(t *testing.T) {
	e := newTestEditor(t, "abc\ndef\nghi")
	require.Equal(t, "bc\ndef\ngh", e.GetRange(pos(0, 1), pos(2, 2)))
}

func TestReplaceRange_SingleLine(t *testing.T) {
	e := newTestEditor(t, "abc")

	e.ReplaceRange("XY", pos(0, 1), pos(0, 2))

	require.Equal(t, "aXYc", string(e.GetBuffer().Bytes()))
	require.Equal(t, pos(0, 3), e.GetCursor(), "cursor lands after the inserted text")
	require.False(t, e.HasSelection(), "replacement collapses the selection")
}

func TestReplaceRange_MultiLineInsert(t *testing.T) {
	e := newTestEditor(t, "abc")

	e.ReplaceRange("x\ny", pos(0, 1), pos(0, 1))

	require.Equal(t, "ax\nybc", string(e.GetBuffer().Bytes()))
	require.Equal(t, pos(1, 1), e.GetCursor())
}

func TestReplaceRange_DeleteOnly(t *testing.T) {
	e := newTestEditor(t, "hello world")

	e.ReplaceRange("", pos(0, 5), pos(0, 11))

	require.Equal(t, "hello", string(e.GetBuffer().Bytes()))
	require.Equal(t, pos(0, 5), e.GetCursor())
}

func TestReplaceSelection(t *testing.T) {
	e := newTestEditor(t, "hello world")
	e.SetSelection(pos(0, 6), pos(0, 11))

	e.ReplaceSelection("there")

	require.Equal(t, "hello there", string(e.GetBuffer().Bytes()))
}

func TestReplaceSelection_NoSelectionInsertsAtCursor(t *testing.T) {
	e := newTestEditor(t, "ab")
	e.SetCursor(pos(0, 1))

	e.ReplaceSelection("X")

	require.Equal(t, "aXb", string(e.GetBuffer().Bytes()))
}

func TestLineText(t *testing.T) {
	e := newTestEditor(t, "abc\ndef")
	require.Equal(t, "def", e.LineText(1))
	require.Equal(t, "", e.LineText(7), "missing lines read as empty")
}

// ===========================================================================
// Events
// ===========================================================================

func TestReplaceRange_DispatchesBufferModified(t *testing.T) {
	e := newTestEditor(t, "abc")
	mgr := event.NewManager()
	e.SetEventManager(mgr)

	var edits []types.EditInfo
	mgr.Subscribe(event.TypeBufferModified, func(ev event.Event) bool {
		if data, ok := ev.Data.(event.BufferModifiedData); ok {
			edits = append(edits, data.Edit)
		}
		return false
	})

	e.ReplaceRange("XY", pos(0, 1), pos(0, 2))

	require.Len(t, edits, 1)
	require.Equal(t, pos(0, 1), edits[0].Start)
	require.Equal(t, pos(0, 2), edits[0].OldEnd)
	require.Equal(t, pos(0, 3), edits[0].NewEnd)
}

func TestFocus_DispatchesFocusRequested(t *testing.T) {
	e := newTestEditor(t, "abc")
	mgr := event.NewManager()
	e.SetEventManager(mgr)

	fired := 0
	mgr.Subscribe(event.TypeFocusRequested, func(ev event.Event) bool {
		fired++
		return false
	})

	e.Focus()
	require.Equal(t, 1, fired)
}

func TestVisualColumn(t *testing.T) {
	require.Equal(t, 0, VisualColumn([]byte("abc"), 0))
	require.Equal(t, 2, VisualColumn([]byte("abc"), 2))
	// CJK characters occupy two cells.
	require.Equal(t, 4, VisualColumn([]byte("界界x"), 2))
}

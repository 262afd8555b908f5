package locate

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

func pos(line, col int) types.Position {
	return types.Position{Line: line, Col: col}
}

// ===========================================================================
// Word
// ===========================================================================

func TestWord_UnderCursor(t *testing.T) {
	ed := newEditor(t, "abc def ghi")
	ed.SetCursor(pos(0, 5))

	sel := Word(ed)

	require.Equal(t, "def", sel.Text)
	require.Equal(t, types.Span{Start: pos(0, 4), End: pos(0, 7)}, sel.Span)
	require.True(t, sel.Auto)
	require.Equal(t, "def", ed.GetSelectionText(), "word should become the live selection")
}

func TestWord_AtLineStart(t *testing.T) {
	ed := newEditor(t, "abc def")
	ed.SetCursor(pos(0, 1))

	sel := Word(ed)

	require.Equal(t, "abc", sel.Text)
	require.Equal(t, types.Span{Start: pos(0, 0), End: pos(0, 3)}, sel.Span)
}

func TestWord_Unicode(t *testing.T) {
	ed := newEditor(t, "héllo wörld")
	ed.SetCursor(pos(0, 8))

	sel := Word(ed)

	require.Equal(t, "wörld", sel.Text)
	require.Equal(t, types.Span{Start: pos(0, 6), End: pos(0, 11)}, sel.Span)
}

func TestWord_EmptyLine(t *testing.T) {
	ed := newEditor(t, "")

	sel := Word(ed)

	require.Equal(t, "", sel.Text)
	require.Equal(t, types.Span{Start: pos(0, 0), End: pos(0, 0)}, sel.Span)
	require.True(t, sel.Auto)
}

func TestWord_CursorOnSpace(t *testing.T) {
	ed := newEditor(t, "abc def")
	ed.SetCursor(pos(0, 3))

	sel := Word(ed)

	// The space itself bounds the word; expansion runs leftward only.
	require.Equal(t, "abc", sel.Text)
	require.Equal(t, types.Span{Start: pos(0, 0), End: pos(0, 3)}, sel.Span)
}

func TestWord_SelectionPassthrough(t *testing.T) {
	ed := newEditor(t, "abc def ghi")
	ed.SetSelection(pos(0, 0), pos(0, 7))

	sel := Word(ed)

	require.Equal(t, "abc def", sel.Text)
	require.Equal(t, types.Span{Start: pos(0, 0), End: pos(0, 7)}, sel.Span)
	require.False(t, sel.Auto)
}

// ===========================================================================
// MarkRegion
// ===========================================================================

// Line layout: region one spans cols 3..34, " bb " fills 34..38, region two
// spans cols 38..70.
const twoRegions = `aa <mark class="hltr-red">x</mark> bb <mark class="hltr-blue">y</mark>`

func TestMarkRegion_EnclosingCursor(t *testing.T) {
	ed := newEditor(t, twoRegions)
	ed.SetCursor(pos(0, 10))

	sel := MarkRegion(ed, true)

	require.Equal(t, `<mark class="hltr-red">x</mark>`, sel.Text)
	require.Equal(t, types.Span{Start: pos(0, 3), End: pos(0, 34)}, sel.Span)
	require.True(t, sel.Auto)
	require.True(t, ed.HasSelection(), "materialize should create the selection")
}

func TestMarkRegion_SecondRegion(t *testing.T) {
	ed := newEditor(t, twoRegions)
	ed.SetCursor(pos(0, 40))

	sel := MarkRegion(ed, true)

	require.Equal(t, `<mark class="hltr-blue">y</mark>`, sel.Text)
	require.Equal(t, types.Span{Start: pos(0, 38), End: pos(0, 70)}, sel.Span)
}

func TestMarkRegion_BetweenRegions(t *testing.T) {
	ed := newEditor(t, twoRegions)
	ed.SetCursor(pos(0, 36))

	sel := MarkRegion(ed, true)

	require.Equal(t, "", sel.Text)
	require.Equal(t, types.Span{Start: pos(0, 36), End: pos(0, 36)}, sel.Span)
	require.False(t, sel.Auto)
	require.False(t, ed.HasSelection(), "no region found, nothing to materialize")
}

func TestMarkRegion_BoundariesInclusive(t *testing.T) {
	ed := newEditor(t, twoRegions)

	ed.SetCursor(pos(0, 3))
	sel := MarkRegion(ed, false)
	require.Equal(t, types.Span{Start: pos(0, 3), End: pos(0, 34)}, sel.Span, "open boundary encloses")

	ed.ClearSelection()
	ed.SetCursor(pos(0, 70))
	sel = MarkRegion(ed, false)
	require.Equal(t, types.Span{Start: pos(0, 38), End: pos(0, 70)}, sel.Span, "close boundary encloses")
}

func TestMarkRegion_Probe(t *testing.T) {
	ed := newEditor(t, twoRegions)
	ed.SetCursor(pos(0, 10))

	sel := MarkRegion(ed, false)

	require.NotEmpty(t, sel.Text)
	require.False(t, ed.HasSelection(), "probing must not create a selection")
}

func TestMarkRegion_UnmatchedOpen(t *testing.T) {
	ed := newEditor(t, `x <mark class="hltr-red">abc`)
	ed.SetCursor(pos(0, 5))

	sel := MarkRegion(ed, true)

	require.Equal(t, "", sel.Text)
	require.False(t, sel.Auto)
}

func TestMarkRegion_PlainText(t *testing.T) {
	ed := newEditor(t, "nothing marked here")
	ed.SetCursor(pos(0, 4))

	sel := MarkRegion(ed, true)

	require.Equal(t, "", sel.Text)
	require.Equal(t, types.Span{Start: pos(0, 4), End: pos(0, 4)}, sel.Span)
}

func TestMarkRegion_SelectionPassthrough(t *testing.T) {
	ed := newEditor(t, twoRegions)
	ed.SetSelection(pos(0, 0), pos(0, 2))

	sel := MarkRegion(ed, true)

	require.Equal(t, "aa", sel.Text)
	require.Equal(t, types.Span{Start: pos(0, 0), End: pos(0, 2)}, sel.Span)
	require.False(t, sel.Auto)
}

func TestMarkRegion_EmptyLine(t *testing.T) {
	ed := newEditor(t, "")

	sel := MarkRegion(ed, true)

	require.Equal(t, "", sel.Text)
	require.Equal(t, types.Span{Start: pos(0, 0), End: pos(0, 0)}, sel.Span)
}

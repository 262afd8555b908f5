// Package locate materializes the text span a highlight command should
// operate on: the user's own selection when one exists, otherwise the word
// under the cursor or the enclosing highlight-markup region on the current
// line.
package locate

import (
	"strings"

	"github.com/seliware/hilite/internal/logger"
	"github.com/seliware/hilite/internal/types"
	"github.com/seliware/hilite/internal/utils"
)

// Mark tag delimiters scanned for on the current line. Scanning is plain
// substring search; attributes between "<mark" and ">" don't matter here.
const (
	markOpen  = "<mark"
	markClose = "</mark>"
)

// Editor is the host surface the locator reads and materializes spans on.
type Editor interface {
	HasSelection() bool
	GetSelection() (start, end types.Position, ok bool)
	GetSelectionText() string
	SetSelection(start, end types.Position)
	GetCursor() types.Position
	LineText(n int) string
}

// Selection is a located span. Auto is true when the span was computed here
// rather than selected by the user; that flag decides whether the cursor
// collapses after the span's content is consumed.
type Selection struct {
	Text string
	Span types.Span
	Auto bool
}

// MarkRegion finds the highlight-markup region enclosing the cursor on the
// current line. An existing selection is returned unchanged. With materialize
// set, the found region becomes the live selection; without it the region is
// only reported, so callers can probe "is the cursor inside a highlight"
// without side effects.
//
// Regions are scanned left to right: a region opens at each "<mark" and
// closes at the first "</mark>" after it. The cursor is enclosed when its
// column lies within [open, close] inclusive. The scan advances past each
// candidate's close, and an open without a close ends the scan for the line.
func MarkRegion(ed Editor, materialize bool) Selection {
	if ed.HasSelection() {
		start, end, _ := ed.GetSelection()
		return Selection{
			Text: ed.GetSelectionText(),
			Span: types.Span{Start: start, End: end},
			Auto: false,
		}
	}

	cur := ed.GetCursor()
	line := ed.LineText(cur.Line)
	lineBytes := []byte(line)

	searchFrom := 0
	for {
		rel := strings.Index(line[searchFrom:], markOpen)
		if rel < 0 {
			break
		}
		openAt := searchFrom + rel
		closeRel := strings.Index(line[openAt:], markClose)
		if closeRel < 0 {
			// Unmatched open; nothing after it can close, stop scanning.
			break
		}
		closeEnd := openAt + closeRel + len(markClose)

		openCol := utils.ByteOffsetToRuneIndex(lineBytes, openAt)
		closeCol := utils.ByteOffsetToRuneIndex(lineBytes, closeEnd)
		if cur.Col >= openCol && cur.Col <= closeCol {
			span := types.Span{
				Start: types.Position{Line: cur.Line, Col: openCol},
				End:   types.Position{Line: cur.Line, Col: closeCol},
			}
			if materialize {
				ed.SetSelection(span.Start, span.End)
			}
			logger.Debugf("locate: mark region %d-%d encloses cursor col %d", openCol, closeCol, cur.Col)
			return Selection{Text: line[openAt:closeEnd], Span: span, Auto: true}
		}

		searchFrom = closeEnd
	}

	// No enclosing region; report an empty span at the cursor.
	return Selection{Span: types.Span{Start: cur, End: cur}, Auto: false}
}

// Word selects the word under the cursor. An existing selection is returned
// unchanged. Otherwise the span expands left and right from the cursor over
// runes that are not the space character (only 0x20 bounds a word here —
// markup attributes keep punctuation attached) and becomes the live
// selection. On an empty line the result is a zero-length span at column 0.
func Word(ed Editor) Selection {
	if ed.HasSelection() {
		start, end, _ := ed.GetSelection()
		return Selection{
			Text: ed.GetSelectionText(),
			Span: types.Span{Start: start, End: end},
			Auto: false,
		}
	}

	cur := ed.GetCursor()
	runes := []rune(ed.LineText(cur.Line))

	col := cur.Col
	if col > len(runes) {
		col = len(runes)
	}
	if col < 0 {
		col = 0
	}

	start := col
	for start > 0 && runes[start-1] != ' ' {
		start--
	}
	end := col
	for end < len(runes) && runes[end] != ' ' {
		end++
	}

	span := types.Span{
		Start: types.Position{Line: cur.Line, Col: start},
		End:   types.Position{Line: cur.Line, Col: end},
	}
	ed.SetSelection(span.Start, span.End)
	return Selection{Text: string(runes[start:end]), Span: span, Auto: true}
}

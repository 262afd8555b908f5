package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/seliware/hilite/internal/logger"
	"github.com/seliware/hilite/internal/types"
	"github.com/seliware/hilite/internal/utils"
)

// LineText returns the text of line n, or an empty string when n is out of
// range. Missing lines degrade rather than fail; the span heuristics treat
// them as empty.
func (e *Editor) LineText(n int) string {
	lineBytes, err := e.buffer.Line(n)
	if err != nil {
		return ""
	}
	return string(lineBytes)
}

// GetSelectionText returns the text covered by the current selection, or ""
// when nothing is selected.
func (e *Editor) GetSelectionText() string {
	start, end, ok := e.GetSelection()
	if !ok {
		return ""
	}
	return e.GetRange(start, end)
}

// GetRange extracts the text between start and end (end exclusive).
// Coordinates are clamped into the buffer; a reversed range is normalized.
func (e *Editor) GetRange(start, end types.Position) string {
	span := types.Span{Start: start, End: end}.Normalize()
	start, end = span.Start, span.End

	lineCount := e.buffer.LineCount()
	if start.Line >= lineCount {
		return ""
	}
	if start.Line < 0 {
		start.Line = 0
	}
	if end.Line >= lineCount {
		end.Line = lineCount - 1
		end.Col = utf8.RuneCount(e.mustLine(end.Line))
	}

	if start.Line == end.Line {
		lineBytes := e.mustLine(start.Line)
		startOffset := utils.RuneIndexToByteOffset(lineBytes, start.Col)
		endOffset := utils.RuneIndexToByteOffset(lineBytes, end.Col)
		if startOffset > endOffset {
			return ""
		}
		return string(lineBytes[startOffset:endOffset])
	}

	var sb strings.Builder
	for lineIdx := start.Line; lineIdx <= end.Line; lineIdx++ {
		lineBytes := e.mustLine(lineIdx)
		switch lineIdx {
		case start.Line:
			sb.Write(lineBytes[utils.RuneIndexToByteOffset(lineBytes, start.Col):])
			sb.WriteByte('\n')
		case end.Line:
			sb.Write(lineBytes[:utils.RuneIndexToByteOffset(lineBytes, end.Col)])
		default:
			sb.Write(lineBytes)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ReplaceRange replaces the text between start and end with text. The
// selection collapses and the cursor lands at the end of the inserted text.
// Replacing an empty range with empty text is a no-op.
func (e *Editor) ReplaceRange(text string, start, end types.Position) {
	span := types.Span{Start: start, End: end}.Normalize()
	start, end = span.Start, span.End

	if span.IsEmpty() && text == "" {
		return
	}

	delInfo, err := e.buffer.Delete(start, end)
	if err != nil {
		logger.Warnf("Editor: ReplaceRange delete failed: %v", err)
		return
	}
	insInfo, err := e.buffer.Insert(start, []byte(text))
	if err != nil {
		logger.Warnf("Editor: ReplaceRange insert failed: %v", err)
		return
	}

	e.ClearSelection()

	newEnd := insInfo.NewEnd
	if text == "" {
		newEnd = delInfo.NewEnd
	}
	e.SetCursor(newEnd)

	e.dispatchModified(types.EditInfo{Start: start, OldEnd: end, NewEnd: newEnd})
}

// ReplaceSelection replaces the current selection with text, or inserts text
// at the cursor when nothing is selected.
func (e *Editor) ReplaceSelection(text string) {
	if start, end, ok := e.GetSelection(); ok {
		e.ReplaceRange(text, start, end)
		return
	}
	e.ReplaceRange(text, e.Cursor, e.Cursor)
}

// mustLine returns line n or an empty slice, never an error. Callers have
// already clamped n; this guards against races with their arithmetic.
func (e *Editor) mustLine(n int) []byte {
	lineBytes, err := e.buffer.Line(n)
	if err != nil {
		return nil
	}
	return lineBytes
}

package editor

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"github.com/seliware/hilite/internal/logger"
)

// MoveCursor moves the cursor and adjusts the viewport, handling line wraps.
func (e *Editor) MoveCursor(deltaLine, deltaCol int) {
	currentLine := e.Cursor.Line
	currentCol := e.Cursor.Col
	lineCount := e.buffer.LineCount()

	// Horizontal wrap-around first. Only applies to pure horizontal moves.
	if deltaLine == 0 && lineCount > 0 {
		if deltaCol > 0 {
			lineBytes, err := e.buffer.Line(currentLine)
			if err == nil {
				maxCol := utf8.RuneCount(lineBytes)
				if currentCol >= maxCol && currentLine < lineCount-1 {
					e.Cursor.Line++
					e.Cursor.Col = 0
					e.afterCursorMove()
					return
				}
			}
		} else if deltaCol < 0 {
			if currentCol <= 0 && currentLine > 0 {
				e.Cursor.Line--
				prevLineBytes, err := e.buffer.Line(e.Cursor.Line)
				if err == nil {
					e.Cursor.Col = utf8.RuneCount(prevLineBytes)
				} else {
					e.Cursor.Col = 0
				}
				e.afterCursorMove()
				return
			}
		}
	}

	// Default movement with clamping.
	targetLine := currentLine + deltaLine
	targetCol := currentCol + deltaCol

	if targetLine < 0 {
		targetLine = 0
	}
	if lineCount == 0 {
		targetLine = 0
	} else if targetLine >= lineCount {
		targetLine = lineCount - 1
	}

	if targetCol < 0 {
		targetCol = 0
	}
	if lineCount > 0 {
		targetLineBytes, err := e.buffer.Line(targetLine)
		if err == nil {
			maxCol := utf8.RuneCount(targetLineBytes)
			if targetCol > maxCol {
				targetCol = maxCol
			}
		} else {
			targetCol = 0
		}
	} else {
		targetCol = 0
	}

	e.Cursor.Line = targetLine
	e.Cursor.Col = targetCol
	e.afterCursorMove()
}

// afterCursorMove updates the selection head if selecting and keeps the
// cursor visible.
func (e *Editor) afterCursorMove() {
	if e.selecting {
		e.selectionEnd = e.Cursor
	}
	e.ScrollToCursor()
}

// VisualColumn computes the visual screen column for a rune index within a
// line, accounting for multi-width characters and grapheme clusters.
func VisualColumn(line []byte, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	str := string(line)
	visualWidth := 0
	currentRuneIndex := 0
	gr := uniseg.NewGraphemes(str)

	for gr.Next() {
		if currentRuneIndex >= runeIndex {
			break
		}
		visualWidth += gr.Width()
		currentRuneIndex += len(gr.Runes())
	}
	return visualWidth
}

// ScrollToCursor adjusts the viewport so the cursor stays visible, honoring
// ScrollOff.
func (e *Editor) ScrollToCursor() {
	if e.viewHeight <= 0 || e.viewWidth <= 0 {
		return
	}

	effectiveScrollOff := e.ScrollOff
	if effectiveScrollOff*2 >= e.viewHeight {
		effectiveScrollOff = (e.viewHeight - 1) / 2
	}

	if e.Cursor.Line < e.ViewportY+effectiveScrollOff {
		e.ViewportY = e.Cursor.Line - effectiveScrollOff
		if e.ViewportY < 0 {
			e.ViewportY = 0
		}
	} else if e.Cursor.Line >= e.ViewportY+e.viewHeight-effectiveScrollOff {
		e.ViewportY = e.Cursor.Line - e.viewHeight + 1 + effectiveScrollOff
	}

	lineBytes, err := e.buffer.Line(e.Cursor.Line)
	cursorVisualCol := 0
	if err == nil {
		cursorVisualCol = VisualColumn(lineBytes, e.Cursor.Col)
	} else {
		logger.Debugf("ScrollToCursor: Error getting line %d: %v", e.Cursor.Line, err)
	}

	if cursorVisualCol < e.ViewportX {
		e.ViewportX = cursorVisualCol
	} else if cursorVisualCol >= e.ViewportX+e.viewWidth {
		e.ViewportX = cursorVisualCol - e.viewWidth + 1
	}

	if e.ViewportY < 0 {
		e.ViewportY = 0
	}
	if e.ViewportX < 0 {
		e.ViewportX = 0
	}
}

// Home moves the cursor to the beginning of the current line.
func (e *Editor) Home() {
	e.Cursor.Col = 0
	e.afterCursorMove()
}

// End moves the cursor past the last rune of the current line.
func (e *Editor) End() {
	lineBytes, err := e.buffer.Line(e.Cursor.Line)
	if err != nil {
		e.Cursor.Col = 0
	} else {
		e.Cursor.Col = utf8.RuneCount(lineBytes)
	}
	e.afterCursorMove()
}

// PageMove moves the cursor and viewport by whole pages. deltaPages is
// typically +1 (PageDown) or -1 (PageUp).
func (e *Editor) PageMove(deltaPages int) {
	if e.viewHeight <= 0 {
		return
	}

	targetLine := e.Cursor.Line + (e.viewHeight * deltaPages)
	lineCount := e.buffer.LineCount()
	if targetLine < 0 {
		targetLine = 0
	} else if targetLine >= lineCount {
		targetLine = lineCount - 1
	}

	e.Cursor.Line = targetLine
	e.MoveCursor(0, 0)

	e.ViewportY += e.viewHeight * deltaPages
	if e.ViewportY < 0 {
		e.ViewportY = 0
	}
	maxViewportY := lineCount - e.viewHeight
	if maxViewportY < 0 {
		maxViewportY = 0
	}
	if e.ViewportY > maxViewportY {
		e.ViewportY = maxViewportY
	}

	e.ScrollToCursor()
}

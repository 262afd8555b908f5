// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"
	"regexp"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/seliware/hilite/internal/editor"
	"github.com/seliware/hilite/internal/logger"
	"github.com/seliware/hilite/internal/style"
	"github.com/seliware/hilite/internal/types"
	"github.com/seliware/hilite/internal/utils"
)

// Mark regions are recognized textually so the preview tracks whatever is in
// the buffer, including markup typed by hand.
var (
	markRegionRe = regexp.MustCompile(`<mark[^>]*>.*?</mark>`)
	classKeyRe   = regexp.MustCompile(`class="hltr-([0-9A-Za-z-]+)"`)
	inlineHexRe  = regexp.MustCompile(`background:\s*(#[0-9A-Fa-f]{3,8})`)
)

// markRegion is one highlighted stretch of a line, in rune columns.
type markRegion struct {
	startCol int
	endCol   int
	style    tcell.Style
}

// isPositionWithin checks if pos is within [start, end), normalized.
func isPositionWithin(pos, start, end types.Position) bool {
	if pos.Line < start.Line || pos.Line > end.Line {
		return false
	}
	if pos.Line == start.Line && pos.Col < start.Col {
		return false
	}
	if pos.Line == end.Line && pos.Col >= end.Col {
		return false
	}
	return true
}

// regionStyle builds the cell style for one matched mark region: the key or
// inline color is resolved through the registry; unknown markup falls back to
// a plain yellow so it still reads as highlighted. The foreground flips
// between black and white depending on the background's lightness.
func regionStyle(match string, reg *style.Registry) tcell.Style {
	bg := tcell.ColorYellow
	fg := tcell.ColorBlack

	var c colorful.Color
	found := false
	if m := classKeyRe.FindStringSubmatch(match); m != nil {
		c, found = reg.RGB(m[1])
	} else if m := inlineHexRe.FindStringSubmatch(match); m != nil {
		if parsed, _, err := style.ParseColor(m[1]); err == nil {
			c, found = parsed, true
		}
	}

	if found {
		r, g, b := c.RGB255()
		bg = tcell.NewRGBColor(int32(r), int32(g), int32(b))
		if _, _, l := c.Hsl(); l < 0.5 {
			fg = tcell.ColorWhite
		}
	}

	return tcell.StyleDefault.Background(bg).Foreground(fg)
}

// markRegionsForLine scans a line for mark regions and returns their rune
// column ranges with resolved styles.
func markRegionsForLine(lineBytes []byte, reg *style.Registry) []markRegion {
	matches := markRegionRe.FindAllIndex(lineBytes, -1)
	if matches == nil {
		return nil
	}
	regions := make([]markRegion, 0, len(matches))
	for _, m := range matches {
		regions = append(regions, markRegion{
			startCol: utils.ByteOffsetToRuneIndex(lineBytes, m[0]),
			endCol:   utils.ByteOffsetToRuneIndex(lineBytes, m[1]),
			style:    regionStyle(string(lineBytes[m[0]:m[1]]), reg),
		})
	}
	return regions
}

// DrawBuffer draws the visible portion of the buffer with mark regions
// painted in their configured colors and the selection in reverse video.
func DrawBuffer(tuiManager *TUI, ed *editor.Editor, reg *style.Registry) {
	defaultStyle := tcell.StyleDefault
	lineNumberStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	selectionStyle := tcell.StyleDefault.Reverse(true)

	width, height := tuiManager.Size()
	viewY, viewX := ed.GetViewport()
	selStart, selEnd, selectionActive := ed.GetSelection()
	statusBarHeight := 1
	viewHeight := height - statusBarHeight

	if viewHeight <= 0 || width <= 0 {
		return
	}

	lines := ed.GetBuffer().Lines()
	lineCount := len(lines)
	if lineCount == 0 {
		lineCount = 1
	}

	maxDigits := int(math.Log10(float64(lineCount))) + 1
	lineNumberPadding := 1
	gutterWidth := maxDigits + lineNumberPadding
	if gutterWidth >= width {
		gutterWidth = 0
	}
	textAreaWidth := width - gutterWidth

	for screenY := 0; screenY < viewHeight; screenY++ {
		bufferLineIdx := screenY + viewY

		for fillX := 0; fillX < width; fillX++ {
			tuiManager.screen.SetContent(fillX, screenY, ' ', nil, defaultStyle)
		}

		if gutterWidth > 0 && bufferLineIdx >= 0 && bufferLineIdx < len(lines) {
			lineNumStr := fmt.Sprintf("%*d", maxDigits, bufferLineIdx+1)
			currentLineStyle := lineNumberStyle
			if ed.GetCursor().Line == bufferLineIdx {
				currentLineStyle = lineNumberStyle.Bold(true)
			}
			for i, r := range []rune(lineNumStr) {
				if i < gutterWidth-lineNumberPadding {
					tuiManager.screen.SetContent(i, screenY, r, nil, currentLineStyle)
				}
			}
		}

		if bufferLineIdx < 0 || bufferLineIdx >= len(lines) {
			continue
		}

		lineBytes := lines[bufferLineIdx]
		regions := markRegionsForLine(lineBytes, reg)
		gr := uniseg.NewGraphemes(string(lineBytes))

		currentVisualX := 0
		currentRuneIndex := 0

		for gr.Next() {
			clusterRunes := gr.Runes()
			clusterWidth := gr.Width()
			clusterVisualStart := currentVisualX
			clusterVisualEnd := currentVisualX + clusterWidth

			screenX := (clusterVisualStart - viewX) + gutterWidth

			if clusterVisualEnd > viewX && clusterVisualStart < viewX+textAreaWidth {
				currentStyle := defaultStyle
				currentPos := types.Position{Line: bufferLineIdx, Col: currentRuneIndex}

				for _, region := range regions {
					if currentRuneIndex >= region.startCol && currentRuneIndex < region.endCol {
						currentStyle = region.style
						break
					}
				}
				if selectionActive && isPositionWithin(currentPos, selStart, selEnd) {
					currentStyle = selectionStyle
				}

				if screenX >= gutterWidth && screenX < width {
					mainRune := clusterRunes[0]
					combining := clusterRunes[1:]

					if mainRune == '\t' {
						tabSpaces := 4
						visualScreenX := currentVisualX - viewX + gutterWidth
						spacesToDraw := tabSpaces - (visualScreenX % tabSpaces)
						for i := 0; i < spacesToDraw && screenX+i < width; i++ {
							tuiManager.screen.SetContent(screenX+i, screenY, ' ', nil, currentStyle)
						}
					} else {
						tuiManager.screen.SetContent(screenX, screenY, mainRune, combining, currentStyle)
						for cw := 1; cw < clusterWidth; cw++ {
							if fillX := screenX + cw; fillX < width {
								tuiManager.screen.SetContent(fillX, screenY, ' ', nil, currentStyle)
							}
						}
					}
				}
			}

			currentVisualX += clusterWidth
			currentRuneIndex += len(clusterRunes)
			if currentVisualX >= viewX+textAreaWidth {
				break
			}
		}
	}
}

// DrawCursor positions the terminal cursor using visual width calculations.
func DrawCursor(tuiManager *TUI, ed *editor.Editor) {
	cursor := ed.GetCursor()
	viewY, viewX := ed.GetViewport()

	lineCount := ed.GetBuffer().LineCount()
	if lineCount == 0 {
		lineCount = 1
	}
	maxDigits := int(math.Log10(float64(lineCount))) + 1
	lineNumberPadding := 1
	gutterWidth := maxDigits + lineNumberPadding
	width, height := tuiManager.Size()
	if gutterWidth >= width {
		gutterWidth = 0
	}

	lineBytes, err := ed.GetBuffer().Line(cursor.Line)
	cursorVisualCol := 0
	if err == nil {
		cursorVisualCol = editor.VisualColumn(lineBytes, cursor.Col)
	} else {
		logger.Debugf("DrawCursor: error getting line %d: %v", cursor.Line, err)
	}

	screenX := (cursorVisualCol - viewX) + gutterWidth
	screenY := cursor.Line - viewY

	statusBarHeight := 1
	viewHeight := height - statusBarHeight
	textAreaWidth := width - gutterWidth

	if screenX < gutterWidth || screenX >= width || screenY < 0 || screenY >= viewHeight || viewHeight <= 0 || textAreaWidth <= 0 {
		tuiManager.screen.HideCursor()
	} else {
		tuiManager.screen.ShowCursor(screenX, screenY)
	}
}

package editor

import (
	"github.com/seliware/hilite/internal/event"
	"github.com/seliware/hilite/internal/logger"
	"github.com/seliware/hilite/internal/types"
)

// HasSelection returns true if there is an active, non-empty selection.
func (e *Editor) HasSelection() bool {
	return e.selecting && e.selectionStart != e.selectionEnd
}

// GetSelection returns the normalized selection range (start <= end).
// Returns two invalid positions and false if no selection is active.
func (e *Editor) GetSelection() (start types.Position, end types.Position, ok bool) {
	if !e.HasSelection() {
		return types.Position{Line: -1, Col: -1}, types.Position{Line: -1, Col: -1}, false
	}

	span := types.Span{Start: e.selectionStart, End: e.selectionEnd}.Normalize()
	return span.Start, span.End, true
}

// SetSelection makes [start, end] the live selection and moves the cursor to
// its end. Positions are clamped by the cursor move.
func (e *Editor) SetSelection(start, end types.Position) {
	e.selecting = true
	e.selectionStart = start
	e.selectionEnd = end
	e.Cursor = end
	e.MoveCursor(0, 0)
	// Clamping may have moved the head; keep the selection consistent.
	e.selectionEnd = e.Cursor

	if e.eventManager != nil {
		span := types.Span{Start: e.selectionStart, End: e.selectionEnd}.Normalize()
		e.eventManager.Dispatch(event.TypeSelectionChanged, event.SelectionChangedData{Span: span, Active: true})
	}
}

// ClearSelection resets the selection state.
func (e *Editor) ClearSelection() {
	if !e.selecting {
		return
	}
	e.selecting = false
	e.selectionStart = types.Position{Line: -1, Col: -1}
	e.selectionEnd = types.Position{Line: -1, Col: -1}
	logger.Debugf("Editor: Selection cleared")

	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeSelectionChanged, event.SelectionChangedData{Active: false})
	}
}

// StartOrUpdateSelection manages selection state during movement, typically
// when a selection-extending movement key is pressed.
func (e *Editor) StartOrUpdateSelection() {
	if !e.selecting {
		// Anchor at the current cursor position before movement.
		e.selectionStart = e.Cursor
		e.selecting = true
		logger.Debugf("Editor: Selection started at %v", e.selectionStart)
	}
	e.selectionEnd = e.Cursor
}

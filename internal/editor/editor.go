// internal/editor/editor.go
package editor

import (
	"github.com/seliware/hilite/internal/buffer"
	"github.com/seliware/hilite/internal/config"
	"github.com/seliware/hilite/internal/event"
	"github.com/seliware/hilite/internal/types"
)

// Editor owns a buffer, the cursor, and the selection state. It exposes the
// text surface the highlight commands operate on: line access, range
// extraction, range/selection replacement, cursor and selection placement.
type Editor struct {
	buffer     buffer.Buffer
	Cursor     types.Position
	ViewportY  int // Top visible line index (0-based)
	ViewportX  int // Leftmost visible visual column (0-based)
	viewWidth  int // Cached terminal width
	viewHeight int // Cached terminal height (excluding status bar)
	ScrollOff  int // Lines to keep visible above/below the cursor

	// Selection state. selectionStart is the anchor, selectionEnd follows
	// the cursor while selecting.
	selecting      bool
	selectionStart types.Position
	selectionEnd   types.Position

	eventManager *event.Manager
}

// New creates an Editor over the given buffer.
func New(buf buffer.Buffer) *Editor {
	return &Editor{
		buffer:         buf,
		Cursor:         types.Position{Line: 0, Col: 0},
		ScrollOff:      config.DefaultScrollOff,
		selecting:      false,
		selectionStart: types.Position{Line: -1, Col: -1},
		selectionEnd:   types.Position{Line: -1, Col: -1},
	}
}

// SetEventManager sets the event manager for dispatching change events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// GetBuffer returns the editor's buffer.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// GetCursor returns the current cursor position.
func (e *Editor) GetCursor() types.Position {
	return e.Cursor
}

// SetCursor sets the cursor, clamping it into the buffer, and scrolls.
func (e *Editor) SetCursor(pos types.Position) {
	e.Cursor = pos
	e.MoveCursor(0, 0) // MoveCursor handles clamping and scrolling
}

// GetViewport returns the viewport origin (top line, left visual column).
func (e *Editor) GetViewport() (int, int) {
	return e.ViewportY, e.ViewportX
}

// SetViewSize updates the cached view dimensions. Called on resize or before
// drawing.
func (e *Editor) SetViewSize(width, height int) {
	e.viewWidth = width
	if height > config.StatusBarHeight {
		e.viewHeight = height - config.StatusBarHeight
	} else {
		e.viewHeight = 0
	}

	if e.ScrollOff*2 >= e.viewHeight && e.viewHeight > 0 {
		e.ScrollOff = (e.viewHeight - 1) / 2
	} else if e.viewHeight <= 0 {
		e.ScrollOff = 0
	}

	e.ScrollToCursor()
}

// SaveBuffer writes the buffer back to its file.
func (e *Editor) SaveBuffer() error {
	err := e.buffer.Save("")
	if err != nil {
		return err
	}
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: e.buffer.FilePath()})
	}
	return nil
}

// Focus asks the host to return input focus to the buffer. The editor itself
// has no focus concept; it forwards the request over the event bus so the
// host can schedule it after its UI settles.
func (e *Editor) Focus() {
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeFocusRequested, event.FocusRequestedData{})
	}
}

func (e *Editor) dispatchModified(edit types.EditInfo) {
	if e.eventManager != nil && edit != (types.EditInfo{}) {
		e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: edit})
	}
}

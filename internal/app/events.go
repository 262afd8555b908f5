// internal/app/events.go
package app

import (
	"github.com/seliware/hilite/internal/event"
)

// subscribeEvents wires the app's reactions to editor and engine events.
func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeBufferModified, a.handleBufferModified)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSaved)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoaded)
	a.eventManager.Subscribe(event.TypeSelectionChanged, a.handleSelectionChanged)
	a.eventManager.Subscribe(event.TypeHighlightApplied, a.handleHighlightApplied)
	a.eventManager.Subscribe(event.TypeHighlightErased, a.handleHighlightErased)
	a.eventManager.Subscribe(event.TypeFocusRequested, a.handleFocusRequested)
}

func (a *App) handleBufferModified(e event.Event) bool {
	a.updateStatusBarContent()
	return false
}

func (a *App) handleBufferSaved(e event.Event) bool {
	a.updateStatusBarContent()
	return false
}

func (a *App) handleBufferLoaded(e event.Event) bool {
	a.updateStatusBarContent()
	a.requestRedraw()
	return false
}

func (a *App) handleSelectionChanged(e event.Event) bool {
	a.requestRedraw()
	return false
}

func (a *App) handleHighlightApplied(e event.Event) bool {
	if data, ok := e.Data.(event.HighlightAppliedData); ok {
		a.statusBar.SetTemporaryMessage("Highlighted with %s", data.Key)
	}
	return false
}

func (a *App) handleHighlightErased(e event.Event) bool {
	a.statusBar.SetTemporaryMessage("Highlight removed")
	return false
}

// handleFocusRequested defers the redraw briefly so a burst of highlight
// commands settles into one refresh before the cursor is shown again.
func (a *App) handleFocusRequested(e event.Event) bool {
	a.focusDebounce.Debounce(focusReturnDelay, a.requestRedraw)
	return false
}

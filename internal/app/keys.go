// internal/app/keys.go
package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/seliware/hilite/internal/logger"
)

// handleKeyEvent maps a key press to a command. Letters are commands here:
// the buffer is edited only through the highlight operations, never by
// typing. Returns whether a redraw is needed.
func (a *App) handleKeyEvent(ev *tcell.EventKey) bool {
	shift := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		close(a.quit)
		return false
	case tcell.KeyEscape:
		if a.editor.HasSelection() {
			a.editor.ClearSelection()
			return true
		}
		close(a.quit)
		return false
	case tcell.KeyCtrlS:
		if err := a.editor.SaveBuffer(); err != nil {
			logger.Errorf("App: save failed: %v", err)
			a.statusBar.SetTemporaryMessage("Save failed: %v", err)
		} else {
			a.statusBar.SetTemporaryMessage("Saved %s", a.editor.GetBuffer().FilePath())
		}
		return true
	case tcell.KeyUp:
		a.move(-1, 0, shift)
		return true
	case tcell.KeyDown:
		a.move(1, 0, shift)
		return true
	case tcell.KeyLeft:
		a.move(0, -1, shift)
		return true
	case tcell.KeyRight:
		a.move(0, 1, shift)
		return true
	case tcell.KeyHome:
		a.editor.Home()
		return true
	case tcell.KeyEnd:
		a.editor.End()
		return true
	case tcell.KeyPgUp:
		a.editor.PageMove(-1)
		return true
	case tcell.KeyPgDn:
		a.editor.PageMove(1)
		return true
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return false
}

// handleRune dispatches single-letter and digit commands.
func (a *App) handleRune(r rune) bool {
	switch {
	case r >= '1' && r <= '9':
		a.applyStyle(int(r - '1'))
		return true
	case r == 'e':
		a.engine.Erase(a.editor)
		return true
	case r == 'v':
		if a.editor.HasSelection() {
			a.editor.ClearSelection()
		} else {
			a.editor.StartOrUpdateSelection()
		}
		return true
	case r == 'y':
		if ok, err := a.clipboard.YankSelection(); err != nil {
			a.statusBar.SetTemporaryMessage("Yank failed: %v", err)
		} else if ok {
			a.statusBar.SetTemporaryMessage("Yanked selection")
		} else {
			a.statusBar.SetTemporaryMessage("Nothing selected")
		}
		return true
	case r == 'p':
		if ok, err := a.clipboard.Paste(); err != nil {
			a.statusBar.SetTemporaryMessage("Paste failed: %v", err)
		} else if !ok {
			a.statusBar.SetTemporaryMessage("Clipboard empty")
		}
		return true
	case r == 't':
		a.engine.SetToggling(!a.engine.Toggling())
		if a.engine.Toggling() {
			a.statusBar.SetTemporaryMessage("Toggle mode on")
		} else {
			a.statusBar.SetTemporaryMessage("Toggle mode off")
		}
		return true
	case r == 'q':
		close(a.quit)
		return false
	}
	return false
}

// applyStyle runs the highlight command for the idx-th configured style.
func (a *App) applyStyle(idx int) {
	keys := a.registry.Keys()
	if idx >= len(keys) {
		a.statusBar.SetTemporaryMessage("No style bound to %d", idx+1)
		return
	}

	tpl, err := a.registry.Resolve(keys[idx])
	if err != nil {
		// Resolve on a listed key can only fail if the registry was
		// mutated; report rather than crash.
		logger.Errorf("App: resolve %q: %v", keys[idx], err)
		a.statusBar.SetTemporaryMessage("%v", err)
		return
	}

	a.activeStyle = idx
	a.engine.Apply(a.editor, tpl)
}

// move steps the cursor, extending the selection when extend is set.
func (a *App) move(deltaLine, deltaCol int, extend bool) {
	if extend {
		a.editor.StartOrUpdateSelection()
	} else if a.editor.HasSelection() {
		a.editor.ClearSelection()
	}
	a.editor.MoveCursor(deltaLine, deltaCol)
	if extend {
		a.editor.StartOrUpdateSelection()
	}
}

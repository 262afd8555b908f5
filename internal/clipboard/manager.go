// Package clipboard copies highlighted or selected text out of the editor.
// It keeps an internal register and can mirror into the system clipboard.
package clipboard

import (
	sysclip "github.com/atotto/clipboard"

	"github.com/seliware/hilite/internal/logger"
	"github.com/seliware/hilite/internal/types"
)

// EditorInterface defines the editor methods the manager needs.
type EditorInterface interface {
	GetSelection() (start, end types.Position, ok bool)
	GetSelectionText() string
	ClearSelection()
	ReplaceSelection(text string)
}

// Manager handles clipboard operations. The internal register always works;
// the system clipboard is best-effort and only consulted when enabled.
type Manager struct {
	editor    EditorInterface
	register  string
	useSystem bool
}

// NewManager creates a clipboard manager. useSystem mirrors yanks into the
// OS clipboard and prefers its contents on paste.
func NewManager(editor EditorInterface, useSystem bool) *Manager {
	return &Manager{editor: editor, useSystem: useSystem}
}

// YankSelection copies the selected text into the register. Returns false
// with no error when nothing is selected.
func (m *Manager) YankSelection() (bool, error) {
	if _, _, ok := m.editor.GetSelection(); !ok {
		return false, nil
	}

	text := m.editor.GetSelectionText()
	m.register = text
	logger.Debugf("clipboard: yanked %d bytes", len(text))

	if m.useSystem {
		if err := sysclip.WriteAll(text); err != nil {
			// Keep the internal register usable even when the OS
			// clipboard is unavailable (headless sessions).
			logger.Warnf("clipboard: system write failed: %v", err)
		}
	}

	m.editor.ClearSelection()
	return true, nil
}

// Paste inserts the register contents at the cursor, replacing any
// selection. Returns false when there is nothing to paste.
func (m *Manager) Paste() (bool, error) {
	text := m.register
	if m.useSystem {
		if sys, err := sysclip.ReadAll(); err == nil && sys != "" {
			text = sys
		} else if err != nil {
			logger.Warnf("clipboard: system read failed: %v", err)
		}
	}
	if text == "" {
		return false, nil
	}

	m.editor.ReplaceSelection(text)
	return true, nil
}

// Contents returns the internal register, mostly for the status bar.
func (m *Manager) Contents() string {
	return m.register
}

// SetSystemEnabled flips system-clipboard mirroring at runtime.
func (m *Manager) SetSystemEnabled(on bool) {
	m.useSystem = on
	logger.Infof("clipboard: system clipboard enabled=%v", on)
}

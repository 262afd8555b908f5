// internal/style/sheet.go
package style

import (
	"strings"
	"sync"

	"github.com/seliware/hilite/internal/logger"
)

// The installed stylesheet is process-wide state, mirroring how an editor
// host attaches one <style> element for all class-mode highlights.
var (
	sheetMu   sync.Mutex
	sheet     string
	installed bool
)

// Install renders the stylesheet for every style in the registry and records
// it as the active sheet. Re-installing replaces the previous sheet, so a
// palette change never leaks stale rules.
func Install(r *Registry) string {
	var b strings.Builder
	for _, key := range r.Keys() {
		color, _ := r.Color(key)
		b.WriteString(".hltr-")
		b.WriteString(key)
		b.WriteString(" {\n  background: ")
		b.WriteString(color)
		b.WriteString(";\n}\n")
	}
	css := b.String()

	sheetMu.Lock()
	sheet = css
	installed = true
	sheetMu.Unlock()

	logger.Debugf("style: installed stylesheet with %d rules", r.Len())
	return css
}

// Remove discards the active sheet. Called on shutdown so a host reloading
// the module starts clean.
func Remove() {
	sheetMu.Lock()
	sheet = ""
	installed = false
	sheetMu.Unlock()
	logger.Debugf("style: removed stylesheet")
}

// Sheet returns the currently installed CSS and whether one is installed.
func Sheet() (string, bool) {
	sheetMu.Lock()
	defer sheetMu.Unlock()
	return sheet, installed
}

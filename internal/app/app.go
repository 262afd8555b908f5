// internal/app/app.go
package app

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/seliware/hilite/internal/buffer"
	"github.com/seliware/hilite/internal/clipboard"
	"github.com/seliware/hilite/internal/config"
	"github.com/seliware/hilite/internal/editor"
	"github.com/seliware/hilite/internal/event"
	"github.com/seliware/hilite/internal/logger"
	"github.com/seliware/hilite/internal/statusbar"
	"github.com/seliware/hilite/internal/style"
	"github.com/seliware/hilite/internal/toggle"
	"github.com/seliware/hilite/internal/tui"
	"github.com/seliware/hilite/internal/utils"
)

// focusReturnDelay is how long after a highlight command the viewport redraw
// is deferred, so a burst of commands settles into one refresh.
const focusReturnDelay = 50 * time.Millisecond

// App encapsulates the core components and main loop.
type App struct {
	tuiManager   *tui.TUI
	editor       *editor.Editor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	engine       *toggle.Engine
	registry     *style.Registry
	clipboard    *clipboard.Manager
	filePath     string

	// Index into registry.Keys() of the last style used, for the status bar.
	activeStyle int

	focusDebounce utils.Debouncer

	quit          chan struct{}
	redrawRequest chan struct{}
}

// NewApp creates and initializes a new application instance. The registry
// is built by the caller, which also owns the stylesheet lifecycle.
func NewApp(cfg *config.Config, registry *style.Registry, filePath string) (*App, error) {
	if registry.Len() == 0 {
		return nil, fmt.Errorf("no usable highlight styles configured")
	}

	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	buf := buffer.NewSliceBuffer()
	if loadErr := buf.Load(filePath); loadErr != nil {
		logger.Debugf("App: loading %q: %v", filePath, loadErr)
	}

	eventManager := event.NewManager()
	ed := editor.New(buf)
	ed.ScrollOff = cfg.Editor.ScrollOff
	ed.SetEventManager(eventManager)

	appInstance := &App{
		tuiManager:    tuiManager,
		editor:        ed,
		statusBar:     statusbar.New(statusbar.DefaultConfig()),
		eventManager:  eventManager,
		engine:        toggle.New(cfg.Highlighter.Toggling, eventManager),
		registry:      registry,
		clipboard:     clipboard.NewManager(ed, cfg.Editor.SystemClipboard),
		filePath:      filePath,
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
	}

	appInstance.subscribeEvents()

	width, height := tuiManager.Size()
	ed.SetViewSize(width, height)

	eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: filePath})

	return appInstance, nil
}

// Run starts the application's main event and drawing loops.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.statusBar.SetTemporaryMessage("hilite - 1-9 apply | e erase | t toggle mode | Ctrl+S save | Ctrl+Q quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, nil)
			if a.editor.GetBuffer().IsModified() {
				log.Println("Warning: Exited with unsaved changes.")
			}
			return nil
		case <-a.redrawRequest:
			w, h := a.tuiManager.Size()
			a.editor.SetViewSize(w, h)
			a.drawEditor()
		}
	}
}

// eventLoop handles TUI events, delegating key events to the key handler.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false
		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
			needsRedraw = true
		case *tcell.EventKey:
			needsRedraw = a.handleKeyEvent(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// drawEditor clears the screen and redraws all components.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	a.tuiManager.Clear()
	tui.DrawBuffer(a.tuiManager, a.editor, a.registry)
	a.statusBar.Draw(screen, width, height)
	tui.DrawCursor(a.tuiManager, a.editor)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	buf := a.editor.GetBuffer()
	a.statusBar.SetFileInfo(buf.FilePath(), buf.IsModified())
	a.statusBar.SetCursorInfo(a.editor.GetCursor())

	keys := a.registry.Keys()
	if a.activeStyle >= 0 && a.activeStyle < len(keys) {
		a.statusBar.SetHighlightInfo(keys[a.activeStyle], a.engine.Toggling())
	}
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}

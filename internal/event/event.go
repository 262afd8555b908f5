// internal/event/event.go
package event

import (
	"github.com/seliware/hilite/internal/types"
)

// Type identifies the kind of event.
type Type int

// Event types dispatched by the editor core and the highlight commands.
const (
	TypeUnknown Type = iota

	TypeBufferModified   // Buffer content changed (insert/delete/replace)
	TypeBufferLoaded     // A file was loaded into the buffer
	TypeBufferSaved      // The buffer was written to disk
	TypeSelectionChanged // Selection anchor or head moved, or selection cleared
	TypeFocusRequested   // A command asked the host to return input focus

	TypeHighlightApplied // Markup was inserted around a span
	TypeHighlightErased  // Markup was stripped from a span

	TypeAppQuit // Application is about to terminate
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData carries the edit coordinates of a buffer change.
type BufferModifiedData struct {
	Edit types.EditInfo
}

// BufferLoadedData identifies the loaded file.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData identifies the saved file.
type BufferSavedData struct {
	FilePath string
}

// SelectionChangedData carries the new selection span; Active is false when
// the selection was cleared.
type SelectionChangedData struct {
	Span   types.Span
	Active bool
}

// HighlightAppliedData names the template that produced the markup.
type HighlightAppliedData struct {
	Key  string
	Span types.Span
}

// HighlightErasedData reports the span whose markup was removed.
type HighlightErasedData struct {
	Span types.Span
}

// FocusRequestedData is empty; the request itself is the payload.
type FocusRequestedData struct{}

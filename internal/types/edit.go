// internal/types/edit.go
package types

// EditInfo describes a buffer mutation for interested listeners (renderer,
// status bar). Start is where the edit began, OldEnd where the replaced text
// ended, NewEnd where the inserted text ends.
type EditInfo struct {
	Start  Position
	OldEnd Position
	NewEnd Position
}

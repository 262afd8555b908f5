// internal/types/position.go
package types

// Position represents a cursor or text position within the buffer.
// Line is the 0-based line index.
// Col is the 0-based column (rune) index within the line.
// Using rune indexes keeps coordinates stable for non-ASCII text.
type Position struct {
	Line int
	Col  int // Rune index
}

// Before reports whether p is lexicographically before other (by line, then column).
func (p Position) Before(other Position) bool {
	return p.Line < other.Line || (p.Line == other.Line && p.Col < other.Col)
}

// Span is a region of buffer text. Start is never after End once normalized;
// call Normalize before relying on the ordering.
type Span struct {
	Start Position
	End   Position
}

// IsEmpty reports whether the span covers no text.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Normalize returns the span with Start and End swapped if they were reversed.
func (s Span) Normalize() Span {
	if s.End.Before(s.Start) {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

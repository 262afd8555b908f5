// internal/buffer/slice_buffer.go
package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/seliware/hilite/internal/types"
)

// SliceBuffer is a line-slice backed Buffer. Positions use rune columns;
// every public operation clamps out-of-range coordinates instead of failing.
type SliceBuffer struct {
	lines    [][]byte
	filePath string
	modified bool
}

// NewSliceBuffer creates an empty SliceBuffer with a single empty line.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		lines:    [][]byte{[]byte("")},
		modified: false,
	}
}

// NewSliceBufferFromString creates a buffer holding the given text.
// Useful for tests and for hosting the toggle engine over in-memory text.
func NewSliceBufferFromString(text string) *SliceBuffer {
	lines := bytes.Split([]byte(text), []byte("\n"))
	copied := make([][]byte, len(lines))
	for i, l := range lines {
		lineCopy := make([]byte, len(l))
		copy(lineCopy, l)
		copied[i] = lineCopy
	}
	if len(copied) == 0 {
		copied = [][]byte{[]byte("")}
	}
	return &SliceBuffer{lines: copied}
}

// Load reads a file into the buffer, replacing existing content.
// A nonexistent path yields an empty buffer bound to that path.
func (sb *SliceBuffer) Load(filePath string) error {
	sb.modified = false

	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.lines = [][]byte{[]byte("")}
			sb.filePath = filePath
			return nil
		}
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	newLines := [][]byte{}
	for scanner.Scan() {
		line := scanner.Bytes()
		lineCopy := make([]byte, len(line))
		copy(lineCopy, line)
		newLines = append(newLines, lineCopy)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file '%s': %w", filePath, err)
	}
	if len(newLines) == 0 {
		newLines = append(newLines, []byte(""))
	}
	sb.lines = newLines
	sb.filePath = filePath
	return nil
}

// Lines returns the underlying line slice.
func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

// LineCount returns the number of lines in the buffer.
func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

// Line returns the bytes of line index.
func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// Bytes returns the whole buffer joined with newlines.
func (sb *SliceBuffer) Bytes() []byte {
	var buf bytes.Buffer
	for i, line := range sb.lines {
		buf.Write(line)
		if i < len(sb.lines)-1 {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

// Save writes the buffer content to the stored filePath, or to filePath if
// non-empty.
func (sb *SliceBuffer) Save(filePath string) error {
	path := sb.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	if err := os.WriteFile(path, sb.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	sb.filePath = path
	sb.modified = false
	return nil
}

// IsModified returns true if the buffer has unsaved changes.
func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

// FilePath returns the path the buffer was loaded from or saved to.
func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

// --- Modification ---

// Insert inserts text at a given position. Handles single and multi-line text.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) (types.EditInfo, error) {
	if len(text) == 0 {
		return types.EditInfo{}, nil
	}

	validPos, byteOffset := sb.clampPosition(pos)
	sb.modified = true

	currentLine := sb.lines[validPos.Line]
	insertLines := bytes.Split(text, []byte("\n"))

	tail := make([]byte, len(currentLine[byteOffset:]))
	copy(tail, currentLine[byteOffset:])

	sb.lines[validPos.Line] = append(currentLine[:byteOffset], insertLines[0]...)

	newEnd := types.Position{
		Line: validPos.Line,
		Col:  validPos.Col + utf8.RuneCount(insertLines[0]),
	}

	if len(insertLines) > 1 {
		newLines := make([][]byte, len(insertLines)-1)
		for i := 1; i < len(insertLines); i++ {
			lineCopy := make([]byte, len(insertLines[i]))
			copy(lineCopy, insertLines[i])
			newLines[i-1] = lineCopy
		}
		last := len(newLines) - 1
		newEnd = types.Position{
			Line: validPos.Line + len(newLines),
			Col:  utf8.RuneCount(newLines[last]),
		}
		newLines[last] = append(newLines[last], tail...)

		if validPos.Line+1 > len(sb.lines) {
			sb.lines = append(sb.lines, newLines...)
		} else {
			sb.lines = append(sb.lines[:validPos.Line+1], append(newLines, sb.lines[validPos.Line+1:]...)...)
		}
	} else {
		sb.lines[validPos.Line] = append(sb.lines[validPos.Line], tail...)
	}

	return types.EditInfo{Start: validPos, OldEnd: validPos, NewEnd: newEnd}, nil
}

// Delete removes text within a given range (start inclusive, end exclusive).
func (sb *SliceBuffer) Delete(start, end types.Position) (types.EditInfo, error) {
	// Normalize ordering first.
	if end.Before(start) {
		start, end = end, start
	}

	vStart, startOffset := sb.clampPosition(start)
	vEnd, endOffset := sb.clampPosition(end)

	if vStart == vEnd {
		return types.EditInfo{}, nil
	}

	sb.modified = true
	startLineBytes := sb.lines[vStart.Line]

	if vStart.Line == vEnd.Line {
		// Deletion within a single line.
		if endOffset > len(startLineBytes) {
			endOffset = len(startLineBytes)
		}
		if startOffset > endOffset {
			startOffset = endOffset
		}
		sb.lines[vStart.Line] = append(startLineBytes[:startOffset], startLineBytes[endOffset:]...)
	} else {
		// Deletion spans multiple lines: keep the head of the start line and
		// the tail of the end line, drop everything between.
		endLineBytes := sb.lines[vEnd.Line]
		sb.lines[vStart.Line] = append(startLineBytes[:startOffset], endLineBytes[endOffset:]...)

		firstLineToRemove := vStart.Line + 1
		lastLineToRemove := vEnd.Line
		if firstLineToRemove <= lastLineToRemove && lastLineToRemove < len(sb.lines) {
			if lastLineToRemove+1 >= len(sb.lines) {
				sb.lines = sb.lines[:firstLineToRemove]
			} else {
				sb.lines = append(sb.lines[:firstLineToRemove], sb.lines[lastLineToRemove+1:]...)
			}
		}
	}

	// Keep the one-empty-line convention.
	if len(sb.lines) == 0 {
		sb.lines = [][]byte{[]byte("")}
	}

	return types.EditInfo{Start: vStart, OldEnd: vEnd, NewEnd: vStart}, nil
}

// clampPosition clamps pos into the buffer and returns the position together
// with its byte offset within the line.
func (sb *SliceBuffer) clampPosition(pos types.Position) (types.Position, int) {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(sb.lines) {
		pos.Line = len(sb.lines) - 1
		if pos.Line < 0 {
			sb.lines = append(sb.lines, []byte(""))
			pos.Line = 0
		}
	}

	line := sb.lines[pos.Line]
	if pos.Col < 0 {
		pos.Col = 0
	}
	runeCount := utf8.RuneCount(line)
	if pos.Col > runeCount {
		pos.Col = runeCount
	}

	byteOffset := 0
	for i := 0; i < pos.Col; i++ {
		_, size := utf8.DecodeRune(line[byteOffset:])
		byteOffset += size
	}
	return pos, byteOffset
}

// Ensure SliceBuffer satisfies the Buffer interface.
var _ Buffer = (*SliceBuffer)(nil)

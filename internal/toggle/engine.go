// Package toggle implements the highlight commands: wrapping a located span
// in mark tags, unwrapping the region under the cursor, and the
// adjacent-markup merge that keeps repeated toggling from stacking tags.
package toggle

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/seliware/hilite/internal/event"
	"github.com/seliware/hilite/internal/locate"
	"github.com/seliware/hilite/internal/logger"
	"github.com/seliware/hilite/internal/style"
	"github.com/seliware/hilite/internal/types"
)

// Editor is the host surface the engine edits through. It extends the
// locator's read surface with the mutation operations.
type Editor interface {
	locate.Editor
	SetCursor(pos types.Position)
	GetRange(start, end types.Position) string
	ReplaceRange(text string, start, end types.Position)
	ReplaceSelection(text string)
	Focus()
}

// Opening tags are matched loosely on their attribute form so that regions
// produced by either markup mode, or edited by hand, still strip.
var (
	markStyleRe = regexp.MustCompile(`<mark style[^>]*>`)
	markClassRe = regexp.MustCompile(`<mark class[^>]*>`)
	markCloseRe = regexp.MustCompile(`</mark>`)
)

// Engine applies and erases highlight markup on an editor. Toggling mode
// changes what happens on already-marked text: with it on, applying over a
// marked span unwraps instead of nesting, and erasing reselects the stripped
// text so the next keypress can re-wrap it.
type Engine struct {
	toggling bool
	events   *event.Manager
}

// New creates an engine. events may be nil when no host listens.
func New(toggling bool, events *event.Manager) *Engine {
	return &Engine{toggling: toggling, events: events}
}

// Toggling reports whether toggling mode is on.
func (en *Engine) Toggling() bool {
	return en.toggling
}

// SetToggling switches toggling mode.
func (en *Engine) SetToggling(on bool) {
	en.toggling = on
}

// Erase removes mark tags from the located span: the user's selection when
// one exists, otherwise the markup region enclosing the cursor on the current
// line. The tags are stripped and the bare text written back in place.
//
// In toggling mode the stripped text stays addressed afterwards: a user
// selection is re-selected over the stripped text, an auto-located region
// leaves the cursor at its end. Outside toggling mode an auto-located region
// collapses the cursor back to the region start.
func (en *Engine) Erase(ed Editor) {
	sel := locate.MarkRegion(ed, true)
	from, to := sel.Span.Start, sel.Span.End

	stripped := stripTags(sel.Text)
	ed.ReplaceRange(stripped, from, to)

	if en.toggling && stripped != "" {
		newTo := endOf(from, stripped)
		if !sel.Auto {
			ed.SetSelection(from, newTo)
		} else {
			ed.SetCursor(newTo)
		}
	} else if !en.toggling && sel.Auto {
		ed.SetCursor(from)
	}

	en.dispatch(event.TypeHighlightErased, event.HighlightErasedData{Span: sel.Span})
	ed.Focus()
}

// Apply wraps the located span in tpl's markup: the user's selection when
// one exists, else (in toggling mode) the markup region enclosing the
// cursor, else the word under the cursor.
//
// In toggling mode a span that already carries mark tags is unwrapped
// instead, so the same key flips a highlight on and off. Outside toggling
// mode the span is always wrapped, except when it sits exactly inside an
// identical tag pair; then the existing pair is removed rather than nested
// (see merged).
func (en *Engine) Apply(ed Editor, tpl style.Template) {
	// The word expansion stops at the space inside an opening tag's
	// attributes, so a bare caret inside markup would capture only a tag
	// fragment. Probe for the enclosing region first and select it, so the
	// strip branch below sees the whole tag pair.
	if en.toggling && !ed.HasSelection() {
		if probe := locate.MarkRegion(ed, false); strings.Contains(probe.Text, "<mark") {
			ed.SetSelection(probe.Span.Start, probe.Span.End)
		}
	}

	sel := locate.Word(ed)
	from, to := sel.Span.Start, sel.Span.End
	text := sel.Text

	plen := utf8.RuneCountInString(tpl.Prefix)
	slen := utf8.RuneCountInString(tpl.Suffix)
	tlen := utf8.RuneCountInString(text)

	if en.toggling {
		if strings.Contains(text, "<mark") {
			stripped := stripTags(text)
			ed.ReplaceSelection(stripped)
			// The reselect stays on the starting line even when the
			// stripped text spans lines; the selection clamp bounds the
			// column. Only Erase walks line breaks.
			ed.SetSelection(from, types.Position{
				Line: from.Line,
				Col:  from.Col + utf8.RuneCountInString(stripped),
			})
			en.dispatch(event.TypeHighlightErased, event.HighlightErasedData{Span: sel.Span})
			ed.Focus()
			return
		}

		ed.ReplaceSelection(tpl.Prefix + text + tpl.Suffix)
		if text != "" && !sel.Auto {
			ed.SetSelection(from, types.Position{
				Line: from.Line + tpl.LineDelta,
				Col:  from.Col + plen + tlen + slen,
			})
		} else {
			// Empty span: park the caret between the tags so the user
			// can type into the highlight.
			ed.SetCursor(types.Position{
				Line: from.Line + tpl.LineDelta,
				Col:  from.Col + plen,
			})
		}
		en.applied(tpl, sel.Span)
		ed.Focus()
		return
	}

	cursorOffset := plen
	if text != "" {
		cursorOffset = plen + slen + 1
	}

	if en.merged(ed, tpl, sel, cursorOffset) {
		ed.Focus()
		return
	}

	ed.ReplaceSelection(tpl.Prefix + text + tpl.Suffix)
	ed.SetCursor(types.Position{
		Line: from.Line + tpl.LineDelta,
		Col:  to.Col + cursorOffset,
	})
	en.applied(tpl, sel.Span)
	ed.Focus()
}

// merged detects a span wrapped exactly by tpl's tag pair and, when found,
// removes the pair instead of nesting a new one. The check reads the prefix
// width before the span and the suffix width after it: the text after must be
// the closing tag and the character before must be the tail of an opening
// tag. Returns whether it performed the removal.
func (en *Engine) merged(ed Editor, tpl style.Template, sel locate.Selection, cursorOffset int) bool {
	if sel.Text == "" {
		return false
	}
	from, to := sel.Span.Start, sel.Span.End
	plen := utf8.RuneCountInString(tpl.Prefix)
	slen := utf8.RuneCountInString(tpl.Suffix)

	preStart := types.Position{Line: from.Line - tpl.LineDelta, Col: from.Col - plen}
	sufEnd := types.Position{Line: to.Line + tpl.LineDelta, Col: to.Col + slen}

	pre := ed.GetRange(preStart, from)
	suf := ed.GetRange(to, sufEnd)

	if suf != strings.TrimRightFunc(tpl.Suffix, unicode.IsSpace) {
		return false
	}
	if lastNonSpaceRune(pre) != lastRune(strings.TrimLeftFunc(tpl.Prefix, unicode.IsSpace)) {
		return false
	}

	logger.Debugf("toggle: removing enclosing %q pair at %d:%d", tpl.Key, from.Line, from.Col)
	ed.ReplaceRange(sel.Text, preStart, sufEnd)
	ed.SetCursor(types.Position{
		Line: from.Line - tpl.LineDelta,
		Col:  to.Col - cursorOffset + 8,
	})
	en.dispatch(event.TypeHighlightErased, event.HighlightErasedData{Span: sel.Span})
	return true
}

// stripTags removes every mark tag from text, leaving the content.
func stripTags(text string) string {
	text = markStyleRe.ReplaceAllString(text, "")
	text = markClassRe.ReplaceAllString(text, "")
	return markCloseRe.ReplaceAllString(text, "")
}

// endOf returns the position just past text when it is inserted at from.
func endOf(from types.Position, text string) types.Position {
	breaks := strings.Count(text, "\n")
	if breaks == 0 {
		return types.Position{Line: from.Line, Col: from.Col + utf8.RuneCountInString(text)}
	}
	last := text[strings.LastIndexByte(text, '\n')+1:]
	return types.Position{Line: from.Line + breaks, Col: utf8.RuneCountInString(last)}
}

func lastRune(s string) rune {
	r, size := utf8.DecodeLastRuneInString(s)
	if size == 0 {
		return 0
	}
	return r
}

func lastNonSpaceRune(s string) rune {
	return lastRune(strings.TrimRightFunc(s, unicode.IsSpace))
}

func (en *Engine) applied(tpl style.Template, span types.Span) {
	en.dispatch(event.TypeHighlightApplied, event.HighlightAppliedData{Key: tpl.Key, Span: span})
}

func (en *Engine) dispatch(eventType event.Type, data interface{}) {
	if en.events != nil {
		en.events.Dispatch(eventType, data)
	}
}

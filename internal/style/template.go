// internal/style/template.go
package style

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Mode selects how a template renders its opening tag.
type Mode string

const (
	// ModeCSSClass produces <mark class="hltr-{key}">; the color lives in
	// the installed stylesheet.
	ModeCSSClass Mode = "css-class"
	// ModeInlineStyle produces <mark style="background: {color};">.
	ModeInlineStyle Mode = "inline-style"
)

// ParseMode maps a config string onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCSSClass, ModeInlineStyle:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown style mode %q", s)
}

// Template is one named highlight style: the prefix/suffix markup pair that
// wraps a span. LineDelta accounts for templates whose prefix or suffix spans
// lines; both current modes produce single-line tags, so it is always 0, but
// the toggle engine's coordinate math keeps it generic.
type Template struct {
	Key       string
	Prefix    string
	Suffix    string
	LineDelta int
}

// Registry holds the ordered set of named highlight styles. It is built once
// from configuration at activation; order drives menus and key bindings.
type Registry struct {
	mode   Mode
	order  []string
	colors map[string]string
}

// NewRegistry creates an empty registry producing markup in the given mode.
func NewRegistry(mode Mode) *Registry {
	return &Registry{
		mode:   mode,
		colors: make(map[string]string),
	}
}

// Add registers a named color at the end of the order. The color must be a
// hex value (#rgb, #rrggbb, or #rrggbbaa); anything else is a configuration
// error. Re-adding a name updates its color in place.
func (r *Registry) Add(name, color string) error {
	if _, _, err := ParseColor(color); err != nil {
		return fmt.Errorf("style %q: %w", name, err)
	}
	key := Keyify(name)
	if key == "" {
		return fmt.Errorf("style name %q reduces to an empty key", name)
	}
	if _, exists := r.colors[key]; !exists {
		r.order = append(r.order, key)
	}
	r.colors[key] = color
	return nil
}

// Mode returns the registry's markup mode.
func (r *Registry) Mode() Mode {
	return r.mode
}

// Keys returns the style keys in configuration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Len returns the number of registered styles.
func (r *Registry) Len() int {
	return len(r.order)
}

// Color returns the configured hex color for key.
func (r *Registry) Color(key string) (string, bool) {
	c, ok := r.colors[key]
	return c, ok
}

// RGB returns the color for key with its alpha dropped, for hosts that can't
// blend (terminal cells).
func (r *Registry) RGB(key string) (colorful.Color, bool) {
	hex, ok := r.colors[key]
	if !ok {
		return colorful.Color{}, false
	}
	c, _, err := ParseColor(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// Resolve builds the Template for key. A key that is not configured is a hard
// error: silently substituting a default color would be a worse user-visible
// failure than reporting the miss.
func (r *Registry) Resolve(key string) (Template, error) {
	color, ok := r.colors[key]
	if !ok {
		return Template{}, fmt.Errorf("highlight style %q is not configured", key)
	}

	var prefix string
	switch r.mode {
	case ModeInlineStyle:
		prefix = fmt.Sprintf(`<mark style="background: %s;">`, color)
	default:
		prefix = fmt.Sprintf(`<mark class="hltr-%s">`, key)
	}

	return Template{
		Key:       key,
		Prefix:    prefix,
		Suffix:    "</mark>",
		LineDelta: 0,
	}, nil
}

// Keyify reduces a display name to the identifier used in class names:
// lowercase, spaces collapsed to hyphens.
func Keyify(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(key, " ", "-")
}

// ParseColor parses a hex color with optional alpha. Returns the opaque base
// color and the alpha in [0,1] (1 when absent).
func ParseColor(hex string) (colorful.Color, float64, error) {
	s := strings.TrimSpace(hex)
	alpha := 1.0
	if len(s) == 9 && s[0] == '#' {
		var a uint8
		if _, err := fmt.Sscanf(s[7:9], "%02x", &a); err != nil {
			return colorful.Color{}, 0, fmt.Errorf("invalid alpha in color %q", hex)
		}
		alpha = float64(a) / 255.0
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, 0, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c, alpha, nil
}

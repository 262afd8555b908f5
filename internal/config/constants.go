// internal/config/constants.go
package config

// AppName is used for the user config directory (e.g. ~/.config/hilite).
const AppName = "hilite"

// DefaultConfigFileName is the config file looked up under the app directory.
const DefaultConfigFileName = "config.toml"

// Editor defaults.
const (
	DefaultTabWidth  = 4
	DefaultScrollOff = 3
	SystemClipboard  = false
	StatusBarHeight  = 1
)

// Highlighter defaults.
const (
	DefaultStyleMode = "css-class"
	DefaultToggling  = true
)

// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/seliware/hilite/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger      logger.Config     `toml:"logger"`
	Editor      EditorConfig      `toml:"editor"`
	Highlighter HighlighterConfig `toml:"highlighter"`
}

// EditorConfig holds host-editor settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	ScrollOff       int  `toml:"scroll_off"`
	SystemClipboard bool `toml:"system_clipboard"`
	StatusBarHeight int  `toml:"status_bar_height"`
}

// HighlighterConfig holds the highlight template settings.
type HighlighterConfig struct {
	// StyleMode selects how templates render markup: "css-class" produces
	// <mark class="hltr-{key}">, "inline-style" produces
	// <mark style="background: {color};">.
	StyleMode string `toml:"style_mode"`

	// Toggling makes re-applying a highlight on marked text erase the markup
	// instead of nesting another layer.
	Toggling bool `toml:"toggling"`

	// Styles is the ordered set of named highlight colors. Order matters:
	// it drives menu order and the 1..9 key bindings of the host.
	Styles []StyleConfig `toml:"styles"`
}

// StyleConfig is one named highlight color.
type StyleConfig struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values, including the
// default highlight palette.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
		},
		Highlighter: HighlighterConfig{
			StyleMode: DefaultStyleMode,
			Toggling:  DefaultToggling,
			Styles:    DefaultPalette(),
		},
	}
}

// DefaultPalette returns the built-in ordered highlight colors. The RGBA hex
// values carry a translucent alpha so highlights don't obscure text.
func DefaultPalette() []StyleConfig {
	return []StyleConfig{
		{Name: "pink", Color: "#FFB8EBA6"},
		{Name: "red", Color: "#FF5582A6"},
		{Name: "orange", Color: "#FFB86CA6"},
		{Name: "yellow", Color: "#FFF3A3A6"},
		{Name: "green", Color: "#BBFABBA6"},
		{Name: "cyan", Color: "#ABF7F7A6"},
		{Name: "blue", Color: "#ADCCFFA6"},
		{Name: "purple", Color: "#D2B3FFA6"},
		{Name: "grey", Color: "#CACFD9A6"},
	}
}

// loadFromFile attempts to load configuration from a TOML file.
// A missing file is not an error; the caller keeps its defaults.
func loadFromFile(filePath string, verbose bool) (*Config, bool, error) {
	cfg := &Config{}
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		if verbose {
			logger.Debugf("Config file not found: %s", filePath)
		}
		return cfg, false, nil
	}
	if err != nil {
		return cfg, false, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return cfg, false, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 && verbose {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	return cfg, true, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}

	if c.Highlighter.StyleMode != "css-class" && c.Highlighter.StyleMode != "inline-style" {
		c.Highlighter.StyleMode = defaults.Highlighter.StyleMode
	}
	// An empty palette would make every command a configuration error, so
	// fall back to the built-in colors.
	if len(c.Highlighter.Styles) == 0 {
		c.Highlighter.Styles = defaults.Highlighter.Styles
	}
}

// LoadConfig orchestrates loading defaults, file, applying flags, and
// validation. It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		effectivePath := configFilePath
		if effectivePath == "" {
			configDir, err := os.UserConfigDir()
			if err == nil {
				effectivePath = filepath.Join(configDir, AppName, DefaultConfigFileName)
			}
		}

		if effectivePath != "" {
			fileCfg, found, err := loadFromFile(effectivePath, false)
			if err != nil {
				loadErr = err
			} else if found {
				cfg.merge(fileCfg)
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg)
		}

		cfg.validate()
		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// merge applies the set fields of a file-loaded config over the defaults.
func (c *Config) merge(fileCfg *Config) {
	if fileCfg.Logger.LogLevel != "" {
		c.Logger = fileCfg.Logger
	}
	if fileCfg.Editor.TabWidth > 0 {
		c.Editor.TabWidth = fileCfg.Editor.TabWidth
	}
	if fileCfg.Editor.ScrollOff > 0 {
		c.Editor.ScrollOff = fileCfg.Editor.ScrollOff
	}
	c.Editor.SystemClipboard = fileCfg.Editor.SystemClipboard

	if fileCfg.Highlighter.StyleMode != "" {
		c.Highlighter.StyleMode = fileCfg.Highlighter.StyleMode
	}
	c.Highlighter.Toggling = fileCfg.Highlighter.Toggling
	if len(fileCfg.Highlighter.Styles) > 0 {
		c.Highlighter.Styles = fileCfg.Highlighter.Styles
	}
}

// Get returns the loaded application configuration. Panics if LoadConfig
// wasn't called first; that is a programming error, not a runtime condition.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}

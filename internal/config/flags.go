// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
)

// Flags holds values parsed from command-line flags.
// Pointers distinguish unset flags from zero-value flags.
type Flags struct {
	ConfigFilePath  *string
	LogLevel        *string
	LogFilePath     *string
	StyleMode       *string
	Toggling        *bool
	SystemClipboard *bool
}

// DefineFlags sets up the command-line flags and associates them with the
// Flags struct fields.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file - Overrides config file")
	f.StyleMode = flag.String("style-mode", "", "Markup style mode (css-class, inline-style) - Overrides config file")
	f.Toggling = flag.Bool("toggle", DefaultToggling, "Re-applying a highlight on marked text erases it - Overrides config file")
	f.SystemClipboard = flag.Bool("system-clipboard", false, "Yank to the system clipboard as well - Overrides config file")
}

// ParseFlags parses the defined command-line flags into the Flags struct.
// It returns the remaining non-flag arguments (e.g., the file path).
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides updates the Config struct with values from flags *if* they
// were set on the command line.
func (f *Flags) ApplyOverrides(cfg *Config) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != nil && *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			if f.LogFilePath != nil {
				cfg.Logger.LogFilePath = *f.LogFilePath
			}
		case "style-mode":
			if f.StyleMode != nil && *f.StyleMode != "" {
				cfg.Highlighter.StyleMode = *f.StyleMode
			}
		case "toggle":
			if f.Toggling != nil {
				cfg.Highlighter.Toggling = *f.Toggling
			}
		case "system-clipboard":
			if f.SystemClipboard != nil {
				cfg.Editor.SystemClipboard = *f.SystemClipboard
			}
		}
	})
}

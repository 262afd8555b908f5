// cmd/hilite/main.go
package main

import (
	"io"
	stlog "log"
	"os"

	"github.com/seliware/hilite/internal/app"
	"github.com/seliware/hilite/internal/config"
	"github.com/seliware/hilite/internal/logger"
	"github.com/seliware/hilite/internal/style"
)

func main() {
	flags := &config.Flags{}
	args := flags.ParseFlags()

	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	configPath := ""
	if flags.ConfigFilePath != nil {
		configPath = *flags.ConfigFilePath
	}
	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// No log file configured means logging is discarded; the terminal is
	// owned by the TUI, so stderr is not an option.
	var logOutput io.Writer
	if cfg.Logger.LogFilePath != "" {
		logFile, err := os.OpenFile(cfg.Logger.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
		}
		defer logFile.Close()
		logOutput = logFile
	}
	logger.Init(cfg.Logger.Level(), logOutput)

	logger.Infof("Starting hilite...")
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	// Install the stylesheet for class-mode markup before the UI comes up,
	// and tear it down on exit.
	mode, err := style.ParseMode(cfg.Highlighter.StyleMode)
	if err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}
	registry := style.NewRegistry(mode)
	for _, sc := range cfg.Highlighter.Styles {
		if err := registry.Add(sc.Name, sc.Color); err != nil {
			logger.Warnf("Skipping style: %v", err)
		}
	}
	style.Install(registry)
	defer style.Remove()

	hiliteApp, err := app.NewApp(cfg, registry, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := hiliteApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("hilite finished.")
}

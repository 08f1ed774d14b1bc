package main

import (
	"fmt"
	"log/slog"

	"github.com/d2verb/edit/internal/config"
	"github.com/d2verb/edit/internal/logging"
)

// loadConfig loads the user's config file, falling back to defaults when it
// doesn't exist.
func loadConfig() (config.Config, *config.Paths, error) {
	paths, err := config.GetPaths()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("get paths: %w", err)
	}
	cfg, err := config.Load(paths.Config)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, paths, nil
}

// editorOverride returns the editor command to use: the --editor flag
// first, then the config file. Empty means library resolution
// ($VISUAL/$EDITOR and the platform defaults).
func editorOverride(flagValue string, cfg config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.Editor
}

// newLogger opens the rotating log file. Logging never blocks an edit: on
// failure a discard logger is returned.
func newLogger(cfg config.Config, paths *config.Paths) (*slog.Logger, func()) {
	if err := paths.EnsureDirectories(); err != nil {
		return logging.Nop(), func() {}
	}
	w := logging.NewRotatingWriter(logging.Config{
		Path:       paths.LogFile,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	return logging.NewLogger(w), func() { w.Close() }
}

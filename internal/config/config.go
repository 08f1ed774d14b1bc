// Package config handles edt path and file configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Paths holds common paths used by edt.
type Paths struct {
	Home    string // ~/.edt
	Config  string // ~/.edt/config.yaml
	Logs    string // ~/.edt/logs
	LogFile string // ~/.edt/logs/edt.log
}

// GetPaths returns the paths for the current user.
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	edtHome := filepath.Join(home, ".edt")
	logsDir := filepath.Join(edtHome, "logs")
	return &Paths{
		Home:    edtHome,
		Config:  filepath.Join(edtHome, "config.yaml"),
		Logs:    logsDir,
		LogFile: filepath.Join(logsDir, "edt.log"),
	}, nil
}

// EnsureDirectories creates the required directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.Logs} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// Log holds log rotation settings.
type Log struct {
	MaxSizeMB  int  `yaml:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days"`
	Compress   bool `yaml:"compress"`
}

// Config is the on-disk configuration.
type Config struct {
	// Editor is a persistent editor override, e.g. "code -w".
	// Empty means resolve from $VISUAL/$EDITOR and platform defaults.
	Editor string `yaml:"editor"`
	Log    Log    `yaml:"log"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Log: Log{
			MaxSizeMB:  10,
			MaxBackups: 2,
			MaxAgeDays: 14,
			Compress:   true,
		},
	}
}

// Load reads the config file at path. A missing file yields the defaults;
// a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

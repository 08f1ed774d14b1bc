package main

import (
	"fmt"
	"os"

	"github.com/d2verb/edit"
)

type EditCmd struct {
	Path   string `arg:"" help:"File to open" type:"path" predictor:"file"`
	Editor string `help:"Editor command to use instead of $VISUAL/$EDITOR" predictor:"editor"`
}

func (c *EditCmd) Run() error {
	cfg, paths, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(c.Path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", c.Path)
		}
		return fmt.Errorf("check file: %w", err)
	}

	logger, closeLog := newLogger(cfg, paths)
	defer closeLog()

	opts := []edit.Option{edit.WithLogger(logger)}
	if ov := editorOverride(c.Editor, cfg); ov != "" {
		opts = append(opts, edit.WithEditor(ov))
	}

	if err := edit.EditFile(c.Path, opts...); err != nil {
		logger.Error("edit failed", "path", c.Path, "error", err)
		return err
	}
	logger.Info("edited file", "path", c.Path)
	return nil
}

package main

import (
	"fmt"

	"github.com/d2verb/edit"
	"github.com/d2verb/edit/internal/ui"
)

type WhichCmd struct {
	Editor string `help:"Editor command to use instead of $VISUAL/$EDITOR" predictor:"editor"`
}

func (c *WhichCmd) Run() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	cmd, err := edit.ResolveEditor(editorOverride(c.Editor, cfg))
	if err != nil {
		return err
	}

	fmt.Fprintln(ui.Output, ui.FormatCommand(cmd.String()))
	return nil
}

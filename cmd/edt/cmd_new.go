package main

import (
	"fmt"
	"os"

	"github.com/d2verb/edit"
	"github.com/d2verb/edit/internal/ui"
	"github.com/mattn/go-isatty"
)

type NewCmd struct {
	Template string `help:"File whose contents seed the editor" type:"existingfile" predictor:"file"`
	Out      string `short:"o" help:"Write the result to a file instead of stdout" type:"path" predictor:"file"`
	Suffix   string `help:"Scratch file suffix to hint syntax highlighting (e.g. .md)" default:".txt"`
	Editor   string `help:"Editor command to use instead of $VISUAL/$EDITOR" predictor:"editor"`
}

func (c *NewCmd) Run() error {
	cfg, paths, err := loadConfig()
	if err != nil {
		return err
	}

	var initial []byte
	if c.Template != "" {
		initial, err = os.ReadFile(c.Template)
		if err != nil {
			return fmt.Errorf("read template: %w", err)
		}
	}

	logger, closeLog := newLogger(cfg, paths)
	defer closeLog()

	opts := []edit.Option{
		edit.WithPattern("edt-*" + c.Suffix),
		edit.WithLogger(logger),
	}
	if ov := editorOverride(c.Editor, cfg); ov != "" {
		opts = append(opts, edit.WithEditor(ov))
	}

	if isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintln(os.Stderr, ui.Dim("Waiting for your editor to close..."))
	}

	text, err := edit.Edit(string(initial), opts...)
	if err != nil {
		logger.Error("compose failed", "error", err)
		return err
	}
	logger.Info("composed text", "bytes", len(text))

	if c.Out != "" {
		if err := os.WriteFile(c.Out, []byte(text), 0644); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		ui.PrintSuccess("Saved to: " + c.Out)
		return nil
	}

	fmt.Fprint(ui.Output, text)
	return nil
}

package main

import (
	"errors"

	"github.com/d2verb/edit"
)

// Exit codes for CLI commands.
const (
	exitSuccess      = 0
	exitError        = 1
	exitNoEditor     = 2
	exitEditorFailed = 3
)

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	var noEditor *edit.NoEditorError
	var exitErr *edit.ExitError

	switch {
	case err == nil:
		return exitSuccess
	case errors.As(err, &noEditor):
		return exitNoEditor
	case errors.As(err, &exitErr):
		return exitEditorFailed
	default:
		return exitError
	}
}

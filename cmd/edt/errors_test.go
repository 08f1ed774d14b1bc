package main

import (
	"errors"
	"testing"

	"github.com/d2verb/edit"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, exitSuccess},
		{"generic error", errors.New("boom"), exitError},
		{"no editor", &edit.NoEditorError{Platform: "unix"}, exitNoEditor},
		{"editor failed", &edit.ExitError{Command: "vim", Code: 1}, exitEditorFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

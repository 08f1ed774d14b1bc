package main

import (
	"strings"
	"testing"
)

func TestWhichCmd_RunPrintsResolvedEditor(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "myeditor --wait")

	buf := captureUI(t)

	cmd := &WhichCmd{}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "myeditor --wait" {
		t.Errorf("output = %q, want %q", got, "myeditor --wait")
	}
}

func TestWhichCmd_RunFlagWinsOverEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VISUAL", "visual-ed")
	t.Setenv("EDITOR", "editor-ed")

	buf := captureUI(t)

	cmd := &WhichCmd{Editor: "flag-ed"}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "flag-ed" {
		t.Errorf("output = %q, want %q", got, "flag-ed")
	}
}

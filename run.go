package edit

import (
	"errors"
	"os"
	"os/exec"
)

// runEditor launches cmd with path appended as the final argument and
// blocks until the editor exits. The child inherits stdin, stdout, and
// stderr so terminal editors can take over the screen. The editor is fully
// trusted; nothing is sandboxed and a failed edit is never retried.
func runEditor(cmd Command, path string) error {
	args := append(append([]string{}, cmd.Args...), path)
	c := exec.Command(cmd.Name, args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	err := c.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Command: cmd.String(), Code: exitErr.ExitCode()}
	}
	return &SpawnError{Command: cmd.String(), Err: err}
}

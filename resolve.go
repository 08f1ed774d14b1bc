package edit

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/anmitsu/go-shlex"
)

// Command is a resolved editor invocation: the executable name or path plus
// any fixed leading arguments. The launcher appends the file being edited
// as the final argument. A Command is immutable once resolved.
type Command struct {
	Name string
	Args []string
}

// String returns the command as a single line for diagnostics.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// envVars are checked in order when no override is supplied.
var envVars = []string{"VISUAL", "EDITOR"}

// DefaultEditor resolves the editor that would be used when the caller
// supplies no override: $VISUAL, then $EDITOR, then the platform fallback
// table.
func DefaultEditor() (Command, error) {
	return ResolveEditor("")
}

// ResolveEditor resolves the editor command to run. Resolution order:
// the override, $VISUAL, $EDITOR, then the first platform fallback
// candidate found on the search path. Override and environment values are
// split into words with shell-like quoting so editor paths containing
// spaces work; empty or whitespace-only values are treated as absent.
func ResolveEditor(override string) (Command, error) {
	if strings.TrimSpace(override) != "" {
		return parseCommand(override)
	}
	for _, name := range envVars {
		if v := os.Getenv(name); strings.TrimSpace(v) != "" {
			return parseCommand(v)
		}
	}
	return lookupFallback(runtime.GOOS)
}

// parseCommand splits a command string into tokens. Quoting is supported;
// shell features like pipes or variable expansion are not.
func parseCommand(s string) (Command, error) {
	tokens, err := shlex.Split(s, true)
	if err != nil {
		return Command{}, fmt.Errorf("parse editor command %q: %w", s, err)
	}
	if len(tokens) == 0 {
		return Command{}, fmt.Errorf("parse editor command %q: empty command", s)
	}
	return Command{Name: tokens[0], Args: tokens[1:]}, nil
}

// lookupFallback probes the fallback table for goos and returns the first
// candidate whose executable is on the search path. The probe touches
// storage but executes nothing.
func lookupFallback(goos string) (Command, error) {
	family := osFamily(goos)
	display := hasDisplay(goos)

	var tried []string
	for _, c := range fallbackTable[family] {
		if c.gui && !display {
			continue
		}
		cmd, err := parseCommand(c.command)
		if err != nil {
			continue
		}
		tried = append(tried, cmd.Name)
		if _, err := exec.LookPath(cmd.Name); err == nil {
			return cmd, nil
		}
	}
	return Command{}, &NoEditorError{Platform: family, Tried: tried}
}

// Package ui provides formatted output utilities for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color functions for consistent styling.
var (
	Green = color.New(color.FgGreen).SprintFunc()
	Red   = color.New(color.FgRed).SprintFunc()
	Cyan  = color.New(color.FgCyan).SprintFunc()
	Dim   = color.New(color.Faint).SprintFunc()
	Bold  = color.New(color.Bold).SprintFunc()
)

// Output is the destination for UI output.
// Defaults to os.Stdout but can be overridden for testing.
var Output io.Writer = os.Stdout

// FormatCommand formats an editor command line with cyan color.
func FormatCommand(command string) string {
	return Cyan(command)
}

// PrintInfo prints an informational message.
func PrintInfo(msg string) {
	fmt.Fprintln(Output, msg)
}

// PrintSuccess prints a success message with a green check mark.
func PrintSuccess(msg string) {
	fmt.Fprintf(Output, "%s %s\n", Green("✓"), msg)
}

// PrintError prints an error message with a red cross.
func PrintError(msg string) {
	fmt.Fprintf(Output, "%s %s\n", Red("✗"), msg)
}

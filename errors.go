package edit

import (
	"fmt"
	"strings"
)

// NoEditorError indicates no usable editor could be resolved from the
// override, the environment, or the platform fallback table.
type NoEditorError struct {
	Platform string
	Tried    []string
}

func (e *NoEditorError) Error() string {
	if len(e.Tried) == 0 {
		return fmt.Sprintf("no editor found for %s: set $VISUAL or $EDITOR", e.Platform)
	}
	return fmt.Sprintf("no editor found for %s (tried %s): set $VISUAL or $EDITOR",
		e.Platform, strings.Join(e.Tried, ", "))
}

// StorageError indicates the scratch file could not be created or its
// initial content could not be written. It is surfaced before the editor
// is ever invoked.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("create scratch file: %v", e.Err)
	}
	return fmt.Sprintf("write scratch file %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// SpawnError indicates the editor process could not be started at all,
// e.g. the executable vanished between resolution and launch.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("start editor %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ExitError indicates the editor started but terminated with a nonzero or
// abnormal exit status. The user's edits are not re-read in that case.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("editor %q exited with status %d", e.Command, e.Code)
}

// EncodingError indicates the edited file contains bytes that are not
// valid UTF-8. The raw bytes are never silently substituted; use EditBytes
// to receive them as-is.
type EncodingError struct{}

func (e *EncodingError) Error() string {
	return "edited content is not valid UTF-8"
}

// IOError indicates a read of the scratch file failed after the editor
// exited. Distinct from StorageError, which covers allocation and the
// initial write.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read scratch file %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

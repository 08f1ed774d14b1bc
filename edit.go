// Package edit opens text in the user's preferred editor and returns the
// edited result, the way version-control tools prompt for a commit message.
//
// The editor is resolved from an explicit override, $VISUAL, $EDITOR, or a
// per-platform table of well-known editors, in that order. The text is
// written to a uniquely named temporary file, the editor runs as a blocking
// foreground process with inherited stdio, and the file is re-read and
// removed when the editor exits. The temporary file is removed on every
// exit path, including errors.
package edit

import "unicode/utf8"

// Edit opens text in the user's editor and returns the edited text.
// The scratch file's content after the editor exits is returned even if the
// editor made no changes. Returns *EncodingError if the edited file is not
// valid UTF-8.
func Edit(text string, opts ...Option) (string, error) {
	out, err := EditBytes([]byte(text), opts...)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(out) {
		return "", &EncodingError{}
	}
	return string(out), nil
}

// EditBytes opens buf in the user's editor and returns the edited bytes
// without any encoding validation.
func EditBytes(buf []byte, opts ...Option) ([]byte, error) {
	o := buildOptions(opts)

	cmd, err := ResolveEditor(o.editor)
	if err != nil {
		return nil, err
	}

	scratch, err := newScratch(o.pattern, buf, o.logger)
	if err != nil {
		return nil, err
	}
	defer scratch.dispose()

	if err := runEditor(cmd, scratch.path); err != nil {
		return nil, err
	}
	return scratch.read()
}

// EditFile opens an existing file (or a new one, depending on the editor's
// behavior) in the user's editor and waits for the editor to exit. No
// scratch file is created and nothing is read back.
func EditFile(path string, opts ...Option) error {
	o := buildOptions(opts)

	cmd, err := ResolveEditor(o.editor)
	if err != nil {
		return err
	}
	return runEditor(cmd, path)
}

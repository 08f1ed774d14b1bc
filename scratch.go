package edit

import (
	"log/slog"
	"os"
)

// scratchFile owns the temporary file that holds the text for the duration
// of one edit operation. At most one exists per operation, and dispose runs
// on every exit path once creation has succeeded.
type scratchFile struct {
	path     string
	logger   *slog.Logger
	disposed bool
}

// newScratch creates a uniquely named file in the system temp directory
// containing content. The name pattern follows os.CreateTemp; the file is
// created exclusively with mode 0600 and is fully written and closed before
// the function returns, so the editor sees the complete initial text.
func newScratch(pattern string, content []byte, logger *slog.Logger) (*scratchFile, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return nil, &StorageError{Err: err}
	}

	s := &scratchFile{path: f.Name(), logger: logger}
	if _, err := f.Write(content); err != nil {
		f.Close()
		s.dispose()
		return nil, &StorageError{Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		s.dispose()
		return nil, &StorageError{Path: s.path, Err: err}
	}
	return s, nil
}

// read returns the file's current contents. After the editor exits this is
// the sole source of truth for the result.
func (s *scratchFile) read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &IOError{Path: s.path, Err: err}
	}
	return data, nil
}

// dispose removes the scratch file. Idempotent; a file that is already
// gone is logged and ignored.
func (s *scratchFile) dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("remove scratch file", "path", s.path, "error", err)
	}
}

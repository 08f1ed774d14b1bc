package edit

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNewScratchWritesInitialContent(t *testing.T) {
	content := []byte("initial text\nsecond line\n")

	s, err := newScratch(defaultPattern, content, discardLogger())
	if err != nil {
		t.Fatalf("newScratch() error = %v", err)
	}
	defer s.dispose()

	got, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatalf("read scratch: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("content = %q, want %q", got, content)
	}
}

func TestNewScratchRestrictsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}

	s, err := newScratch(defaultPattern, []byte("secret"), discardLogger())
	if err != nil {
		t.Fatalf("newScratch() error = %v", err)
	}
	defer s.dispose()

	info, err := os.Stat(s.path)
	if err != nil {
		t.Fatalf("stat scratch: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("permissions = %o, want 0600", perm)
	}
}

func TestNewScratchUniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		s, err := newScratch(defaultPattern, nil, discardLogger())
		if err != nil {
			t.Fatalf("newScratch() error = %v", err)
		}
		if seen[s.path] {
			t.Fatalf("duplicate scratch path %q", s.path)
		}
		seen[s.path] = true
		s.dispose()
	}
}

func TestNewScratchStorageError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("TMPDIR is a unix convention")
	}
	t.Setenv("TMPDIR", filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := newScratch(defaultPattern, []byte("x"), discardLogger())

	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected *StorageError, got %v", err)
	}
}

func TestScratchReadReturnsCurrentContent(t *testing.T) {
	s, err := newScratch(defaultPattern, []byte("before"), discardLogger())
	if err != nil {
		t.Fatalf("newScratch() error = %v", err)
	}
	defer s.dispose()

	// Simulate the editor rewriting the file.
	if err := os.WriteFile(s.path, []byte("after"), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := s.read()
	if err != nil {
		t.Fatalf("read() error = %v", err)
	}
	if string(got) != "after" {
		t.Errorf("read() = %q, want %q", got, "after")
	}
}

func TestScratchDisposeRemovesFile(t *testing.T) {
	s, err := newScratch(defaultPattern, []byte("x"), discardLogger())
	if err != nil {
		t.Fatalf("newScratch() error = %v", err)
	}

	s.dispose()

	if _, err := os.Stat(s.path); !os.IsNotExist(err) {
		t.Errorf("scratch file should be removed, stat err = %v", err)
	}
}

func TestScratchDisposeIsIdempotent(t *testing.T) {
	s, err := newScratch(defaultPattern, []byte("x"), discardLogger())
	if err != nil {
		t.Fatalf("newScratch() error = %v", err)
	}

	s.dispose()
	s.dispose() // second call is a no-op

	// Disposing a file someone else already removed is not an error either.
	s2, err := newScratch(defaultPattern, []byte("y"), discardLogger())
	if err != nil {
		t.Fatalf("newScratch() error = %v", err)
	}
	if err := os.Remove(s2.path); err != nil {
		t.Fatal(err)
	}
	s2.dispose()
}

func TestScratchReadAfterDisposeReturnsIOError(t *testing.T) {
	s, err := newScratch(defaultPattern, []byte("x"), discardLogger())
	if err != nil {
		t.Fatalf("newScratch() error = %v", err)
	}
	s.dispose()

	_, err = s.read()

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %v", err)
	}
}

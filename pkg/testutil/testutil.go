// Package testutil provides helpers for building filesystem fixtures on
// afero filesystems in tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// CreateFile creates a file with the given content, creating parent
// directories as needed. It fails the test if the file cannot be created.
func CreateFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
}

// CreateDir creates a directory and any missing parents.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, fs afero.Fs, path string) {
	t.Helper()

	if err := fs.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// ListDir returns the entry names of a directory, failing the test on error.
func ListDir(t *testing.T, fs afero.Fs, path string) []string {
	t.Helper()

	infos, err := afero.ReadDir(fs, path)
	if err != nil {
		t.Fatalf("Failed to list directory %s: %v", path, err)
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names
}

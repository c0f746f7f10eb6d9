// Package testutil provides testing utilities for compoundword tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteWordFile writes lines, newline-terminated, to a file named name in a
// temporary directory and returns its path. The directory is removed when
// the test completes.
func WriteWordFile(t *testing.T, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	WriteFile(t, path, strings.Join(lines, "\n")+"\n")
	return path
}

// WriteFile creates or replaces path with content, creating parent
// directories as needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// ReadLines returns the lines of path without their terminators. A trailing
// newline does not produce an empty last line.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return splitLines(string(data))
}

// UnwritablePath returns a path whose parent is a regular file, so creating
// it fails on every platform.
func UnwritablePath(t *testing.T) string {
	t.Helper()

	blocker := filepath.Join(t.TempDir(), "blocker")
	WriteFile(t, blocker, "")
	return filepath.Join(blocker, "out.txt")
}

// splitLines splits a string into lines.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, c := range s {
		if c == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

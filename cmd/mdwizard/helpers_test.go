package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// testEnv returns an Environment with captured output and a fixed clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    func() time.Time { return time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC) },
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

const (
	validRecipe = `title: Notes
blocks:
  - type: p
    text: Hello from a recipe.
  - type: bullets
    items: [one, two]
    levels: [0, 1]
`
	invalidRecipe = `title: Broken
blocks: []
`
	malformedRecipe = `title: Broken
blocks:
  - type: p
    colour: red
`
	linkRecipe = `blocks:
  - type: link
    url: sub/b.md#usage
    text: Next page
  - type: image
    url: img/logo.png
    text: Logo
`
	badgeRecipe = `blocks:
  - type: badge
    kind: myspace
    params: [tom]
  - type: p
    text: after
`
)

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// FileTree describes a directory: string values are file contents, nested
// FileTree values are subdirectories
type FileTree map[string]interface{}

// WriteTree creates tree under base on fs
func WriteTree(t *testing.T, fs afero.Fs, base string, tree FileTree) {
	t.Helper()

	if err := fs.MkdirAll(base, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", base, err)
	}
	for name, content := range tree {
		fullPath := filepath.Join(base, name)

		switch v := content.(type) {
		case string:
			if err := fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create parent directories for %s: %v", fullPath, err)
			}
			if err := afero.WriteFile(fs, fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			WriteTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

// CreateFile creates a file with the given content in dir on the real file
// system, creating parent directories as needed
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// Note builds a markdown note with a YAML frontmatter block made of the
// given lines, e.g. Note("body", "status: draft", "due: 2024-05-07")
func Note(body string, frontmatter ...string) string {
	var b strings.Builder
	b.WriteString("---\n")
	for _, line := range frontmatter {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("---\n")
	b.WriteString(body)
	return b.String()
}

// Package testutil loads the golden files stored under testdata/ and creates temporary journal files.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetUpFromGoldenFile copies the golden file of the current test into a temp directory.
func SetUpFromGoldenFile(t *testing.T) string {
	return SetUpFromGoldenFileNamed(t, t.Name()+".md")
}

// SetUpFromGoldenFileNamed copies the given golden file into a temp directory.
func SetUpFromGoldenFileNamed(t *testing.T, filename string) string {
	content := GoldenFileNamed(t, filename)
	return SetUpFromFileContent(t, filepath.Base(filename), string(content))
}

// SetUpFromFileContent creates a temp file with the given content.
func SetUpFromFileContent(t *testing.T, filename string, content string) string {
	fileOut := filepath.Join(t.TempDir(), filename)
	if err := os.WriteFile(fileOut, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return fileOut
}

// GoldenFile reads the content of the golden file of the current test.
func GoldenFile(t *testing.T) []byte {
	return GoldenFileNamed(t, t.Name()+".md")
}

// GoldenFileNamed reads the content of the given golden file.
func GoldenFileNamed(t *testing.T, filename string) []byte {
	path := filepath.Join("testdata", filename)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed reading golden file %s: %v", path, err)
	}
	return b
}

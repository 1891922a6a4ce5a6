package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteSRT writes content to name under a fresh temp directory and returns
// the full path.
func WriteSRT(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

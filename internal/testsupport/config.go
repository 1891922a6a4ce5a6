package testsupport

import (
	"path/filepath"
	"testing"

	"subfix/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.SessionDir = filepath.Join(base, "session")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	return &cfg
}

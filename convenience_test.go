// FILE: tomldir/convenience_test.go
package tomldir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuick tests the app-name shortcut via its env var override
func TestQuick(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quick.toml")
	require.NoError(t, os.WriteFile(path, []byte("greeting = \"hello\"\n"), 0644))
	t.Setenv("QUICKAPP_CONFIG", path)

	cfg, err := Quick("quickapp")
	require.NoError(t, err)

	greeting, ok := cfg.GetString("greeting")
	require.True(t, ok)
	assert.Equal(t, "hello", greeting)
}

// TestQuickNotFound verifies the error when discovery finds nothing
func TestQuickNotFound(t *testing.T) {
	t.Setenv("NOSUCHAPP_CONFIG", "")
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	cfg, err := Quick("nosuchapp")
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

// FILE: tomldir/builder_test.go
package tomldir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilderText tests building from inline text
func TestBuilderText(t *testing.T) {
	cfg, err := NewBuilder().
		WithText(`key = "value"`).
		Build()
	require.NoError(t, err)

	val, ok := cfg.GetString("key")
	require.True(t, ok)
	assert.Equal(t, "value", val)
}

// TestBuilderStoreSelection tests runtime backing selection
func TestBuilderStoreSelection(t *testing.T) {
	text := `
z = 1
a = 2
m = 3
`
	t.Run("Sorted", func(t *testing.T) {
		cfg, err := NewBuilder().
			WithText(text).
			WithStore(NewSortedStore()).
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "m", "z"}, cfg.Keys())
	})

	t.Run("CustomHash", func(t *testing.T) {
		cfg, err := NewBuilder().
			WithText(text).
			WithStore(NewHashStore(WithHasher(func(k string) uint64 {
				return uint64(len(k))
			}))).
			Build()
		require.NoError(t, err)

		val, ok := cfg.GetInt("m")
		require.True(t, ok)
		assert.Equal(t, int64(3), val)
	})
}

// TestBuilderFormatOverride forces a format regardless of detection
func TestBuilderFormatOverride(t *testing.T) {
	cfg, err := NewBuilder().
		WithText(`{"server": {"port": 1}}`).
		WithFormat(FormatJSON).
		Build()
	require.NoError(t, err)

	port, ok := cfg.GetInt("server.port")
	require.True(t, ok)
	assert.Equal(t, int64(1), port)
}

// TestBuilderErrors tests failure paths
func TestBuilderErrors(t *testing.T) {
	t.Run("NoSource", func(t *testing.T) {
		cfg, err := NewBuilder().Build()
		assert.Nil(t, cfg)
		assert.Error(t, err)
	})

	t.Run("ParseFailure", func(t *testing.T) {
		_, err := NewBuilder().WithText(`= broken`).Build()
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("MustBuildPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder().WithText(`= broken`).MustBuild()
		})
	})
}

// TestBuilderScan tests BuildAndScan end to end
func TestBuilderScan(t *testing.T) {
	type AppConfig struct {
		Debug bool `toml:"debug"`
		Port  int  `toml:"port"`
	}

	var app AppConfig
	err := NewBuilder().
		WithText("debug = true\nport = 9090\n").
		BuildAndScan(&app)
	require.NoError(t, err)
	assert.True(t, app.Debug)
	assert.Equal(t, 9090, app.Port)
}

// TestFileDiscovery tests the config file search order
func TestFileDiscovery(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("FindsByExtensionOrder", func(t *testing.T) {
		yamlPath := filepath.Join(tmpDir, "app.yaml")
		require.NoError(t, os.WriteFile(yamlPath, []byte("name: from-yaml\n"), 0644))
		tomlPath := filepath.Join(tmpDir, "app.toml")
		require.NoError(t, os.WriteFile(tomlPath, []byte("name = \"from-toml\"\n"), 0644))

		opts := DefaultDiscoveryOptions("app")
		opts.Paths = []string{tmpDir}
		opts.UseCurrentDir = false
		opts.EnvVar = ""

		cfg, err := NewBuilder().WithFileDiscovery(opts).Build()
		require.NoError(t, err)

		name, ok := cfg.GetString("name")
		require.True(t, ok)
		assert.Equal(t, "from-toml", name, ".toml is tried before .yaml")
	})

	t.Run("EnvVarWins", func(t *testing.T) {
		explicit := filepath.Join(tmpDir, "explicit.toml")
		require.NoError(t, os.WriteFile(explicit, []byte("name = \"from-env\"\n"), 0644))
		t.Setenv("MYAPP_CONFIG", explicit)

		opts := DefaultDiscoveryOptions("myapp")
		opts.Paths = []string{tmpDir}
		opts.UseCurrentDir = false

		cfg, err := NewBuilder().WithFileDiscovery(opts).Build()
		require.NoError(t, err)

		name, ok := cfg.GetString("name")
		require.True(t, ok)
		assert.Equal(t, "from-env", name)
	})

	t.Run("NothingFound", func(t *testing.T) {
		opts := DefaultDiscoveryOptions("nonexistent-app")
		opts.Paths = []string{tmpDir}
		opts.UseCurrentDir = false
		opts.EnvVar = ""

		cfg, err := NewBuilder().WithFileDiscovery(opts).Build()
		assert.Nil(t, cfg)
		assert.Error(t, err)
	})
}

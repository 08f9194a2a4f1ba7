// FILE: tomldir/discovery.go
package tomldir

import (
	"os"
	"path/filepath"
	"strings"
)

// FileDiscoveryOptions configures automatic config file discovery
type FileDiscoveryOptions struct {
	// Base name of config file (without extension)
	Name string

	// Extensions to try (in order)
	Extensions []string

	// Custom search paths (in addition to defaults)
	Paths []string

	// Environment variable to check for explicit path
	EnvVar string

	// Whether to search in current directory
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns sensible defaults
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".toml", ".json", ".yaml", ".yml"},
		EnvVar:        strings.ToUpper(appName) + "_CONFIG",
		UseCurrentDir: true,
	}
}

// WithFileDiscovery enables automatic config file discovery. The first
// match wins: the environment variable, then each search path with each
// extension in order. If nothing matches, the builder's file is left
// unset and Build fails.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	// Check environment variable first (explicit path)
	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			b.file = path
			return b
		}
	}

	var searchPaths []string
	searchPaths = append(searchPaths, opts.Paths...)
	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}

	for _, dir := range searchPaths {
		for _, ext := range opts.Extensions {
			candidate := filepath.Join(dir, opts.Name+ext)
			if stat, err := os.Stat(candidate); err == nil && !stat.IsDir() {
				b.file = candidate
				return b
			}
		}
	}

	return b
}

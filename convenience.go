// FILE: tomldir/convenience.go
package tomldir

import "fmt"

// Quick discovers and loads a config file named after the application,
// using the default search behavior. This is the shortest path from an
// app name to a populated Config.
func Quick(appName string) (*Config, error) {
	return NewBuilder().
		WithFileDiscovery(DefaultDiscoveryOptions(appName)).
		Build()
}

// MustLoad is like Load but panics on error.
func MustLoad(text string) *Config {
	cfg, err := Load(text)
	if err != nil {
		panic(fmt.Sprintf("config load failed: %v", err))
	}
	return cfg
}

// MustLoadFile is like LoadFile but panics on error.
func MustLoadFile(path string) *Config {
	cfg, err := LoadFile(path)
	if err != nil {
		panic(fmt.Sprintf("config load failed: %v", err))
	}
	return cfg
}

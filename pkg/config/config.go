package config

import (
	"github.com/devw-tools/devw/pkg/paths"
)

// Config holds the tool settings.
type Config struct {
	Registry Registry `koanf:"registry"`
	Project  Project  `koanf:"project"`
	Log      Log      `koanf:"log"`
	Output   Output   `koanf:"output"`
}

type Registry struct {
	Dir string `koanf:"dir"`
}

type Project struct {
	Root string `koanf:"root"`
}

type Log struct {
	File string `koanf:"file"`
}

// Output color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Output struct {
	Color string `koanf:"color"`
}

// RegistryDir returns the configured registry directory, falling back to
// the XDG default.
func (c *Config) RegistryDir() string {
	if c.Registry.Dir != "" {
		return paths.ExpandHome(c.Registry.Dir)
	}
	return paths.RegistryDir()
}

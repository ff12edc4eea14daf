package config

import "sync"

var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Initialize sets the process-wide configuration
func Initialize(cfg *Config) {
	configMu.Lock()
	defer configMu.Unlock()
	globalConfig = cfg
}

// Get returns the process-wide configuration, loading it on first use. If
// loading fails the embedded defaults are used.
func Get() *Config {
	configMu.RLock()
	cfg := globalConfig
	configMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	cfg, err := LoadConfiguration(UserConfigPath())
	if err != nil {
		cfg, _ = LoadFromMap(nil)
	}
	Initialize(cfg)
	return cfg
}

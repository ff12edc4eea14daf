package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	devwerrors "github.com/devw-tools/devw/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes every environment override. DEVW_REGISTRY_DIR maps to
// registry.dir.
const EnvPrefix = "DEVW_"

// userConfigNames are tried in order inside the user config directory.
var userConfigNames = []string{"config.toml", "config.yaml", "config.yml"}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// DefaultContent returns the embedded defaults file.
func DefaultContent() string {
	return string(defaultConfig)
}

// UserConfigPath returns the first existing user config file, or "".
func UserConfigPath() string {
	dir := filepath.Join(xdg.ConfigHome, "devw")
	for _, name := range userConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadConfiguration layers the embedded defaults, the user file at
// userPath (skipped when empty) and DEVW_* environment variables.
func LoadConfiguration(userPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, devwerrors.Wrap(err, devwerrors.ErrConfigLoad, "failed to load defaults")
	}

	if userPath != "" {
		parser := koanf.Parser(toml.Parser())
		if ext := strings.ToLower(filepath.Ext(userPath)); ext == ".yaml" || ext == ".yml" {
			parser = yaml.Parser()
		}
		if err := k.Load(file.Provider(userPath), parser); err != nil {
			return nil, devwerrors.Wrapf(err, devwerrors.ErrConfigParse, "failed to load user config from %s", userPath)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, devwerrors.Wrap(err, devwerrors.ErrConfigLoad, "failed to load environment")
	}

	return unmarshal(k)
}

// LoadFromMap builds a Config from the embedded defaults overlaid with
// values, keyed by dotted path.
func LoadFromMap(values map[string]interface{}) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, devwerrors.Wrap(err, devwerrors.ErrConfigLoad, "failed to load defaults")
	}
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return nil, devwerrors.Wrap(err, devwerrors.ErrConfigLoad, "failed to load overrides")
	}
	return unmarshal(k)
}

// envKey turns DEVW_REGISTRY_DIR into registry.dir.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, devwerrors.Wrap(err, devwerrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	case "":
		cfg.Output.Color = ColorAuto
	default:
		return devwerrors.Newf(devwerrors.ErrConfigParse, "invalid output.color %q (want auto, always or never)", cfg.Output.Color).
			WithDetail("key", "output.color")
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks the environment variables Load reads.
const EnvPrefix = "APP_"

// listKeys are split on commas when they arrive from the environment.
var listKeys = map[string]bool{"events.brokers": true}

// Option adjusts Load.
type Option func(*loader)

type loader struct {
	dir string
}

// WithConfigDir reads the YAML layers from dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

// Load merges, lowest precedence first, the built-in defaults,
// configs/base.yaml, configs/<profile>.yaml and APP_* environment variables,
// then validates the result. Both YAML files must exist.
//
// Environment names are matched against the keys already loaded, so
// APP_SERVER_READ_TIMEOUT sets server.read_timeout rather than
// server.read.timeout. Unknown names fall back to one level per underscore.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}
	l := &loader{dir: "configs"}
	for _, opt := range opts {
		opt(l)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	for _, name := range []string{"base", profile} {
		path := filepath.Join(l.dir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	known := k.Keys()
	for key := range listKeys {
		known = append(known, key)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envTransform(known),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

// envTransform maps APP_FOO_BAR_BAZ onto whichever of the known dotted keys
// flattens to foo_bar_baz.
func envTransform(known []string) func(string, string) (string, any) {
	byFlat := make(map[string]string, len(known))
	for _, key := range known {
		byFlat[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(name, value string) (string, any) {
		flat := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
		key, ok := byFlat[flat]
		if !ok {
			return strings.ReplaceAll(flat, "_", "."), value
		}
		if listKeys[key] {
			return key, strings.Split(value, ",")
		}
		return key, value
	}
}

// checkProfile keeps the profile a bare file name inside the config dir.
func checkProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("config profile is empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("config profile %q is not a plain name", profile)
	}
	return nil
}

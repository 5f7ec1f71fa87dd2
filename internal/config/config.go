package config

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
)

// envPrefix namespaces the environment variables the tool reads,
// e.g. OASDOWN_OUTPUT=./out.
const envPrefix = "OASDOWN_"

// Config is the main configuration struct.
// All values are fixed at startup; the conversion pipeline only reads them.
type Config struct {
	// Output is the directory converted documents are written to.
	Output string `koanf:"output" yaml:"output"`

	// GenerateOperationIDs enables synthesizing ids for operations
	// that don't declare one.
	GenerateOperationIDs bool `koanf:"generateOperationIds" yaml:"generateOperationIds"`

	// Verbose lowers the log level to debug.
	Verbose bool `koanf:"verbose" yaml:"verbose"`
}

// NewDefaultConfig creates a new default config in case the config file
// is missing, not found or any other error.
func NewDefaultConfig() *Config {
	return &Config{
		Output: "output",
	}
}

// NewConfigFromFile creates a new config from a YAML file path,
// applying defaults first and environment overrides last.
func NewConfigFromFile(filePath string) (*Config, error) {
	k, err := newKoanf()
	if err != nil {
		return nil, err
	}

	if filePath != "" {
		if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	return unmarshal(k)
}

// NewConfigFromContent creates a new config from a YAML file content.
func NewConfigFromContent(content []byte) (*Config, error) {
	k, err := newKoanf()
	if err != nil {
		return nil, err
	}

	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, err
	}

	return unmarshal(k)
}

func newKoanf() (*koanf.Koanf, error) {
	k := koanf.New(".")

	defaults := NewDefaultConfig()
	if err := k.Load(confmap.Provider(map[string]any{
		"output":               defaults.Output,
		"generateOperationIds": defaults.GenerateOperationIDs,
		"verbose":              defaults.Verbose,
	}, "."), nil); err != nil {
		return nil, err
	}

	return k, nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		// env names are flat upper-case, koanf keys are camelCase
		if key == "generateoperationids" {
			return "generateOperationIds"
		}
		return key
	}), nil); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Output == "" {
		cfg.Output = NewDefaultConfig().Output
	}

	return cfg, nil
}

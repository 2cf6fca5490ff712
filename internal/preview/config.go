package preview

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config configures the preview server.
type Config struct {
	// Addr is the listen address.
	Addr string `yaml:"addr" validate:"required,hostname_port"`

	// LogLevel is the zerolog level name.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`

	// Overrides is the path to a YAML override table applied to the
	// previewed kit. Empty means no overrides. The file is watched;
	// changes rebuild the kit and reload connected browsers.
	Overrides string `yaml:"overrides" validate:"omitempty,filepath"`

	// Pretty enables pretty-printed HTML in preview output.
	Pretty bool `yaml:"pretty"`
}

// DefaultConfig returns the preview server defaults.
func DefaultConfig() Config {
	return Config{
		Addr:     "127.0.0.1:4500",
		LogLevel: "info",
		Pretty:   true,
	}
}

// LoadConfig reads a preview configuration file, filling unset fields from
// the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("preview: reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("preview: parsing config: %w", err)
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultConfig().Addr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultConfig().LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration's field constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("preview: invalid config: %w", err)
	}
	return nil
}

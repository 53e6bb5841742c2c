// Package config loads and validates formatter settings via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures everything the formatter reads from its settings file.
type Config struct {
	URL        string        `mapstructure:"url"`
	OutputFile string        `mapstructure:"output_file"`
	Fetch      FetchConfig   `mapstructure:"fetch"`
	Logging    LoggingConfig `mapstructure:"logging"`
}

// FetchConfig controls the single HTTP GET.
type FetchConfig struct {
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from the settings file at path plus environment
// overrides (SEITEN_URL, SEITEN_OUTPUT_FILE, ...).
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SEITEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("fetch.timeout_seconds", 10)
	v.SetDefault("fetch.user_agent", "seiten-formatter/0.1")
	v.SetDefault("logging.development", true)
}

// Validate enforces required keys and the recognized URL schemes.
func (c Config) Validate() error {
	if strings.TrimSpace(c.URL) == "" {
		return fmt.Errorf("url is required")
	}
	if !hasRecognizedScheme(c.URL) {
		return fmt.Errorf("url must start with http://, https:// or file://")
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		return fmt.Errorf("output_file is required")
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("fetch.timeout_seconds must be > 0")
	}
	return nil
}

// FetchTimeout converts the configured timeout into a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

func hasRecognizedScheme(url string) bool {
	for _, scheme := range []string{"http://", "https://", "file://"} {
		if strings.HasPrefix(url, scheme) {
			return true
		}
	}
	return false
}

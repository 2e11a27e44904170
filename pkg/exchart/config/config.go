// Package config handles exchart configuration loading.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ukaji3/exchart-go/pkg/exchart/charts"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/ukaji3/exchart-go/pkg/exchart/narrative"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Charts    ChartsConfig    `yaml:"charts"`
	Narrative NarrativeConfig `yaml:"narrative"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ChartsConfig holds chart settings.
type ChartsConfig struct {
	VertexColumns []string          `yaml:"vertex_columns"`
	VertexCount   int               `yaml:"vertex_count"`
	Invert        bool              `yaml:"invert"`
	MaxTicks      int               `yaml:"max_ticks"` // 0 means no cap
	ColorSchemes  map[string]string `yaml:"color_schemes"` // keyed by role name
}

// NarrativeConfig holds narrative service settings.
type NarrativeConfig struct {
	Enabled   bool   `yaml:"enabled"`
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
	// Temperature is a pointer to distinguish "not set" from "explicitly 0".
	Temperature *float64      `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"`
	Guidance    string        `yaml:"guidance"`
}

// Default returns the default configuration.
func Default() *Config {
	temp := 0.7
	schemes := make(map[string]string, len(charts.DefaultColorSchemes))
	for role, s := range charts.DefaultColorSchemes {
		schemes[role.String()] = s
	}
	return &Config{
		Log: LogConfig{Level: "info"},
		Charts: ChartsConfig{
			VertexCount:  charts.DefaultVertexCount,
			ColorSchemes: schemes,
		},
		Narrative: NarrativeConfig{
			BaseURL:     narrative.DefaultBaseURL,
			Model:       narrative.DefaultModel,
			APIKeyEnv:   "DASHSCOPE_API_KEY",
			Temperature: &temp,
			MaxTokens:   200,
			Timeout:     60 * time.Second,
			Guidance:    narrative.DefaultGuidance,
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads config from path, or returns default if not found.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save saves configuration to a file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	if _, err := os.Stat("exchart.yaml"); err == nil {
		return "exchart.yaml"
	}
	if _, err := os.Stat("config/exchart.yaml"); err == nil {
		return "config/exchart.yaml"
	}
	return "exchart.yaml"
}

// InitConfig creates a default config file if it doesn't exist.
func InitConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // Already exists
	}
	return Default().Save(path)
}

// LogLevel parses the configured log level; unknown values mean info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// ChartConfig converts the chart section to a charts.Config.
func (c *Config) ChartConfig() (charts.Config, error) {
	cfg := charts.Config{
		VertexColumns: append([]string(nil), c.Charts.VertexColumns...),
		VertexCount:   c.Charts.VertexCount,
		Invert:        c.Charts.Invert,
		MaxTicks:      c.Charts.MaxTicks,
		ColorSchemes:  make(map[models.Role]string, len(c.Charts.ColorSchemes)),
	}
	for name, scheme := range c.Charts.ColorSchemes {
		role, err := models.ParseRole(name)
		if err != nil {
			return charts.Config{}, fmt.Errorf("color_schemes: %w", err)
		}
		cfg.ColorSchemes[role] = scheme
	}
	return cfg, nil
}

// NarrativeClientConfig converts the narrative section to a client config.
// The API key is read from the environment variable named by APIKeyEnv.
func (c *Config) NarrativeClientConfig(logger *slog.Logger) narrative.Config {
	n := c.Narrative
	cfg := narrative.Config{
		BaseURL:   n.BaseURL,
		Model:     n.Model,
		MaxTokens: n.MaxTokens,
		Timeout:   n.Timeout,
		Guidance:  n.Guidance,
		Logger:    logger,
	}
	if n.Temperature != nil {
		cfg.Temperature = *n.Temperature
	}
	if n.APIKeyEnv != "" {
		cfg.APIKey = os.Getenv(n.APIKeyEnv)
	}
	return cfg
}

// Package config loads xlreport settings from defaults, the environment and an optional YAML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable, e.g. XLREPORT_LOGGING_LEVEL.
const EnvPrefix = "XLREPORT"

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Handler  string `yaml:"handler" envconfig:"HANDLER" default:"stream" validate:"oneof=stream file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"log_book/logs.log" validate:"required_unless=Handler stream"`
}

// ReportConfig contains workbook output configuration
type ReportConfig struct {
	Dir        string  `yaml:"dir" envconfig:"DIR" default:"reports" validate:"required"`
	ImageScale float64 `yaml:"image_scale" envconfig:"IMAGE_SCALE" default:"2" validate:"gt=0,lte=10"`
	Resize     string  `yaml:"resize" envconfig:"RESIZE" default:"best-fit" validate:"oneof=best-fit content-fit none"`
	TempDir    string  `yaml:"temp_dir" envconfig:"TEMP_DIR"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Handler:  "stream",
			FilePath: "log_book/logs.log",
		},
		Report: ReportConfig{
			Dir:        "reports",
			ImageScale: 2,
			Resize:     "best-fit",
		},
	}
}

// Load reads defaults and environment variables, then the YAML file at path if it is not empty.
// Values from the file win over the environment.
func Load(path string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays the YAML file onto cfg. Keys missing from the file keep their value.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	handler := strings.ToLower(strings.TrimSpace(c.Logging.Handler))
	if handler == "file/stream" || handler == "stream/file" {
		handler = "both"
	}
	c.Logging.Handler = handler
	c.Report.Resize = strings.ToLower(strings.TrimSpace(c.Report.Resize))
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

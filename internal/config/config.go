// Package config loads the YAML configuration of the fieldvalues tool.
//
// Example:
//
//	extraction:
//	  allow_extracting_private_fields: false
//	  field_matching: [exact, json]
//	  representation: standard
//	  cache_size: 512
//	log:
//	  level: debug
//	  file: /var/log/fieldvalues.log
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"assertkit/internal/logging"
	"assertkit/introspection"
	"assertkit/presentation"
)

// Config is the root of the configuration file.
type Config struct {
	Extraction Extraction `yaml:"extraction"`
	Log        Log        `yaml:"log"`
}

// Extraction configures the FieldSupport used for extraction.
type Extraction struct {
	AllowExtractingPrivateFields *bool    `yaml:"allow_extracting_private_fields,omitempty"`
	FieldMatching                []string `yaml:"field_matching,omitempty"`
	Representation               string   `yaml:"representation,omitempty"`
	CacheSize                    *int     `yaml:"cache_size,omitempty"`
}

// Log configures logging, see logging.Config.
type Log struct {
	Level      string `yaml:"level,omitempty"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty"`
	Compress   *bool  `yaml:"compress,omitempty"`
}

// Default returns the configuration used without a file.
func Default() *Config {
	var c Config

	applyDefaults(&c)

	return &c
}

// LoadFile loads and parses a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if _, err := c.ExtractionOptions(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

func applyDefaults(c *Config) {
	if c.Extraction.Representation == "" {
		c.Extraction.Representation = "standard"
	}

	def := logging.DefaultConfig()

	if c.Log.Level == "" {
		c.Log.Level = def.Level
	}

	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = def.MaxSizeMB
	}

	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = def.MaxBackups
	}

	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = def.MaxAgeDays
	}

	if c.Log.Compress == nil {
		c.Log.Compress = &def.Compress
	}
}

// ExtractionOptions converts the extraction section into FieldSupport options.
// Unset values keep the FieldSupport defaults.
func (c *Config) ExtractionOptions() ([]introspection.Option, error) {
	var opts []introspection.Option

	e := c.Extraction

	if e.AllowExtractingPrivateFields != nil {
		opts = append(opts, introspection.WithAllowExtractingPrivateFields(*e.AllowExtractingPrivateFields))
	}

	if len(e.FieldMatching) > 0 {
		m, err := introspection.ParseFieldMatching(e.FieldMatching)
		if err != nil {
			return nil, fmt.Errorf("invalid extraction.field_matching: %w", err)
		}

		opts = append(opts, introspection.WithFieldMatching(m))
	}

	r, ok := presentation.ByName(e.Representation)
	if !ok {
		return nil, fmt.Errorf("invalid extraction.representation %q: expecting standard or spew", e.Representation)
	}

	opts = append(opts, introspection.WithRepresentation(r))

	if e.CacheSize != nil {
		if *e.CacheSize < 0 {
			return nil, fmt.Errorf("invalid extraction.cache_size %d: must not be negative", *e.CacheSize)
		}

		opts = append(opts, introspection.WithCacheSize(*e.CacheSize))
	}

	return opts, nil
}

// Logging converts the log section into a logging.Config.
func (c *Config) Logging() logging.Config {
	cfg := logging.Config{
		Level:      c.Log.Level,
		FilePath:   c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
	}

	if c.Log.Compress != nil {
		cfg.Compress = *c.Log.Compress
	}

	return cfg
}

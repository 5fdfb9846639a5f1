package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/traderpulse/feed"
)

// Config is the complete analysis configuration.
type Config struct {
	Feeds    FeedsConfig    `json:"feeds" yaml:"feeds"`
	Pipeline PipelineConfig `json:"pipeline" yaml:"pipeline"`
	Export   ExportConfig   `json:"export" yaml:"export"`
}

// FeedsConfig locates the two input files.
type FeedsConfig struct {
	SentimentFile string `json:"sentiment_file" yaml:"sentiment_file"`
	TradesFile    string `json:"trades_file" yaml:"trades_file"`
}

// PipelineConfig holds pipeline policy knobs.
type PipelineConfig struct {
	// DuplicatePolicy is "last-wins" or "reject"; see feed.DuplicatePolicy.
	DuplicatePolicy string `json:"duplicate_policy" yaml:"duplicate_policy"`
}

// ExportConfig tells the export command where snapshots go.
type ExportConfig struct {
	CSVDir     string `json:"csv_dir,omitempty" yaml:"csv_dir,omitempty"`
	SQLitePath string `json:"sqlite_path,omitempty" yaml:"sqlite_path,omitempty"`
}

// DuplicatePolicy resolves the configured policy string.
func (c *Config) DuplicatePolicy() (feed.DuplicatePolicy, error) {
	return feed.ParseDuplicatePolicy(c.Pipeline.DuplicatePolicy)
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Feeds.SentimentFile == "" {
		return fmt.Errorf("feeds.sentiment_file is required")
	}
	if c.Feeds.TradesFile == "" {
		return fmt.Errorf("feeds.trades_file is required")
	}
	if _, err := feed.ParseDuplicatePolicy(c.Pipeline.DuplicatePolicy); err != nil {
		return err
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Feeds: FeedsConfig{
			SentimentFile: "data/fear_greed_index.csv",
			TradesFile:    "data/historical_data.csv",
		},
		Pipeline: PipelineConfig{
			DuplicatePolicy: "last-wins",
		},
		Export: ExportConfig{
			CSVDir: "./out",
		},
	}
}

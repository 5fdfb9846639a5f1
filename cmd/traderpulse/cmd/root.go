package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/traderpulse/config"
	"github.com/rustyeddy/traderpulse/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "traderpulse",
	Short: "Trader performance vs market sentiment analytics",
	Long: `Traderpulse computes trader-performance metrics conditioned on the
daily fear/greed sentiment regime from two CSV feeds: raw trade records
and the sentiment index.

It produces four analysis-ready tables:
  - joined trades with derived features
  - daily metrics per (account, date, sentiment)
  - lifetime trader profiles
  - daily metrics enriched with leverage/frequency segments

Tables can be rendered on stdout, exported as CSV, or written into a
SQLite snapshot for the dashboard.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var (
	cfgPath       string
	sentimentPath string
	tradesPath    string
	dupPolicy     string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&sentimentPath, "sentiment-file", "", "sentiment feed CSV (overrides config)")
	rootCmd.PersistentFlags().StringVar(&tradesPath, "trades-file", "", "trade feed CSV (overrides config)")
	rootCmd.PersistentFlags().StringVar(&dupPolicy, "duplicate-policy", "", "duplicate sentiment date policy: last-wins or reject")
}

// loadConfig resolves the effective config from file plus flag overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if sentimentPath != "" {
		cfg.Feeds.SentimentFile = sentimentPath
	}
	if tradesPath != "" {
		cfg.Feeds.TradesFile = tradesPath
	}
	if dupPolicy != "" {
		cfg.Pipeline.DuplicatePolicy = dupPolicy
	}
	return cfg, nil
}

// pipelineOptions turns the effective config into pipeline options.
func pipelineOptions() (pipeline.Options, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return pipeline.Options{}, nil, err
	}
	policy, err := cfg.DuplicatePolicy()
	if err != nil {
		return pipeline.Options{}, nil, err
	}
	return pipeline.Options{
		SentimentPath:   cfg.Feeds.SentimentFile,
		TradesPath:      cfg.Feeds.TradesFile,
		DuplicatePolicy: policy,
	}, cfg, nil
}

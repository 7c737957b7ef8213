// Package config loads and validates application configuration from a YAML
// file with environment-variable overrides, providing typed structs for the
// dataset paths, analysis parameters, and the optional report server.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Datasets DatasetsConfig `yaml:"datasets"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Server   ServerConfig   `yaml:"server"`
}

// DatasetsConfig holds the input file locations.
type DatasetsConfig struct {
	Restaurants string `yaml:"restaurants"`
	Reviews     string `yaml:"reviews"`
	Stopwords   string `yaml:"stopwords"` // optional; empty uses the embedded list
}

// AnalysisConfig controls report selection parameters.
type AnalysisConfig struct {
	TopTerms           int `yaml:"topTerms"`           // corpus-wide TF-IDF records in the report
	TermsPerRestaurant int `yaml:"termsPerRestaurant"` // TF-IDF records kept per restaurant
	TopRestaurants     int `yaml:"topRestaurants"`     // rows in the ranking tables
	MinReviews         int `yaml:"minReviews"`         // rated reviews required for the top-rated ranking
}

// ServerConfig holds settings for the optional report HTTP server.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// Load reads a YAML config file (if provided) and applies environment-
// variable overrides. It returns a Config populated with sensible defaults
// for any missing values.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultConfig returns a Config with defaults for local use.
func defaultConfig() *Config {
	return &Config{
		Datasets: DatasetsConfig{
			Restaurants: "data/restaurants.csv",
			Reviews:     "data/reviews.csv",
		},
		Analysis: AnalysisConfig{
			TopTerms:           25,
			TermsPerRestaurant: 10,
			TopRestaurants:     10,
			MinReviews:         5,
		},
		Server: ServerConfig{
			Port: 8080,
		},
	}
}

// applyEnvOverrides reads RL_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RL_DATASETS_RESTAURANTS"); v != "" {
		cfg.Datasets.Restaurants = v
	}
	if v := os.Getenv("RL_DATASETS_REVIEWS"); v != "" {
		cfg.Datasets.Reviews = v
	}
	if v := os.Getenv("RL_DATASETS_STOPWORDS"); v != "" {
		cfg.Datasets.Stopwords = v
	}
	if v := os.Getenv("RL_ANALYSIS_TOP_TERMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.TopTerms = n
		}
	}
	if v := os.Getenv("RL_ANALYSIS_TERMS_PER_RESTAURANT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.TermsPerRestaurant = n
		}
	}
	if v := os.Getenv("RL_ANALYSIS_MIN_REVIEWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.MinReviews = n
		}
	}
	if v := os.Getenv("RL_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
}

// validate rejects parameter values the pipeline cannot honor.
func (c *Config) validate() error {
	if c.Analysis.TopTerms < 0 {
		return fmt.Errorf("analysis.topTerms must not be negative, got %d", c.Analysis.TopTerms)
	}
	if c.Analysis.TermsPerRestaurant < 0 {
		return fmt.Errorf("analysis.termsPerRestaurant must not be negative, got %d", c.Analysis.TermsPerRestaurant)
	}
	if c.Analysis.MinReviews < 0 {
		return fmt.Errorf("analysis.minReviews must not be negative, got %d", c.Analysis.MinReviews)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	return nil
}

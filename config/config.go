package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"forexjournal/internal/adapters/logger" // Import the logger package for LogLevel
	"forexjournal/internal/analytics"
	"forexjournal/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	// Database
	DBPath string

	// Logging
	LogLevel logger.LogLevel

	// Accounting
	InitialCapital   float64 // Seed capital used when funding a fresh database
	CommissionPolicy analytics.CommissionPolicy

	// Reference catalogs offered by the entry form / CLI completion.
	Catalog Catalog
}

// Catalog holds the reference lists a journal install may override through
// the optional YAML defaults file.
type Catalog struct {
	Pairs      []string `yaml:"pairs"`
	Strategies []string `yaml:"strategies"`
	Tags       []string `yaml:"tags"`
}

// KnownPair reports whether pair appears in the catalog.
func (c Catalog) KnownPair(pair string) bool {
	for _, p := range c.Pairs {
		if strings.EqualFold(p, pair) {
			return true
		}
	}
	return false
}

// LoadConfig loads configuration from environment variables (.env file) plus
// an optional YAML defaults file named by JOURNAL_CONFIG.
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	var errs []string // Collect validation errors

	// Database
	cfg.DBPath = getEnv("DB_PATH", "./data/journal.db")
	if cfg.DBPath == "" {
		errs = append(errs, "DB_PATH must be set")
	}

	// Logging
	cfg.LogLevel = logger.ParseLevel(getEnv("LOG_LEVEL", "INFO"))

	// Accounting
	cfg.InitialCapital, err = getEnvAsFloatRequired("INITIAL_CAPITAL", 0)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid INITIAL_CAPITAL: %v", err))
	} else if cfg.InitialCapital < 0 {
		errs = append(errs, "INITIAL_CAPITAL cannot be negative")
	}

	cfg.CommissionPolicy = analytics.CommissionPolicy(getEnv("COMMISSION_POLICY", string(analytics.CommissionEndOfPeriod)))
	if !cfg.CommissionPolicy.IsValid() {
		errs = append(errs, fmt.Sprintf("invalid COMMISSION_POLICY %q (want %q or %q)",
			cfg.CommissionPolicy, analytics.CommissionEndOfPeriod, analytics.CommissionPerTrade))
	}

	// Reference catalogs: built-in defaults, optionally overridden by file.
	cfg.Catalog = Catalog{
		Pairs:      domain.CurrencyPairs,
		Strategies: domain.Strategies,
		Tags:       domain.TradeTags,
	}
	if path := getEnv("JOURNAL_CONFIG", ""); path != "" {
		if err := loadCatalogFile(path, &cfg.Catalog); err != nil {
			errs = append(errs, fmt.Sprintf("invalid JOURNAL_CONFIG: %v", err))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

// loadCatalogFile merges a YAML defaults file over the built-in catalogs.
// Absent keys keep their defaults.
func loadCatalogFile(path string, catalog *Catalog) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog file: %w", err)
	}

	var overrides Catalog
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parse catalog file: %w", err)
	}

	if len(overrides.Pairs) > 0 {
		catalog.Pairs = overrides.Pairs
	}
	if len(overrides.Strategies) > 0 {
		catalog.Strategies = overrides.Strategies
	}
	if len(overrides.Tags) > 0 {
		catalog.Tags = overrides.Tags
	}
	return nil
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsFloatRequired(key string, defaultValue float64) (float64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		// Use default if env var is not set at all
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		// Return error if env var is set but invalid
		return 0, fmt.Errorf("invalid float value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forexjournal/internal/adapters/logger"
	"forexjournal/internal/analytics"
	"forexjournal/internal/domain"
)

func clearJournalEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DB_PATH", "LOG_LEVEL", "INITIAL_CAPITAL", "COMMISSION_POLICY", "JOURNAL_CONFIG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearJournalEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "./data/journal.db", cfg.DBPath)
		assert.Equal(t, logger.LevelInfo, cfg.LogLevel)
		assert.Zero(t, cfg.InitialCapital)
		assert.Equal(t, analytics.CommissionEndOfPeriod, cfg.CommissionPolicy)
		assert.Equal(t, domain.CurrencyPairs, cfg.Catalog.Pairs)
		assert.Equal(t, domain.Strategies, cfg.Catalog.Strategies)
		assert.Equal(t, domain.TradeTags, cfg.Catalog.Tags)
	})

	t.Run("environment overrides", func(t *testing.T) {
		clearJournalEnv(t)
		t.Setenv("DB_PATH", "/tmp/custom.db")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("INITIAL_CAPITAL", "2500.75")
		t.Setenv("COMMISSION_POLICY", string(analytics.CommissionPerTrade))

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
		assert.Equal(t, logger.LevelDebug, cfg.LogLevel)
		assert.InDelta(t, 2500.75, cfg.InitialCapital, 1e-9)
		assert.Equal(t, analytics.CommissionPerTrade, cfg.CommissionPolicy)
	})

	t.Run("collects every validation error", func(t *testing.T) {
		clearJournalEnv(t)
		t.Setenv("INITIAL_CAPITAL", "lots")
		t.Setenv("COMMISSION_POLICY", "quarterly")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "INITIAL_CAPITAL")
		assert.Contains(t, err.Error(), "COMMISSION_POLICY")
	})

	t.Run("negative capital is rejected", func(t *testing.T) {
		clearJournalEnv(t)
		t.Setenv("INITIAL_CAPITAL", "-100")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "INITIAL_CAPITAL cannot be negative")
	})

	t.Run("catalog file overrides listed keys only", func(t *testing.T) {
		clearJournalEnv(t)

		path := filepath.Join(t.TempDir(), "journal.yaml")
		data := []byte("pairs:\n  - EUR/USD\n  - XAU/USD\ntags:\n  - Scalp\n")
		require.NoError(t, os.WriteFile(path, data, 0644))
		t.Setenv("JOURNAL_CONFIG", path)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, []string{"EUR/USD", "XAU/USD"}, cfg.Catalog.Pairs)
		assert.Equal(t, []string{"Scalp"}, cfg.Catalog.Tags)
		// Strategies key absent from the file keeps the built-ins.
		assert.Equal(t, domain.Strategies, cfg.Catalog.Strategies)
	})

	t.Run("missing catalog file fails loudly", func(t *testing.T) {
		clearJournalEnv(t)
		t.Setenv("JOURNAL_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JOURNAL_CONFIG")
	})
}

func TestCatalogKnownPair(t *testing.T) {
	catalog := Catalog{Pairs: []string{"EUR/USD", "USD/JPY"}}
	assert.True(t, catalog.KnownPair("EUR/USD"))
	assert.True(t, catalog.KnownPair("eur/usd"))
	assert.False(t, catalog.KnownPair("XAU/USD"))
}

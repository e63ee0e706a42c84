package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"forexjournal/internal/domain"
)

func TestComputeDrawdown(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("empty input keeps the initial capital as peak", func(t *testing.T) {
		dd := ComputeDrawdown(nil, 1000, CommissionEndOfPeriod)
		assert.Zero(t, dd.MaxDrawdownPercent)
		assert.InDelta(t, 1000, dd.PeakBalance, 1e-9)
	})

	t.Run("single loss against initial capital", func(t *testing.T) {
		trades := []*domain.Trade{closedTrade("a", jan1, -200, 0, 0)}

		dd := ComputeDrawdown(trades, 1000, CommissionEndOfPeriod)
		assert.InDelta(t, 20.0, dd.MaxDrawdownPercent, 1e-9)
		assert.InDelta(t, 1000, dd.PeakBalance, 1e-9)
	})

	t.Run("peak never decreases and tracks the highest balance", func(t *testing.T) {
		trades := []*domain.Trade{
			closedTrade("a", jan1, 500, 0, 0),                  // 1500, peak 1500
			closedTrade("b", jan1.AddDate(0, 0, 1), -300, 0, 0), // 1200, dd 20%
			closedTrade("c", jan1.AddDate(0, 0, 2), 800, 0, 0),  // 2000, peak 2000
			closedTrade("d", jan1.AddDate(0, 0, 3), -100, 0, 0), // 1900, dd 5%
		}

		dd := ComputeDrawdown(trades, 1000, CommissionEndOfPeriod)
		assert.InDelta(t, 20.0, dd.MaxDrawdownPercent, 1e-9)
		assert.InDelta(t, 2000, dd.PeakBalance, 1e-9)
		assert.GreaterOrEqual(t, dd.PeakBalance, 1000.0)
	})

	t.Run("zero peak never divides by zero", func(t *testing.T) {
		trades := []*domain.Trade{closedTrade("a", jan1, -200, 0, 0)}

		dd := ComputeDrawdown(trades, 0, CommissionEndOfPeriod)
		assert.Zero(t, dd.MaxDrawdownPercent)
		assert.Zero(t, dd.PeakBalance)
	})

	t.Run("per-trade policy debits commission during the walk", func(t *testing.T) {
		trades := []*domain.Trade{closedTrade("a", jan1, -100, 0, 50)}

		endOfPeriod := ComputeDrawdown(trades, 1000, CommissionEndOfPeriod)
		perTrade := ComputeDrawdown(trades, 1000, CommissionPerTrade)
		assert.InDelta(t, 10.0, endOfPeriod.MaxDrawdownPercent, 1e-9)
		assert.InDelta(t, 15.0, perTrade.MaxDrawdownPercent, 1e-9)
	})
}

func TestRecoveryFactor(t *testing.T) {
	t.Run("zero drawdown yields zero, not infinity", func(t *testing.T) {
		assert.Zero(t, RecoveryFactor(500, DrawdownResult{MaxDrawdownPercent: 0, PeakBalance: 1000}))
	})

	t.Run("net profit over worst drawdown in currency terms", func(t *testing.T) {
		// 20% of a 1000 peak is a 200 currency drawdown.
		got := RecoveryFactor(500, DrawdownResult{MaxDrawdownPercent: 20, PeakBalance: 1000})
		assert.InDelta(t, 2.5, got, 1e-9)
	})

	t.Run("never NaN for a losing account", func(t *testing.T) {
		got := RecoveryFactor(-200, DrawdownResult{MaxDrawdownPercent: 20, PeakBalance: 1000})
		assert.InDelta(t, -1.0, got, 1e-9)
	})
}

package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"forexjournal/internal/domain"
)

func TestSummaryMetrics(t *testing.T) {
	base := time.Date(2024, 2, 5, 9, 0, 0, 0, time.UTC)

	t.Run("empty set is all zeros", func(t *testing.T) {
		assert.Equal(t, Summary{}, SummaryMetrics(nil))
		assert.Equal(t, Summary{}, SummaryMetrics([]*domain.Trade{openTrade("o", base)}))
	})

	t.Run("mixed wins losses and break-even", func(t *testing.T) {
		trades := []*domain.Trade{
			closedTrade("w1", base, 100, 2, 5),
			closedTrade("w2", base.Add(time.Hour), 300, 0, 5),
			closedTrade("l1", base.Add(2*time.Hour), -100, 1, 5),
			closedTrade("be", base.Add(3*time.Hour), 0, 0, 5),
		}

		s := SummaryMetrics(trades)
		assert.Equal(t, 4, s.TotalTrades)
		assert.Equal(t, 2, s.WinningTrades)
		assert.Equal(t, 1, s.LosingTrades)
		assert.Equal(t, 1, s.BreakEvenTrades)

		// Break-even excluded: 2 of 3 decided trades won.
		assert.InDelta(t, 66.666666, s.WinRate, 1e-4)
		assert.InDelta(t, 33.333333, s.LossRate, 1e-4)

		assert.InDelta(t, 300.0, s.NetProfit, 1e-9)
		assert.InDelta(t, 75.0, s.AverageTrade, 1e-9)
		assert.InDelta(t, 200.0, s.AverageWin, 1e-9)
		assert.InDelta(t, 100.0, s.AverageLoss, 1e-9)
		assert.InDelta(t, 4.0, s.ProfitFactor, 1e-9) // 400 gross win over 100 gross loss
		assert.InDelta(t, 20.0, s.TotalCommission, 1e-9)
		assert.InDelta(t, 3.0, s.TotalSwap, 1e-9)

		// 2/3 * 200 - 1/3 * 100
		assert.InDelta(t, 100.0, s.ExpectedValue, 1e-6)
	})

	t.Run("profit factor is one with wins and no losses", func(t *testing.T) {
		trades := []*domain.Trade{
			closedTrade("w1", base, 50, 0, 0),
			closedTrade("w2", base.Add(time.Hour), 70, 0, 0),
		}

		s := SummaryMetrics(trades)
		assert.InDelta(t, 1.0, s.ProfitFactor, 1e-9)
		assert.InDelta(t, 100.0, s.WinRate, 1e-9)
		assert.Zero(t, s.AverageLoss)
	})

	t.Run("profit factor is zero with neither wins nor losses", func(t *testing.T) {
		trades := []*domain.Trade{closedTrade("be", base, 0, 0, 0)}

		s := SummaryMetrics(trades)
		assert.Zero(t, s.ProfitFactor)
		assert.Zero(t, s.WinRate)
		assert.Zero(t, s.LossRate)
		assert.Zero(t, s.ExpectedValue)
	})

	t.Run("sharpe uses population dispersion", func(t *testing.T) {
		trades := []*domain.Trade{
			closedTrade("a", base, 100, 0, 0),
			closedTrade("b", base.Add(time.Hour), 300, 0, 0),
		}

		// mean 200, population stddev 100
		s := SummaryMetrics(trades)
		assert.InDelta(t, 2.0, s.SharpeRatio, 1e-9)
	})

	t.Run("sharpe is zero for a single trade", func(t *testing.T) {
		s := SummaryMetrics([]*domain.Trade{closedTrade("only", base, 100, 0, 0)})
		assert.Zero(t, s.SharpeRatio)
	})

	t.Run("sharpe is zero for identical profits", func(t *testing.T) {
		trades := []*domain.Trade{
			closedTrade("a", base, 42, 0, 0),
			closedTrade("b", base.Add(time.Hour), 42, 0, 0),
		}
		assert.Zero(t, SummaryMetrics(trades).SharpeRatio)
	})
}

func TestRound3(t *testing.T) {
	assert.InDelta(t, 1.235, Round3(1.23456), 1e-12)
	assert.InDelta(t, -1.235, Round3(-1.2346), 1e-12)
	assert.InDelta(t, 0.0, Round3(0.0004), 1e-12)
	assert.InDelta(t, 100.0, Round3(100), 1e-12)
}

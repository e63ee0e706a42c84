package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forexjournal/internal/domain"
)

func TestAggregateBy(t *testing.T) {
	base := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	t.Run("break-even trades never enter the win rate denominator", func(t *testing.T) {
		trades := []*domain.Trade{
			closedTrade("w", base, 100, 0, 0),
			closedTrade("be", base.Add(time.Hour), 0, 0, 0),
			closedTrade("l", base.Add(2*time.Hour), -50, 0, 0),
		}

		buckets := AggregateBy(trades, func(*domain.Trade) string { return "all" })
		require.Len(t, buckets, 1)

		b := buckets[0]
		assert.Equal(t, 3, b.TradeCount)
		assert.Equal(t, 1, b.WinCount)
		assert.Equal(t, 1, b.LossCount)
		assert.Equal(t, 1, b.BreakEvenCount)
		assert.InDelta(t, 50.0, b.WinRate, 1e-9)
		assert.InDelta(t, 50.0, b.TotalProfit, 1e-9)
	})

	t.Run("all break-even bucket reports zero win rate", func(t *testing.T) {
		trades := []*domain.Trade{
			closedTrade("a", base, 0, 0, 0),
			closedTrade("b", base.Add(time.Hour), 0, 0, 0),
		}

		buckets := AggregateBy(trades, func(*domain.Trade) string { return "all" })
		require.Len(t, buckets, 1)
		assert.Zero(t, buckets[0].WinRate)
	})

	t.Run("open trades are ignored", func(t *testing.T) {
		trades := []*domain.Trade{
			openTrade("open", base),
			closedTrade("closed", base, 10, 0, 0),
		}

		buckets := AggregateBy(trades, func(*domain.Trade) string { return "all" })
		require.Len(t, buckets, 1)
		assert.Equal(t, 1, buckets[0].TradeCount)
	})
}

func TestByPair(t *testing.T) {
	base := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	withPair := func(tr *domain.Trade, pair string) *domain.Trade {
		tr.Pair = pair
		return tr
	}

	trades := []*domain.Trade{
		withPair(closedTrade("a", base, 30, 0, 0), "GBP/USD"),
		withPair(closedTrade("b", base.Add(time.Hour), 100, 0, 0), "EUR/USD"),
		withPair(closedTrade("c", base.Add(2*time.Hour), -20, 0, 0), "USD/JPY"),
		withPair(closedTrade("d", base.Add(3*time.Hour), -10, 0, 0), "EUR/USD"),
	}

	t.Run("ranks pairs by total profit descending", func(t *testing.T) {
		buckets := ByPair(trades)
		require.Len(t, buckets, 3)
		assert.Equal(t, "EUR/USD", buckets[0].Key)
		assert.InDelta(t, 90.0, buckets[0].TotalProfit, 1e-9)
		assert.Equal(t, "GBP/USD", buckets[1].Key)
		assert.Equal(t, "USD/JPY", buckets[2].Key)
	})

	t.Run("top pairs truncates the ranking", func(t *testing.T) {
		top := TopPairs(ByPair(trades), 2)
		require.Len(t, top, 2)
		assert.Equal(t, "EUR/USD", top[0].Key)
		assert.Equal(t, "GBP/USD", top[1].Key)
	})

	t.Run("top pairs with a large or zero n returns everything", func(t *testing.T) {
		assert.Len(t, TopPairs(ByPair(trades), 100), 3)
		assert.Len(t, TopPairs(ByPair(trades), 0), 3)
	})
}

func TestBySession(t *testing.T) {
	base := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	withSession := func(tr *domain.Trade, s domain.TradingSession) *domain.Trade {
		tr.Session = s
		return tr
	}

	trades := []*domain.Trade{
		withSession(closedTrade("a", base, 80, 0, 0), domain.SessionLondon),
		withSession(closedTrade("b", base.Add(time.Hour), -30, 0, 0), domain.SessionTokyo),
		withSession(closedTrade("c", base.Add(2*time.Hour), 10, 0, 0), domain.SessionNone),
	}

	buckets := BySession(trades)
	require.Len(t, buckets, 3)
	assert.Equal(t, "London", buckets[0].Key)
	assert.Equal(t, "No Session", buckets[1].Key)
	assert.Equal(t, "Tokyo", buckets[2].Key)
}

func TestByDayOfWeek(t *testing.T) {
	// 2024-01-01 is a Monday.
	monday := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("always emits the full Sunday through Saturday grid", func(t *testing.T) {
		buckets := ByDayOfWeek(nil)
		require.Len(t, buckets, 7)
		assert.Equal(t, "Sunday", buckets[0].Key)
		assert.Equal(t, "Saturday", buckets[6].Key)
		for _, b := range buckets {
			assert.Zero(t, b.TradeCount)
		}
	})

	t.Run("keys by exit date", func(t *testing.T) {
		trades := []*domain.Trade{
			closedTrade("w", monday, 100, 0, 0),
			closedTrade("l", monday.Add(time.Hour), -40, 0, 0),
			closedTrade("tue", monday.AddDate(0, 0, 1), 25, 0, 0),
		}

		buckets := ByDayOfWeek(trades)
		require.Len(t, buckets, 7)

		mon := buckets[time.Monday]
		assert.Equal(t, "Monday", mon.Key)
		assert.Equal(t, 2, mon.TradeCount)
		assert.Equal(t, 1, mon.WinCount)
		assert.InDelta(t, 60.0, mon.TotalProfit, 1e-9)

		tue := buckets[time.Tuesday]
		assert.Equal(t, 1, tue.TradeCount)
	})

	t.Run("exit past midnight lands on the exit weekday", func(t *testing.T) {
		tr := closedTrade("overnight", monday, 10, 0, 0)
		tr.EntryTime = time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
		tr.ExitTime = time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC)

		buckets := ByDayOfWeek([]*domain.Trade{tr})
		assert.Zero(t, buckets[time.Monday].TradeCount)
		assert.Equal(t, 1, buckets[time.Tuesday].TradeCount)
	})
}

func TestByHour(t *testing.T) {
	t.Run("always emits six four-hour windows", func(t *testing.T) {
		buckets := ByHour(nil)
		require.Len(t, buckets, 6)
		assert.Equal(t, "00:00-04:00", buckets[0].Key)
		assert.Equal(t, "20:00-24:00", buckets[5].Key)
	})

	t.Run("keys by entry hour in GMT", func(t *testing.T) {
		trades := []*domain.Trade{
			closedTrade("early", time.Date(2024, 1, 1, 1, 30, 0, 0, time.UTC), 10, 0, 0),
			closedTrade("lunch", time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC), -5, 0, 0),
			closedTrade("lunch2", time.Date(2024, 1, 1, 15, 59, 0, 0, time.UTC), 20, 0, 0),
		}

		buckets := ByHour(trades)
		require.Len(t, buckets, 6)
		assert.Equal(t, 1, buckets[0].TradeCount)  // 00:00-04:00
		assert.Equal(t, 2, buckets[3].TradeCount)  // 12:00-16:00
		assert.InDelta(t, 15.0, buckets[3].TotalProfit, 1e-9)
	})

	t.Run("non-UTC entries normalize to GMT", func(t *testing.T) {
		est := time.FixedZone("EST", -5*3600)
		tr := closedTrade("ny", time.Date(2024, 1, 1, 22, 0, 0, 0, est), 10, 0, 0) // 03:00 GMT

		buckets := ByHour([]*domain.Trade{tr})
		assert.Equal(t, 1, buckets[0].TradeCount)
	})
}

package analytics

import (
	"fmt"
	"sort"
	"time"

	"forexjournal/internal/domain"
)

// Bucket aggregates the closed trades sharing one classification key.
type Bucket struct {
	Key            string
	TotalProfit    float64
	TradeCount     int
	WinCount       int
	LossCount      int
	BreakEvenCount int
	// WinRate is WinCount over decided trades (wins + losses), percent.
	// Break-even trades never enter the denominator; a bucket with no
	// decided trades reports 0.
	WinRate float64
}

// KeyFunc extracts the grouping key for a closed trade.
type KeyFunc func(t *domain.Trade) string

// AggregateBy buckets the closed subset of trades by key. All groupings in
// the journal (pair, session, day of week, time of day) run through this one
// reduction so their win/loss semantics cannot drift apart. Buckets appear in
// first-seen order; callers impose their own display ordering.
func AggregateBy(trades []*domain.Trade, keyFn KeyFunc) []Bucket {
	var buckets []Bucket
	index := make(map[string]int)

	for _, t := range ClosedTrades(trades) {
		key := keyFn(t)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{Key: key})
		}
		b := &buckets[i]
		b.TradeCount++
		b.TotalProfit += t.Profit
		switch domain.ResultOf(t.Profit) {
		case domain.ResultWin:
			b.WinCount++
		case domain.ResultLoss:
			b.LossCount++
		default:
			b.BreakEvenCount++
		}
	}

	for i := range buckets {
		decided := buckets[i].WinCount + buckets[i].LossCount
		if decided > 0 {
			buckets[i].WinRate = float64(buckets[i].WinCount) / float64(decided) * 100
		}
	}
	return buckets
}

// ByPair buckets closed trades by currency pair, ranked by total profit
// descending. Pairs without closed trades are absent. Use TopPairs for the
// compact dashboard ranking.
func ByPair(trades []*domain.Trade) []Bucket {
	buckets := AggregateBy(trades, func(t *domain.Trade) string { return t.Pair })
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].TotalProfit > buckets[j].TotalProfit
	})
	return buckets
}

// TopPairs truncates a profit-ranked pair breakdown to its n most profitable
// entries. n <= 0 keeps the full set; the truncation is purely presentational.
func TopPairs(buckets []Bucket, n int) []Bucket {
	if n > 0 && len(buckets) > n {
		return buckets[:n]
	}
	return buckets
}

// BySession buckets closed trades by trading session, ranked by total profit
// descending. Trades without a session fall into a "No Session" catch-all;
// sessions that saw no trades are omitted so they do not pollute rankings.
func BySession(trades []*domain.Trade) []Bucket {
	buckets := AggregateBy(trades, func(t *domain.Trade) string {
		return t.Session.DisplayName()
	})
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].TotalProfit > buckets[j].TotalProfit
	})
	return buckets
}

// ByDayOfWeek buckets closed trades by the weekday they were closed on
// (falling back to the entry date for records missing an exit). All seven
// days are always emitted, Sunday through Saturday, because they form a fixed
// display grid even when empty.
func ByDayOfWeek(trades []*domain.Trade) []Bucket {
	byDay := AggregateBy(trades, func(t *domain.Trade) string {
		return weekdayOf(t).String()
	})
	index := make(map[string]Bucket, len(byDay))
	for _, b := range byDay {
		index[b.Key] = b
	}

	out := make([]Bucket, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if b, ok := index[d.String()]; ok {
			out = append(out, b)
		} else {
			out = append(out, Bucket{Key: d.String()})
		}
	}
	return out
}

// hourBucketSpan is the width of a time-of-day bucket in hours.
const hourBucketSpan = 4

// ByHour buckets closed trades by the four-hour window of day their entry
// falls in (GMT), "00:00-04:00" through "20:00-24:00". Like the weekday grid,
// all six windows are always emitted.
func ByHour(trades []*domain.Trade) []Bucket {
	byHour := AggregateBy(trades, func(t *domain.Trade) string {
		ts := t.EntryTime
		if ts.IsZero() {
			ts = t.ExitTime
		}
		return hourBucketLabel(ts.UTC().Hour() / hourBucketSpan)
	})
	index := make(map[string]Bucket, len(byHour))
	for _, b := range byHour {
		index[b.Key] = b
	}

	out := make([]Bucket, 0, 24/hourBucketSpan)
	for i := 0; i < 24/hourBucketSpan; i++ {
		label := hourBucketLabel(i)
		if b, ok := index[label]; ok {
			out = append(out, b)
		} else {
			out = append(out, Bucket{Key: label})
		}
	}
	return out
}

func hourBucketLabel(i int) string {
	return fmt.Sprintf("%02d:00-%02d:00", i*hourBucketSpan, (i+1)*hourBucketSpan)
}

// weekdayOf keys a trade to a weekday by exit date, falling back to entry.
func weekdayOf(t *domain.Trade) time.Weekday {
	ts := t.ExitTime
	if ts.IsZero() {
		ts = t.EntryTime
	}
	return ts.UTC().Weekday()
}

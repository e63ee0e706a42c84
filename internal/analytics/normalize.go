package analytics

import (
	"sort"

	"forexjournal/internal/domain"
)

// ClosedTrades returns the closed subset of trades ordered ascending by entry
// time. The sort is stable, so same-timestamp trades keep their input order
// and the balance walk stays deterministic across invocations. Trades with a
// zero entry time sort first rather than failing; rejecting malformed records
// is the job of the validation boundary in front of the engine.
//
// The function is idempotent: normalizing an already normalized sequence
// returns the same sequence. Empty input yields an empty result, never an
// error.
func ClosedTrades(trades []*domain.Trade) []*domain.Trade {
	closed := make([]*domain.Trade, 0, len(trades))
	for _, t := range trades {
		if t != nil && t.IsClosed() {
			closed = append(closed, t)
		}
	}
	sort.SliceStable(closed, func(i, j int) bool {
		return closed[i].EntryTime.Before(closed[j].EntryTime)
	})
	return closed
}

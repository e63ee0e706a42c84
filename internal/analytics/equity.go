package analytics

import (
	"time"

	"forexjournal/internal/domain"
)

// EquityPoint is one trading day on the account equity curve. Balance is the
// cumulative figure for area/line renderings; Change is the same day's delta
// for bar renderings, so either chart style works without recomputation.
type EquityPoint struct {
	Date       time.Time // Calendar day, UTC midnight
	Balance    float64   // Running balance after the day's trades
	Change     float64   // Sum of the day's trade contributions
	Commission float64   // Commissions charged that day
}

// BuildEquitySeries walks the closed trades chronologically and produces one
// point per distinct trading day touched, preceded by a synthetic seed point
// one day before the first trade at the initial capital.
//
// Each trade contributes profit − swap to the running balance (minus
// commission under the per-trade policy). Trades sharing a calendar day
// collapse into a single point whose balance is the last processed that day
// and whose change accumulates all of them. Under the end-of-period policy
// the commission total is settled once against the final point, modelling
// commission as an end-of-period debit rather than a per-trade one.
//
// Whichever policy is chosen, the final balance equals
// initialCapital + Σprofit − Σswap − Σcommission over the closed set.
// Zero closed trades yield a nil series.
func BuildEquitySeries(trades []*domain.Trade, initialCapital float64, policy CommissionPolicy) []EquityPoint {
	closed := ClosedTrades(trades)
	if len(closed) == 0 {
		return nil
	}

	seed := tradingDay(closed[0]).AddDate(0, 0, -1)
	points := []EquityPoint{{Date: seed, Balance: initialCapital}}

	balance := initialCapital
	var totalCommission float64
	for _, t := range closed {
		balance += contribution(t, policy)
		totalCommission += t.Commission

		day := tradingDay(t)
		last := &points[len(points)-1]
		if day.IsZero() || day.Equal(last.Date) {
			// Same day as the previous point, or a record with no usable
			// date at all: fold into the current point.
			last.Balance = balance
			last.Change += contribution(t, policy)
			last.Commission += t.Commission
			continue
		}
		points = append(points, EquityPoint{
			Date:       day,
			Balance:    balance,
			Change:     contribution(t, policy),
			Commission: t.Commission,
		})
	}

	if policy == CommissionEndOfPeriod {
		points[len(points)-1].Balance -= totalCommission
	}
	return points
}

// tradingDay keys a trade to a UTC calendar day by its entry timestamp,
// falling back to the exit timestamp. Zero when neither is set.
func tradingDay(t *domain.Trade) time.Time {
	ts := t.EntryTime
	if ts.IsZero() {
		ts = t.ExitTime
	}
	if ts.IsZero() {
		return time.Time{}
	}
	utc := ts.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

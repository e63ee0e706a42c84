// Package analytics is the journal's performance accounting engine: pure,
// stateless reductions that turn a snapshot of trade records plus the
// account's initial capital into balance series, drawdown, win-rate and
// risk-adjusted figures.
//
// Every function filters to CLOSED trades itself, never mutates its input,
// and is deterministic for a given input sequence, so callers may recompute
// on every refresh with identical results. Missing numeric fields default to
// zero and every ratio guards its denominator: the engine prefers a zero over
// a NaN because it feeds displays.
package analytics

import "forexjournal/internal/domain"

// CommissionPolicy controls when commissions are debited from the running
// balance. The two policies produce different drawdown paths, so the equity
// and drawdown walks must always be computed under the same one.
type CommissionPolicy string

const (
	// CommissionEndOfPeriod keeps commissions out of the per-trade walk and
	// settles the total once against the final balance.
	CommissionEndOfPeriod CommissionPolicy = "endOfPeriod"
	// CommissionPerTrade debits each trade's commission as it is accumulated.
	CommissionPerTrade CommissionPolicy = "perTrade"
)

// IsValid reports whether p names a known policy.
func (p CommissionPolicy) IsValid() bool {
	return p == CommissionEndOfPeriod || p == CommissionPerTrade
}

// contribution is a closed trade's net effect on the running balance under
// the given policy. Swap is always part of the walk; commission only under
// the per-trade policy.
func contribution(t *domain.Trade, policy CommissionPolicy) float64 {
	c := t.Profit - t.Swap
	if policy == CommissionPerTrade {
		c -= t.Commission
	}
	return c
}

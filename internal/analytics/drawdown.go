package analytics

import "forexjournal/internal/domain"

// DrawdownResult quantifies the worst peak-to-trough erosion of the account
// balance across the chronological trade walk.
type DrawdownResult struct {
	MaxDrawdownPercent float64 // Worst observed decline from a balance peak, percent
	PeakBalance        float64 // Highest balance reached; never below initial capital
}

// ComputeDrawdown walks the closed trades chronologically, tracking the
// running balance and its historical peak. The peak starts at the initial
// capital and never decreases, so PeakBalance >= initialCapital always. An
// account that never had capital (peak 0) reports zero drawdown rather than
// dividing by zero.
//
// The walk uses the same contribution policy as BuildEquitySeries so the two
// never disagree about what the running balance was.
func ComputeDrawdown(trades []*domain.Trade, initialCapital float64, policy CommissionPolicy) DrawdownResult {
	peak := initialCapital
	current := initialCapital
	var maxDrawdown float64

	for _, t := range ClosedTrades(trades) {
		current += contribution(t, policy)
		if current > peak {
			peak = current
		}
		if peak > 0 {
			drawdown := (peak - current) / peak * 100
			if drawdown > maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}
	return DrawdownResult{MaxDrawdownPercent: maxDrawdown, PeakBalance: peak}
}

// RecoveryFactor relates net profit to the worst drawdown in absolute
// currency terms; higher is better. Zero drawdown yields 0, never +Inf.
func RecoveryFactor(netProfit float64, dd DrawdownResult) float64 {
	worst := dd.MaxDrawdownPercent / 100 * dd.PeakBalance
	if worst == 0 {
		return 0
	}
	return netProfit / worst
}

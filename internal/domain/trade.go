package domain

import "time"

// Trade is the unit of record in the journal.
//
// Status and the realized fields must always agree: a CLOSED trade has a
// non-zero ExitTime and defined Profit/Pips, an OPEN trade has neither. The
// application service enforces this before persisting; the analytics engine
// assumes it and treats a closed trade whose profit was never recorded as
// contributing zero.
type Trade struct {
	ID         string         // ULID, time-sortable
	Pair       string         // Currency pair symbol, e.g. "EUR/USD"
	Direction  Direction      // BUY or SELL (legacy NEUTRAL accepted)
	EntryTime  time.Time      // Timestamp the position was opened
	ExitTime   time.Time      // Zero value while the trade is open
	EntryPrice float64        // Price in instrument-native units
	ExitPrice  float64        // 0 while open
	StopLoss   float64        // 0 when no stop was placed
	TakeProfit float64        // 0 when no target was placed
	LotSize    float64        // Position size multiplier (1.0 = standard lot)
	Commission float64        // Cost charged for the trade, account currency
	Swap       float64        // Overnight financing, signed
	Profit     float64        // Realized P/L in account currency, defined once closed
	Pips       float64        // Signed pip distance moved, defined once closed
	RiskReward float64        // Reward-to-risk ratio, 0 when not derivable
	Strategy   string         // Strategy label, free text
	Tags       []string       // Free-text tags
	Session    TradingSession // Market-hours window, empty when none recorded
	Notes      string         // Free-text notes
	Status     Status         // OPEN or CLOSED
}

// IsOpen reports whether the trade has not been closed yet.
func (t *Trade) IsOpen() bool {
	return t.Status == StatusOpen
}

// IsClosed reports whether the trade has a recorded exit.
func (t *Trade) IsClosed() bool {
	return t.Status == StatusClosed
}

// Result classifies the realized outcome. Open trades have no result.
func (t *Trade) Result() Result {
	if !t.IsClosed() {
		return ""
	}
	return ResultOf(t.Profit)
}

// Duration returns how long the position was held. Zero for open trades.
func (t *Trade) Duration() time.Duration {
	if !t.IsClosed() || t.ExitTime.IsZero() || t.EntryTime.IsZero() {
		return 0
	}
	return t.ExitTime.Sub(t.EntryTime)
}

package domain

import "time"

// AccountSettings holds the externally supplied account parameters. The
// balance here is the journal's initial capital, mutated only by explicit
// add-funds and reset operations; it is never derived from trades.
type AccountSettings struct {
	Balance   float64   // Initial capital, 0 when the account was never funded
	UpdatedAt time.Time // Last add-funds/reset timestamp
}

package domain

// Direction represents the side of a trade (BUY or SELL).
type Direction string

const (
	Buy  Direction = "BUY"
	Sell Direction = "SELL"
	// Neutral is a legacy direction found in records imported from older
	// journal versions. New trades are always BUY or SELL.
	Neutral Direction = "NEUTRAL"
)

// IsValid reports whether d is one of the accepted directions.
func (d Direction) IsValid() bool {
	switch d {
	case Buy, Sell, Neutral:
		return true
	}
	return false
}

// Status represents the lifecycle state of a journal trade.
type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
)

// Result classifies a closed trade by its realized profit.
type Result string

const (
	ResultWin       Result = "WIN"
	ResultLoss      Result = "LOSS"
	ResultBreakEven Result = "BREAK_EVEN"
)

// ResultOf classifies a realized profit figure. Break-even trades are their
// own category: they count toward trade totals but never toward win or loss
// rates.
func ResultOf(profit float64) Result {
	switch {
	case profit > 0:
		return ResultWin
	case profit < 0:
		return ResultLoss
	default:
		return ResultBreakEven
	}
}

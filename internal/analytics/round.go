package analytics

import "math"

// Round3 rounds to the journal's fixed 3-decimal display precision. Apply it
// only at presentation boundaries; intermediate arithmetic stays full
// precision so rounding error cannot compound across sequential aggregation.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

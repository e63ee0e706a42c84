package domain

import (
	"math"
	"strings"
)

// StandardLotUnits is the number of base-currency units in one standard lot.
const StandardLotUnits = 100000

// PipSize returns the smallest standard price increment for a currency pair:
// 0.01 for JPY-quoted pairs, 0.0001 for everything else.
func PipSize(pair string) float64 {
	if strings.HasSuffix(strings.ToUpper(pair), "JPY") {
		return 0.01
	}
	return 0.0001
}

// PipValue returns the quote-currency value of one pip for the given pair and
// lot size. Profit scales linearly with lot size.
func PipValue(pair string, lotSize float64) float64 {
	return PipSize(pair) * StandardLotUnits * lotSize
}

// PipsBetween returns the signed pip distance from entry to exit for the
// given direction. A SELL profits when price falls, so its distance is
// negated.
func PipsBetween(pair string, direction Direction, entryPrice, exitPrice float64) float64 {
	pips := (exitPrice - entryPrice) / PipSize(pair)
	if direction == Sell {
		pips = -pips
	}
	return pips
}

// RiskRewardRatio derives the reward-to-risk ratio from entry, stop-loss and
// take-profit prices. Returns 0 when either level is missing or the risk
// distance is zero.
func RiskRewardRatio(entryPrice, stopLoss, takeProfit float64) float64 {
	if stopLoss == 0 || takeProfit == 0 {
		return 0
	}
	risk := math.Abs(entryPrice - stopLoss)
	if risk == 0 {
		return 0
	}
	return math.Abs(takeProfit-entryPrice) / risk
}

// CurrencyPairs lists the standard pairs offered by the journal's entry form.
var CurrencyPairs = []string{
	"EUR/USD", "GBP/USD", "USD/JPY", "AUD/USD", "USD/CAD",
	"USD/CHF", "NZD/USD", "EUR/GBP", "EUR/JPY", "GBP/JPY",
	"AUD/JPY", "EUR/AUD", "EUR/CAD", "USD/MXN", "USD/ZAR",
}

// Strategies lists the standard strategy labels.
var Strategies = []string{
	"Trend Following", "Breakout", "Mean Reversion", "Scalping",
	"Day Trading", "Swing Trading", "Position Trading", "Grid Trading",
	"Martingale", "Hedging", "Arbitrage", "News Trading",
}

// TradeTags lists the standard free-text tags.
var TradeTags = []string{
	"Good Setup", "Bad Entry", "Emotional Trade", "Revenge Trade",
	"News Event", "Fundamental", "Technical", "Pre-market",
	"High Volume", "Low Volume", "Choppy Market", "Strong Trend",
}

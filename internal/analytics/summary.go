package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"forexjournal/internal/domain"
)

// Summary holds the whole-set portfolio health metrics computed once over all
// closed trades. Monetary fields are full precision; round at the display
// boundary with Round3.
type Summary struct {
	TotalTrades     int
	WinningTrades   int
	LosingTrades    int
	BreakEvenTrades int
	WinRate         float64 // Percent of decided trades that won
	LossRate        float64 // Percent of decided trades that lost
	ProfitFactor    float64 // Gross wins over absolute gross losses
	AverageTrade    float64 // Net profit per closed trade
	NetProfit       float64 // Σ profit over the closed set
	AverageWin      float64 // Mean winning profit, 0 when no wins
	AverageLoss     float64 // Mean losing amount, absolute, 0 when no losses
	ExpectedValue   float64 // Probability-weighted outcome per trade
	SharpeRatio     float64 // Mean profit over population stddev of profit
	TotalCommission float64
	TotalSwap       float64
}

// SummaryMetrics reduces the closed trades to single-number indicators.
// Break-even trades count toward TotalTrades and NetProfit but are excluded
// from the win/loss rate denominator. Every ratio guards an empty or
// all-break-even set by reporting 0; ProfitFactor reports 1 when there are
// wins and no losses.
func SummaryMetrics(trades []*domain.Trade) Summary {
	closed := ClosedTrades(trades)
	var s Summary
	if len(closed) == 0 {
		return s
	}

	profits := make([]float64, 0, len(closed))
	var grossWin, grossLoss float64
	for _, t := range closed {
		profits = append(profits, t.Profit)
		s.NetProfit += t.Profit
		s.TotalCommission += t.Commission
		s.TotalSwap += t.Swap

		switch domain.ResultOf(t.Profit) {
		case domain.ResultWin:
			s.WinningTrades++
			grossWin += t.Profit
		case domain.ResultLoss:
			s.LosingTrades++
			grossLoss += t.Profit
		default:
			s.BreakEvenTrades++
		}
	}
	s.TotalTrades = len(closed)

	if decided := s.WinningTrades + s.LosingTrades; decided > 0 {
		s.WinRate = float64(s.WinningTrades) / float64(decided) * 100
		s.LossRate = float64(s.LosingTrades) / float64(decided) * 100
	}

	switch {
	case grossLoss != 0:
		s.ProfitFactor = grossWin / math.Abs(grossLoss)
	case grossWin > 0:
		s.ProfitFactor = 1
	}

	s.AverageTrade = s.NetProfit / float64(s.TotalTrades)
	if s.WinningTrades > 0 {
		s.AverageWin = grossWin / float64(s.WinningTrades)
	}
	if s.LosingTrades > 0 {
		s.AverageLoss = math.Abs(grossLoss) / float64(s.LosingTrades)
	}
	s.ExpectedValue = s.WinRate/100*s.AverageWin - s.LossRate/100*s.AverageLoss

	// Population stddev: a single trade has no dispersion and reports 0.
	if sd := stat.PopStdDev(profits, nil); sd > 0 {
		s.SharpeRatio = stat.Mean(profits, nil) / sd
	}
	return s
}

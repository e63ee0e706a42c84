package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"forexjournal/internal/analytics"
	"forexjournal/internal/domain"
	"forexjournal/internal/ports"
	"forexjournal/pkg/id"
)

// JournalService is the validation and error-reporting boundary in front of
// the accounting engine: it owns trade lifecycle rules (OPEN/CLOSED
// agreement, derived pips/profit) and account parameter updates, and hands
// the engine consistent snapshots.
type JournalService struct {
	logger  ports.Logger
	trades  ports.TradeRepository
	account ports.AccountRepository
	policy  analytics.CommissionPolicy
}

// NewJournalService creates a new application service instance.
func NewJournalService(
	logger ports.Logger,
	trades ports.TradeRepository,
	account ports.AccountRepository,
	policy analytics.CommissionPolicy,
) (*JournalService, error) {
	if logger == nil || trades == nil || account == nil {
		return nil, fmt.Errorf("missing required dependencies for JournalService")
	}
	if policy == "" {
		policy = analytics.CommissionEndOfPeriod
	}
	if !policy.IsValid() {
		return nil, fmt.Errorf("unknown commission policy %q: %w", policy, ports.ErrConfigurationError)
	}
	return &JournalService{
		logger:  logger,
		trades:  trades,
		account: account,
		policy:  policy,
	}, nil
}

// LogTradeParams carries the caller-supplied fields for a new journal entry.
type LogTradeParams struct {
	Pair       string
	Direction  domain.Direction
	EntryTime  time.Time
	EntryPrice float64
	LotSize    float64
	StopLoss   float64
	TakeProfit float64
	Commission float64
	Swap       float64
	Strategy   string
	Tags       []string
	Session    domain.TradingSession
	Notes      string
}

func (p LogTradeParams) validate() error {
	var errs []string
	if strings.TrimSpace(p.Pair) == "" {
		errs = append(errs, "pair must be set")
	}
	if !p.Direction.IsValid() {
		errs = append(errs, fmt.Sprintf("unknown direction %q", p.Direction))
	}
	if p.EntryTime.IsZero() {
		errs = append(errs, "entry time must be set")
	}
	if p.EntryPrice <= 0 {
		errs = append(errs, "entry price must be positive")
	}
	if p.LotSize <= 0 {
		errs = append(errs, "lot size must be positive")
	}
	if !p.Session.IsValid() {
		errs = append(errs, fmt.Sprintf("unknown session %q", p.Session))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ports.ErrInvalidRequest, strings.Join(errs, "; "))
	}
	return nil
}

// LogTrade validates and persists a new OPEN trade. The trading session is
// derived from the entry timestamp when the caller did not record one, and
// the reward-to-risk ratio from the stop/target levels when both are set.
func (s *JournalService) LogTrade(ctx context.Context, p LogTradeParams) (*domain.Trade, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	session := p.Session
	if session == domain.SessionNone {
		session = domain.SessionAt(p.EntryTime)
	}

	trade := &domain.Trade{
		ID:         id.New(),
		Pair:       strings.ToUpper(strings.TrimSpace(p.Pair)),
		Direction:  p.Direction,
		EntryTime:  p.EntryTime.UTC(),
		EntryPrice: p.EntryPrice,
		StopLoss:   p.StopLoss,
		TakeProfit: p.TakeProfit,
		LotSize:    p.LotSize,
		Commission: p.Commission,
		Swap:       p.Swap,
		RiskReward: domain.RiskRewardRatio(p.EntryPrice, p.StopLoss, p.TakeProfit),
		Strategy:   p.Strategy,
		Tags:       p.Tags,
		Session:    session,
		Notes:      p.Notes,
		Status:     domain.StatusOpen,
	}

	if err := s.trades.Create(ctx, trade); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "Trade logged", map[string]interface{}{
		"tradeID": trade.ID, "pair": trade.Pair, "direction": trade.Direction, "session": trade.Session,
	})
	return trade, nil
}

// CloseTrade records the exit of an open trade and derives its realized pips
// and profit from the price distance, pip size and lot size. After closing,
// status and the realized fields always agree: CLOSED implies exit time,
// profit and pips are all defined.
func (s *JournalService) CloseTrade(ctx context.Context, tradeID string, exitPrice float64, exitTime time.Time) (*domain.Trade, error) {
	trade, err := s.trades.FindByID(ctx, tradeID)
	if err != nil {
		return nil, err
	}
	if trade == nil {
		return nil, fmt.Errorf("trade %s: %w", tradeID, ports.ErrNotFound)
	}
	if trade.IsClosed() {
		return nil, fmt.Errorf("trade %s: %w", tradeID, ports.ErrTradeAlreadyClosed)
	}
	if exitPrice <= 0 {
		return nil, fmt.Errorf("%w: exit price must be positive", ports.ErrInvalidRequest)
	}
	if exitTime.IsZero() {
		exitTime = time.Now().UTC()
	}
	if exitTime.Before(trade.EntryTime) {
		return nil, fmt.Errorf("%w: exit time precedes entry time", ports.ErrInvalidRequest)
	}

	trade.ExitTime = exitTime.UTC()
	trade.ExitPrice = exitPrice
	trade.Pips = domain.PipsBetween(trade.Pair, trade.Direction, trade.EntryPrice, exitPrice)
	trade.Profit = trade.Pips * domain.PipValue(trade.Pair, trade.LotSize)
	trade.Status = domain.StatusClosed

	if err := s.trades.Update(ctx, trade); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "Trade closed", map[string]interface{}{
		"tradeID": trade.ID, "pair": trade.Pair, "profit": trade.Profit, "pips": trade.Pips, "result": trade.Result(),
	})
	return trade, nil
}

// DeleteTrade removes a trade from the journal.
func (s *JournalService) DeleteTrade(ctx context.Context, tradeID string) error {
	if err := s.trades.Delete(ctx, tradeID); err != nil {
		return err
	}
	s.logger.Info(ctx, "Trade deleted", map[string]interface{}{"tradeID": tradeID})
	return nil
}

// GetTrade retrieves a single trade. Returns ErrNotFound when missing.
func (s *JournalService) GetTrade(ctx context.Context, tradeID string) (*domain.Trade, error) {
	trade, err := s.trades.FindByID(ctx, tradeID)
	if err != nil {
		return nil, err
	}
	if trade == nil {
		return nil, fmt.Errorf("trade %s: %w", tradeID, ports.ErrNotFound)
	}
	return trade, nil
}

// TradesToday counts the journal entries logged on the current UTC day, the
// figure shown alongside a freshly logged trade.
func (s *JournalService) TradesToday(ctx context.Context) (int, error) {
	return s.trades.CountToday(ctx)
}

// TradeFilter narrows ListTrades results. Zero values match everything.
type TradeFilter struct {
	Status domain.Status
	Pair   string
}

// ListTrades retrieves trades ordered by entry time descending, optionally
// filtered by status and pair.
func (s *JournalService) ListTrades(ctx context.Context, filter TradeFilter) ([]*domain.Trade, error) {
	trades, err := s.trades.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if filter.Status == "" && filter.Pair == "" {
		return trades, nil
	}

	filtered := make([]*domain.Trade, 0, len(trades))
	for _, t := range trades {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Pair != "" && !strings.EqualFold(t.Pair, filter.Pair) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered, nil
}

// AddFunds increases the account's initial capital.
func (s *JournalService) AddFunds(ctx context.Context, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", ports.ErrInvalidRequest)
	}
	balance, err := s.account.AddFunds(ctx, amount)
	if err != nil {
		return 0, err
	}
	s.logger.Info(ctx, "Funds added", map[string]interface{}{"amount": amount, "balance": balance})
	return balance, nil
}

// ResetCapital sets the initial capital back to zero.
func (s *JournalService) ResetCapital(ctx context.Context) error {
	if err := s.account.SetBalance(ctx, 0); err != nil {
		return err
	}
	s.logger.Info(ctx, "Account capital reset to zero")
	return nil
}

// InitialCapital returns the account's initial capital scalar.
func (s *JournalService) InitialCapital(ctx context.Context) (float64, error) {
	settings, err := s.account.GetSettings(ctx)
	if err != nil {
		return 0, err
	}
	return settings.Balance, nil
}

// Report bundles every figure the dashboards are built from, computed over a
// single snapshot of the journal.
type Report struct {
	InitialCapital   float64
	CommissionPolicy analytics.CommissionPolicy
	Summary          analytics.Summary
	Drawdown         analytics.DrawdownResult
	RecoveryFactor   float64
	EquitySeries     []analytics.EquityPoint
	ByPair           []analytics.Bucket
	BySession        []analytics.Bucket
	ByDayOfWeek      []analytics.Bucket
	ByHour           []analytics.Bucket
}

// Report loads the closed trades and account parameters as one consistent
// snapshot and runs the full accounting engine over it. The repository already
// returns the engine's consumption order (entry time ascending); open trades
// never reach the engine at all.
func (s *JournalService) Report(ctx context.Context) (*Report, error) {
	trades, err := s.trades.FindClosed(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.account.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	capital := settings.Balance
	summary := analytics.SummaryMetrics(trades)
	drawdown := analytics.ComputeDrawdown(trades, capital, s.policy)

	report := &Report{
		InitialCapital:   capital,
		CommissionPolicy: s.policy,
		Summary:          summary,
		Drawdown:         drawdown,
		RecoveryFactor:   analytics.RecoveryFactor(summary.NetProfit, drawdown),
		EquitySeries:     analytics.BuildEquitySeries(trades, capital, s.policy),
		ByPair:           analytics.ByPair(trades),
		BySession:        analytics.BySession(trades),
		ByDayOfWeek:      analytics.ByDayOfWeek(trades),
		ByHour:           analytics.ByHour(trades),
	}
	s.logger.Debug(ctx, "Report computed", map[string]interface{}{
		"trades": summary.TotalTrades, "netProfit": summary.NetProfit,
	})
	return report, nil
}

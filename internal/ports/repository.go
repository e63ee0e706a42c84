package ports

import (
	"context"

	"forexjournal/internal/domain"
)

// TradeRepository defines the interface for storing and retrieving journal
// trades. IDs are assigned by the caller (time-sortable ULIDs), not by the
// store.
type TradeRepository interface {
	// Create saves a new trade record.
	Create(ctx context.Context, trade *domain.Trade) error
	// Update modifies an existing trade.
	Update(ctx context.Context, trade *domain.Trade) error
	// Delete removes a trade by its unique ID.
	Delete(ctx context.Context, id string) error
	// FindByID retrieves a trade by its unique ID.
	// Returns nil, nil if not found.
	FindByID(ctx context.Context, id string) (*domain.Trade, error)
	// FindAll retrieves all trades, ordered by entry time descending.
	FindAll(ctx context.Context) ([]*domain.Trade, error)
	// FindClosed retrieves closed trades ordered by entry time ascending,
	// the order the accounting engine consumes them in.
	FindClosed(ctx context.Context) ([]*domain.Trade, error)
	// CountToday counts the trades entered on the current UTC day.
	CountToday(ctx context.Context) (int, error)
}

// AccountRepository persists the account's initial-capital scalar.
type AccountRepository interface {
	// GetSettings retrieves the account settings. A never-funded account
	// yields zero-value settings, not an error.
	GetSettings(ctx context.Context) (*domain.AccountSettings, error)
	// SetBalance overwrites the initial capital (used by reset-to-zero).
	SetBalance(ctx context.Context, amount float64) error
	// AddFunds increases the initial capital and returns the new value.
	AddFunds(ctx context.Context, amount float64) (float64, error)
}

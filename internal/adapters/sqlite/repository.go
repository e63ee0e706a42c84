package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"forexjournal/internal/domain"
	"forexjournal/internal/ports"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Repository implements ports.TradeRepository and ports.AccountRepository
// using SQLite.
type Repository struct {
	db     *sql.DB
	logger ports.Logger
}

// Config holds configuration for the SQLite repository.
type Config struct {
	DBPath string
	Logger ports.Logger
}

// NewRepository creates a new SQLite repository instance.
func NewRepository(cfg Config) (*Repository, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for SQLite repository")
	}
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = "./data/journal.db" // Default path
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		err = fmt.Errorf("failed to create data directory '%s': %w", filepath.Dir(dbPath), err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	// WAL mode for better concurrency between the CLI and any reporting reads
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		err = fmt.Errorf("failed to open database at '%s': %w", dbPath, err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		err = fmt.Errorf("failed to ping database at '%s': %w", dbPath, err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	// The Go driver benefits from limiting connections; SQLite serializes
	// writers internally anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	repo := &Repository{db: db, logger: cfg.Logger}

	if err := repo.initializeSchema(context.Background()); err != nil {
		db.Close()
		err = fmt.Errorf("failed to initialize database schema: %w", err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}
	cfg.Logger.Info(context.Background(), "Journal database ready", map[string]interface{}{"path": dbPath})

	return repo, nil
}

// initializeSchema creates tables if they don't exist.
func (r *Repository) initializeSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS trades (
		id TEXT PRIMARY KEY,
		pair TEXT NOT NULL,
		direction TEXT NOT NULL,
		entry_time TIMESTAMP NOT NULL,
		exit_time TIMESTAMP DEFAULT NULL,
		entry_price REAL NOT NULL,
		exit_price REAL DEFAULT NULL,
		stop_loss REAL DEFAULT NULL,
		take_profit REAL DEFAULT NULL,
		lot_size REAL NOT NULL,
		commission REAL NOT NULL DEFAULT 0,
		swap REAL NOT NULL DEFAULT 0,
		profit REAL DEFAULT NULL,
		pips REAL DEFAULT NULL,
		risk_reward REAL DEFAULT NULL,
		strategy TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '',
		session TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS account_settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		balance REAL NOT NULL DEFAULT 0,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_trades_status_entry_time ON trades (status, entry_time);
	CREATE INDEX IF NOT EXISTS idx_trades_pair ON trades (pair);
	`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to execute schema initialization: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	if r.db != nil {
		r.logger.Info(context.Background(), "Closing journal database connection")
		return r.db.Close()
	}
	return nil
}

const tradeColumns = `
	id, pair, direction, entry_time, exit_time, entry_price, exit_price,
	stop_loss, take_profit, lot_size, commission, swap, profit, pips,
	risk_reward, strategy, tags, session, notes, status`

// --- TradeRepository Implementation ---

// Create saves a new trade record.
func (r *Repository) Create(ctx context.Context, trade *domain.Trade) error {
	const query = `
	INSERT INTO trades (id, pair, direction, entry_time, exit_time, entry_price, exit_price,
	                    stop_loss, take_profit, lot_size, commission, swap, profit, pips,
	                    risk_reward, strategy, tags, session, notes, status)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, tradeArgs(trade)...)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("trade %s: %w", trade.ID, ports.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to insert trade %s: %w", trade.ID, err)
	}
	r.logger.Debug(ctx, "Trade created", map[string]interface{}{"tradeID": trade.ID, "pair": trade.Pair, "status": trade.Status})
	return nil
}

// Update modifies an existing trade based on its ID.
func (r *Repository) Update(ctx context.Context, trade *domain.Trade) error {
	const query = `
	UPDATE trades
	SET pair = ?, direction = ?, entry_time = ?, exit_time = ?, entry_price = ?, exit_price = ?,
	    stop_loss = ?, take_profit = ?, lot_size = ?, commission = ?, swap = ?, profit = ?,
	    pips = ?, risk_reward = ?, strategy = ?, tags = ?, session = ?, notes = ?, status = ?
	WHERE id = ?`

	args := append(tradeArgs(trade)[1:], trade.ID)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update trade %s: %w", trade.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for update of trade %s: %w", trade.ID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("trade %s not found for update: %w", trade.ID, ports.ErrNotFound)
	}
	r.logger.Debug(ctx, "Trade updated", map[string]interface{}{"tradeID": trade.ID, "status": trade.Status})
	return nil
}

// Delete removes a trade by its unique ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trade %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for delete of trade %s: %w", id, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("trade %s not found for delete: %w", id, ports.ErrNotFound)
	}
	r.logger.Debug(ctx, "Trade deleted", map[string]interface{}{"tradeID": id})
	return nil
}

// FindByID retrieves a trade by its unique ID.
func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Trade, error) {
	query := `SELECT` + tradeColumns + ` FROM trades WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)
	trade, err := scanTrade(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Debug(ctx, "Trade not found by ID", map[string]interface{}{"tradeID": id})
			return nil, nil // Not an error, just not found
		}
		return nil, fmt.Errorf("failed to query trade by ID %s: %w", id, err)
	}
	return trade, nil
}

// FindAll retrieves all trades, ordered by entry time descending.
func (r *Repository) FindAll(ctx context.Context) ([]*domain.Trade, error) {
	query := `SELECT` + tradeColumns + ` FROM trades ORDER BY entry_time DESC, id DESC`
	return r.queryTrades(ctx, query)
}

// FindClosed retrieves closed trades ordered by entry time ascending, the
// order the accounting engine consumes them in.
func (r *Repository) FindClosed(ctx context.Context) ([]*domain.Trade, error) {
	query := `SELECT` + tradeColumns + ` FROM trades WHERE status = ? ORDER BY entry_time ASC, id ASC`
	return r.queryTrades(ctx, query, domain.StatusClosed)
}

// CountToday counts the trades entered on the current UTC day. Entry times
// are stored in UTC, so the comparison uses SQLite's UTC 'now'.
func (r *Repository) CountToday(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM trades WHERE date(entry_time) = date('now')`

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count today's trades: %w", err)
	}
	return count, nil
}

func (r *Repository) queryTrades(ctx context.Context, query string, args ...interface{}) ([]*domain.Trade, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}
	defer rows.Close()

	trades := make([]*domain.Trade, 0)
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade row: %w", err)
		}
		trades = append(trades, trade)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade rows: %w", err)
	}
	return trades, nil
}

// --- AccountRepository Implementation ---

// GetSettings retrieves the account settings. A never-funded account yields
// zero-value settings, not an error.
func (r *Repository) GetSettings(ctx context.Context) (*domain.AccountSettings, error) {
	const query = `SELECT balance, updated_at FROM account_settings WHERE id = 1`

	settings := &domain.AccountSettings{}
	err := r.db.QueryRowContext(ctx, query).Scan(&settings.Balance, &settings.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.AccountSettings{}, nil
		}
		return nil, fmt.Errorf("failed to query account settings: %w", err)
	}
	return settings, nil
}

// SetBalance overwrites the initial capital.
func (r *Repository) SetBalance(ctx context.Context, amount float64) error {
	const query = `
	INSERT INTO account_settings (id, balance, updated_at) VALUES (1, ?, ?)
	ON CONFLICT(id) DO UPDATE SET balance = excluded.balance, updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, amount, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set account balance: %w", err)
	}
	r.logger.Debug(ctx, "Account balance set", map[string]interface{}{"balance": amount})
	return nil
}

// AddFunds increases the initial capital and returns the new value.
func (r *Repository) AddFunds(ctx context.Context, amount float64) (float64, error) {
	const query = `
	INSERT INTO account_settings (id, balance, updated_at) VALUES (1, ?, ?)
	ON CONFLICT(id) DO UPDATE SET balance = account_settings.balance + excluded.balance,
	                              updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, amount, time.Now().UTC()); err != nil {
		return 0, fmt.Errorf("failed to add funds: %w", err)
	}

	settings, err := r.GetSettings(ctx)
	if err != nil {
		return 0, err
	}
	r.logger.Debug(ctx, "Funds added", map[string]interface{}{"amount": amount, "balance": settings.Balance})
	return settings.Balance, nil
}

// --- Row Mapping ---

// tradeArgs flattens a trade into insert arguments, mapping the open-trade
// zero values to SQL NULLs so the status/profit agreement is visible in the
// stored rows too.
func tradeArgs(t *domain.Trade) []interface{} {
	return []interface{}{
		t.ID, t.Pair, string(t.Direction), t.EntryTime,
		nullTime(t.ExitTime), t.EntryPrice, nullFloatIfOpen(t, t.ExitPrice),
		nullFloat(t.StopLoss), nullFloat(t.TakeProfit), t.LotSize,
		t.Commission, t.Swap, nullFloatIfOpen(t, t.Profit), nullFloatIfOpen(t, t.Pips),
		nullFloat(t.RiskReward), t.Strategy, strings.Join(t.Tags, ","),
		string(t.Session), t.Notes, string(t.Status),
	}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func nullFloat(v float64) sql.NullFloat64 {
	if v == 0 {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

// nullFloatIfOpen stores NULL for fields that are undefined until the trade
// closes (exit price, profit, pips) while preserving recorded zero values on
// closed trades.
func nullFloatIfOpen(t *domain.Trade, v float64) sql.NullFloat64 {
	if t.Status != domain.StatusClosed {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

// rowScanner matches both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrade(row rowScanner) (*domain.Trade, error) {
	var (
		t          domain.Trade
		direction  string
		session    string
		status     string
		tags       string
		exitTime   sql.NullTime
		exitPrice  sql.NullFloat64
		stopLoss   sql.NullFloat64
		takeProfit sql.NullFloat64
		profit     sql.NullFloat64
		pips       sql.NullFloat64
		riskReward sql.NullFloat64
	)

	err := row.Scan(
		&t.ID, &t.Pair, &direction, &t.EntryTime, &exitTime, &t.EntryPrice, &exitPrice,
		&stopLoss, &takeProfit, &t.LotSize, &t.Commission, &t.Swap, &profit, &pips,
		&riskReward, &t.Strategy, &tags, &session, &t.Notes, &status,
	)
	if err != nil {
		return nil, err
	}

	t.Direction = domain.Direction(direction)
	t.Session = domain.TradingSession(session)
	t.Status = domain.Status(status)
	if exitTime.Valid {
		t.ExitTime = exitTime.Time
	}
	t.ExitPrice = exitPrice.Float64
	t.StopLoss = stopLoss.Float64
	t.TakeProfit = takeProfit.Float64
	t.Profit = profit.Float64
	t.Pips = pips.Float64
	t.RiskReward = riskReward.Float64
	if tags != "" {
		t.Tags = strings.Split(tags, ",")
	}
	return &t, nil
}

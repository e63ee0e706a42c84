package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"forexjournal/internal/app"
	"forexjournal/internal/domain"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	var (
		pair       string
		direction  string
		entryTime  string
		entryPrice float64
		lotSize    float64
		stopLoss   float64
		takeProfit float64
		commission float64
		swap       float64
		strategy   string
		tags       []string
		session    string
		notes      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a new trade",
		Long: `Log a new OPEN trade in the journal.

The trading session is derived from the entry time unless --session is given.

Example:
  forexjournal add --pair EUR/USD --direction BUY --price 1.0842 --lots 0.5 \
      --stop 1.0800 --target 1.0920 --strategy "Trend Following"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(opts)
			if err != nil {
				return err
			}
			defer env.Close()
			ctx := context.Background()

			entry := time.Now().UTC()
			if entryTime != "" {
				entry, err = time.Parse(time.RFC3339, entryTime)
				if err != nil {
					return fmt.Errorf("invalid --entry-time (want RFC3339): %w", err)
				}
			}

			if !env.cfg.Catalog.KnownPair(pair) {
				fmt.Printf("note: %s is not in the configured pair catalog\n", pair)
			}

			trade, err := env.svc.LogTrade(ctx, app.LogTradeParams{
				Pair:       pair,
				Direction:  domain.Direction(direction),
				EntryTime:  entry,
				EntryPrice: entryPrice,
				LotSize:    lotSize,
				StopLoss:   stopLoss,
				TakeProfit: takeProfit,
				Commission: commission,
				Swap:       swap,
				Strategy:   strategy,
				Tags:       tags,
				Session:    domain.TradingSession(session),
				Notes:      notes,
			})
			if err != nil {
				return err
			}

			fmt.Printf("logged %s %s %s @ %.5f (%s)\n",
				trade.ID, trade.Direction, trade.Pair, trade.EntryPrice, trade.Session.DisplayName())

			if count, err := env.svc.TradesToday(ctx); err == nil {
				fmt.Printf("trades today: %d\n", count)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pair, "pair", "", "Currency pair, e.g. EUR/USD (required)")
	cmd.Flags().StringVar(&direction, "direction", string(domain.Buy), "Trade direction: BUY or SELL")
	cmd.Flags().StringVar(&entryTime, "entry-time", "", "Entry timestamp, RFC3339 (default now)")
	cmd.Flags().Float64Var(&entryPrice, "price", 0, "Entry price (required)")
	cmd.Flags().Float64Var(&lotSize, "lots", 0, "Lot size (required)")
	cmd.Flags().Float64Var(&stopLoss, "stop", 0, "Stop-loss price")
	cmd.Flags().Float64Var(&takeProfit, "target", 0, "Take-profit price")
	cmd.Flags().Float64Var(&commission, "commission", 0, "Commission charged for the trade")
	cmd.Flags().Float64Var(&swap, "swap", 0, "Overnight swap, signed")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Strategy label")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Free-text tag (repeatable)")
	cmd.Flags().StringVar(&session, "session", "", "Trading session (derived from entry time when empty)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes")
	_ = cmd.MarkFlagRequired("pair")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("lots")

	return cmd
}

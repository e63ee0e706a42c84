package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newCloseCmd(opts *rootOptions) *cobra.Command {
	var (
		exitPrice float64
		exitTime  string
	)

	cmd := &cobra.Command{
		Use:   "close <trade-id>",
		Short: "Close an open trade",
		Long: `Close an open trade at the given exit price. Realized pips and profit are
derived from the price distance, pip size and lot size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(opts)
			if err != nil {
				return err
			}
			defer env.Close()
			ctx := context.Background()

			var exit time.Time
			if exitTime != "" {
				exit, err = time.Parse(time.RFC3339, exitTime)
				if err != nil {
					return fmt.Errorf("invalid --exit-time (want RFC3339): %w", err)
				}
			}

			trade, err := env.svc.CloseTrade(ctx, args[0], exitPrice, exit)
			if err != nil {
				return err
			}

			fmt.Printf("closed %s %s: %+.1f pips, %+.3f (%s)\n",
				trade.ID, trade.Pair, trade.Pips, trade.Profit, trade.Result())
			return nil
		},
	}

	cmd.Flags().Float64Var(&exitPrice, "price", 0, "Exit price (required)")
	cmd.Flags().StringVar(&exitTime, "exit-time", "", "Exit timestamp, RFC3339 (default now)")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <trade-id>",
		Short: "Remove a trade from the journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(opts)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := env.svc.DeleteTrade(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("removed %s\n", args[0])
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newFundsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "funds",
		Short: "Manage the account's initial capital",
		Long: `Manage the initial-capital scalar the performance report is computed
against. The balance here is never derived from trades; it changes only
through these explicit operations.

Subcommands:
  show   - Print the current initial capital
  add    - Add funds
  reset  - Reset the initial capital to zero`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current initial capital",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(opts)
			if err != nil {
				return err
			}
			defer env.Close()

			capital, err := env.svc.InitialCapital(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("initial capital: %.3f\n", capital)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <amount>",
		Short: "Add funds to the initial capital",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			env, err := setup(opts)
			if err != nil {
				return err
			}
			defer env.Close()

			balance, err := env.svc.AddFunds(context.Background(), amount)
			if err != nil {
				return err
			}
			fmt.Printf("initial capital: %.3f\n", balance)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset the initial capital to zero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(opts)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := env.svc.ResetCapital(context.Background()); err != nil {
				return err
			}
			fmt.Println("initial capital reset to 0")
			return nil
		},
	})

	return cmd
}

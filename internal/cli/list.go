package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"forexjournal/internal/app"
	"forexjournal/internal/domain"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		status string
		pair   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal trades",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(opts)
			if err != nil {
				return err
			}
			defer env.Close()

			trades, err := env.svc.ListTrades(context.Background(), app.TradeFilter{
				Status: domain.Status(status),
				Pair:   pair,
			})
			if err != nil {
				return err
			}
			if len(trades) == 0 {
				fmt.Println("no trades")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPAIR\tDIR\tENTRY\tEXIT\tLOTS\tPIPS\tPROFIT\tSTATUS")
			for _, t := range trades {
				exit := "-"
				pips := "-"
				profit := "-"
				if t.IsClosed() {
					exit = t.ExitTime.Format("2006-01-02 15:04")
					pips = fmt.Sprintf("%+.1f", t.Pips)
					profit = fmt.Sprintf("%+.3f", t.Profit)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.2f\t%s\t%s\t%s\n",
					t.ID, t.Pair, t.Direction,
					t.EntryTime.Format("2006-01-02 15:04"), exit,
					t.LotSize, pips, profit, t.Status)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status: OPEN or CLOSED")
	cmd.Flags().StringVar(&pair, "pair", "", "Filter by currency pair")

	return cmd
}

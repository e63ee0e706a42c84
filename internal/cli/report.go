package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"forexjournal/internal/analytics"
	"forexjournal/internal/app"
)

func newReportCmd(opts *rootOptions) *cobra.Command {
	var showEquity bool
	var topPairs int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the account performance report",
		Long: `Compute and print the full performance report over all closed trades:
summary metrics, drawdown and recovery, and the pair, session, weekday and
time-of-day breakdowns. Use --equity to include the day-by-day equity table,
--top to limit the pair ranking to the N most profitable pairs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(opts)
			if err != nil {
				return err
			}
			defer env.Close()

			report, err := env.svc.Report(context.Background())
			if err != nil {
				return err
			}
			printReport(report, showEquity, topPairs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showEquity, "equity", false, "Include the day-by-day equity table")
	cmd.Flags().IntVar(&topPairs, "top", 0, "Show only the N most profitable pairs (0 shows all)")
	return cmd
}

func printReport(r *app.Report, showEquity bool, topPairs int) {
	s := r.Summary
	fmt.Printf("Initial capital: %.3f   commission policy: %s\n\n", analytics.Round3(r.InitialCapital), r.CommissionPolicy)

	fmt.Printf("Trades: %d (%d wins / %d losses / %d break-even)\n",
		s.TotalTrades, s.WinningTrades, s.LosingTrades, s.BreakEvenTrades)
	fmt.Printf("Win rate: %.1f%%   profit factor: %.2f   expectancy: %.3f   sharpe: %.2f\n",
		s.WinRate, s.ProfitFactor, analytics.Round3(s.ExpectedValue), s.SharpeRatio)
	fmt.Printf("Net profit: %.3f   avg trade: %.3f   avg win: %.3f   avg loss: %.3f\n",
		analytics.Round3(s.NetProfit), analytics.Round3(s.AverageTrade),
		analytics.Round3(s.AverageWin), analytics.Round3(s.AverageLoss))
	fmt.Printf("Commission: %.3f   swap: %.3f\n", analytics.Round3(s.TotalCommission), analytics.Round3(s.TotalSwap))
	fmt.Printf("Max drawdown: %.3f%%   peak balance: %.3f   recovery factor: %.3f\n\n",
		analytics.Round3(r.Drawdown.MaxDrawdownPercent), analytics.Round3(r.Drawdown.PeakBalance),
		analytics.Round3(r.RecoveryFactor))

	printBuckets("By pair", analytics.TopPairs(r.ByPair, topPairs))
	printBuckets("By session", r.BySession)
	printBuckets("By weekday", r.ByDayOfWeek)
	printBuckets("By time of day", r.ByHour)

	if showEquity && len(r.EquitySeries) > 0 {
		fmt.Println("Equity curve:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tBALANCE\tCHANGE\tCOMMISSION")
		for _, p := range r.EquitySeries {
			fmt.Fprintf(w, "%s\t%.3f\t%+.3f\t%.3f\n",
				p.Date.Format("2006-01-02"),
				analytics.Round3(p.Balance), analytics.Round3(p.Change), analytics.Round3(p.Commission))
		}
		w.Flush()
	}
}

func printBuckets(title string, buckets []analytics.Bucket) {
	if len(buckets) == 0 {
		return
	}
	fmt.Println(title + ":")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tTRADES\tWINS\tLOSSES\tWIN%\tPROFIT")
	for _, b := range buckets {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.1f\t%+.3f\n",
			b.Key, b.TradeCount, b.WinCount, b.LossCount, b.WinRate, analytics.Round3(b.TotalProfit))
	}
	w.Flush()
	fmt.Println()
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"forexjournal/config"
	"forexjournal/internal/adapters/logger"
	"forexjournal/internal/adapters/sqlite"
	"forexjournal/internal/app"
)

// rootOptions carries the global flags shared by every subcommand. Flags
// override whatever the environment configuration resolved to.
type rootOptions struct {
	DBPath   string
	LogLevel string
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "forexjournal",
		Short:         "Forex trading journal — trade logging and performance accounting",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "Path to the SQLite journal database (overrides DB_PATH)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug|info|warn|error (overrides LOG_LEVEL)")

	// Subcommands
	cmd.AddCommand(
		newAddCmd(opts),
		newCloseCmd(opts),
		newListCmd(opts),
		newRemoveCmd(opts),
		newReportCmd(opts),
		newFundsCmd(opts),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("forexjournal (dev)")
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// journalEnv is the assembled runtime: config, service and the repository
// handle that must be closed when the command finishes.
type journalEnv struct {
	cfg  *config.Config
	svc  *app.JournalService
	repo *sqlite.Repository
}

func (e *journalEnv) Close() {
	if e.repo != nil {
		_ = e.repo.Close()
	}
}

// setup assembles config -> logger -> repository -> service for a command
// invocation, in that order.
func setup(opts *rootOptions) (*journalEnv, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if opts.DBPath != "" {
		cfg.DBPath = opts.DBPath
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = logger.ParseLevel(opts.LogLevel)
	}

	appLogger := logger.NewStdLogger(cfg.LogLevel)

	repo, err := sqlite.NewRepository(sqlite.Config{
		DBPath: cfg.DBPath,
		Logger: appLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize journal database: %w", err)
	}

	svc, err := app.NewJournalService(appLogger, repo, repo, cfg.CommissionPolicy)
	if err != nil {
		repo.Close()
		return nil, err
	}

	// Seed a never-funded database from INITIAL_CAPITAL. Once the account
	// holds anything, the environment value no longer applies.
	if cfg.InitialCapital > 0 {
		ctx := context.Background()
		capital, err := svc.InitialCapital(ctx)
		if err != nil {
			repo.Close()
			return nil, err
		}
		if capital == 0 {
			if _, err := svc.AddFunds(ctx, cfg.InitialCapital); err != nil {
				repo.Close()
				return nil, err
			}
		}
	}
	return &journalEnv{cfg: cfg, svc: svc, repo: repo}, nil
}

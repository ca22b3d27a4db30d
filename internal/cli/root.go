package cli

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tradingdesk/internal/backtest"
	"tradingdesk/internal/calculator"
	"tradingdesk/internal/catalog"
	"tradingdesk/internal/config"
	"tradingdesk/internal/journal"
	"tradingdesk/internal/logging"
	"tradingdesk/internal/markets"
	"tradingdesk/internal/prefs"
	"tradingdesk/internal/psychology"
	"tradingdesk/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	KV        store.KeyValue
	Catalog   *catalog.Catalog
	Journal   *journal.Store
	Templates *calculator.TemplateStore
	Prefs     *prefs.Store
	Psych     *psychology.Store
	Backtest  *backtest.Log
	Sessions  *markets.Sessions
	Pairs     *markets.Pairs
}

// NewApp wires the desk's stores onto the configured database. A database
// that cannot be opened degrades to an in-memory session with a warning
// rather than refusing to start.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	app := &App{
		Config:   cfg,
		Logger:   logger,
		Catalog:  catalog.NewDefault(),
		Sessions: markets.NewSessions(),
		Pairs:    markets.NewPairs(time.Now().UnixNano()),
	}

	kv, err := store.NewSQLiteKV(cfg.Journal.DBPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.Journal.DBPath).
			Msg("Failed to open desk database, changes will not persist")
		app.KV = store.NewMemoryKV()
	} else {
		app.KV = kv
		logger.Debug().Str("path", cfg.Journal.DBPath).Msg("Desk database opened")
	}

	app.Journal = journal.NewStore(app.KV)
	app.Templates = calculator.NewTemplateStore(app.KV)
	app.Prefs = prefs.NewStore(app.KV)
	app.Psych = psychology.NewStore(app.KV)
	app.Backtest = backtest.NewLog(app.KV)

	return app
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := NewApp(cfg, logger)

	rootCmd := &cobra.Command{
		Use:   "desk",
		Short: "Trading Desk - local trading companion",
		Long: `Trading Desk is a local-first trading companion CLI.

It bundles a position-size calculator, a trade journal with statistics,
market-session clocks, a currency-pair board, a psychology tracker, and a
backtesting log. Everything is stored on this machine; there is no broker
connection and no network access.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/tradingdesk)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	addCalcCommands(rootCmd, app)
	addJournalCommands(rootCmd, app)
	addMarketCommands(rootCmd, app)
	addPrefsCommands(rootCmd, app)
	addPsychCommands(rootCmd, app)
	addBacktestCommands(rootCmd, app)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Trading Desk v%s\n", Version)
			}
		},
	}
}

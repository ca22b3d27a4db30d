package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tradingdesk/internal/journal"
	"tradingdesk/internal/models"
)

// addJournalCommands adds the trade journal commands.
func addJournalCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Trade journal",
		Long:  "Record trades, close or cancel them, filter the history, and review aggregate statistics.",
	}

	cmd.AddCommand(newJournalAddCmd(app))
	cmd.AddCommand(newJournalCloseCmd(app))
	cmd.AddCommand(newJournalCancelCmd(app))
	cmd.AddCommand(newJournalUpdateCmd(app))
	cmd.AddCommand(newJournalListCmd(app))
	cmd.AddCommand(newJournalShowCmd(app))
	cmd.AddCommand(newJournalRemoveCmd(app))
	cmd.AddCommand(newJournalStatsCmd(app))

	rootCmd.AddCommand(cmd)
}

func newJournalAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <symbol>",
		Short: "Record a new trade",
		Args:  cobra.ExactArgs(1),
		Example: `  desk journal add EUR/USD --direction long --entry 1.1000 --stop 1.0950 --target 1.1100 --size 2
  desk journal add AAPL --direction short --entry 180.50 --size 100 --setup breakout --emotion confident`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			direction, _ := cmd.Flags().GetString("direction")
			if d := models.TradeDirection(direction); d != models.DirectionLong && d != models.DirectionShort {
				return fmt.Errorf("direction must be long or short, got %q", direction)
			}

			entry := models.TradeEntry{
				Symbol:    args[0],
				Direction: models.TradeDirection(direction),
				EntryTime: time.Now().UTC(),
			}
			entry.EntryPrice, _ = cmd.Flags().GetFloat64("entry")
			entry.StopLoss, _ = cmd.Flags().GetFloat64("stop")
			entry.TakeProfit, _ = cmd.Flags().GetFloat64("target")
			entry.Size, _ = cmd.Flags().GetFloat64("size")
			entry.Commission, _ = cmd.Flags().GetFloat64("commission")
			entry.Slippage, _ = cmd.Flags().GetFloat64("slippage")
			entry.Strategy, _ = cmd.Flags().GetString("strategy")
			entry.Timeframe, _ = cmd.Flags().GetString("timeframe")
			entry.PreTradeNotes, _ = cmd.Flags().GetString("notes")
			entry.Tags, _ = cmd.Flags().GetStringSlice("tag")

			if setup, _ := cmd.Flags().GetString("setup"); setup != "" {
				entry.Setup = models.TradeSetup(setup)
			}
			if emotion, _ := cmd.Flags().GetString("emotion"); emotion != "" {
				entry.EmotionalState = models.EmotionalState(emotion)
			}
			if when, _ := cmd.Flags().GetString("time"); when != "" {
				t, err := parseTimeFlag(when)
				if err != nil {
					return err
				}
				entry.EntryTime = t
			}

			saved, err := app.Journal.Add(entry)
			if err != nil {
				return fmt.Errorf("recording trade: %w", err)
			}

			app.Logger.Info().
				Str("trade_id", saved.ID).
				Str("symbol", saved.Symbol).
				Str("direction", string(saved.Direction)).
				Msg("Trade recorded")

			if output.IsJSON() {
				return output.JSON(saved)
			}
			output.Success("Recorded %s %s trade %s", saved.Symbol, saved.Direction, saved.ID)
			return nil
		},
	}

	cmd.Flags().String("direction", "long", "trade direction: long or short")
	cmd.Flags().Float64("entry", 0, "entry price")
	cmd.Flags().Float64("stop", 0, "stop-loss price")
	cmd.Flags().Float64("target", 0, "take-profit price")
	cmd.Flags().Float64("size", 0, "position size")
	cmd.Flags().Float64("commission", 0, "commission paid")
	cmd.Flags().Float64("slippage", 0, "slippage in pips")
	cmd.Flags().String("strategy", "", "strategy name")
	cmd.Flags().String("setup", "", "setup: trend-following, reversal, breakout, range, scalp, swing, position")
	cmd.Flags().String("timeframe", "", "chart timeframe (e.g. 1h)")
	cmd.Flags().String("emotion", "", "emotional state: confident, neutral, anxious, fomo, frustrated, calm")
	cmd.Flags().String("notes", "", "pre-trade notes")
	cmd.Flags().StringSlice("tag", nil, "tag (repeatable)")
	cmd.Flags().String("time", "", "entry time, RFC3339 or 2006-01-02 15:04")
	return cmd
}

func newJournalCloseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close <trade-id>",
		Short: "Close an open trade and realize its PnL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			exitPrice, _ := cmd.Flags().GetFloat64("exit")
			exitTime := time.Now().UTC()
			if when, _ := cmd.Flags().GetString("time"); when != "" {
				t, err := parseTimeFlag(when)
				if err != nil {
					return err
				}
				exitTime = t
			}

			trade, ok, err := app.Journal.CloseTrade(args[0], exitPrice, exitTime)
			if err != nil {
				return fmt.Errorf("closing trade: %w", err)
			}
			if !ok {
				output.Warning("No open trade with id %s", args[0])
				return nil
			}

			app.Logger.Info().
				Str("trade_id", trade.ID).
				Float64("pnl", trade.PnL).
				Msg("Trade closed")

			if output.IsJSON() {
				return output.JSON(trade)
			}
			output.Success("Closed %s at %s", trade.Symbol, FormatPrice(trade.ExitPrice))
			output.Printf("  PnL: %s (%s)\n", output.FormatPnL(trade.PnL), output.FormatPercent(trade.PnLPercent))
			return nil
		},
	}

	cmd.Flags().Float64("exit", 0, "exit price")
	cmd.Flags().String("time", "", "exit time, RFC3339 or 2006-01-02 15:04")
	cmd.MarkFlagRequired("exit")
	return cmd
}

func newJournalCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <trade-id>",
		Short: "Cancel an open trade without realizing PnL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			trade, ok, err := app.Journal.CancelTrade(args[0])
			if err != nil {
				return fmt.Errorf("cancelling trade: %w", err)
			}
			if !ok {
				output.Warning("No open trade with id %s", args[0])
				return nil
			}

			if output.IsJSON() {
				return output.JSON(trade)
			}
			output.Success("Cancelled %s trade %s", trade.Symbol, trade.ID)
			return nil
		},
	}
}

func newJournalUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <trade-id>",
		Short: "Update a trade's journal fields",
		Long:  "Update the editable fields of a trade. Lifecycle changes go through close and cancel.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			var upd journal.TradeUpdate
			if cmd.Flags().Changed("stop") {
				v, _ := cmd.Flags().GetFloat64("stop")
				upd.StopLoss = &v
			}
			if cmd.Flags().Changed("target") {
				v, _ := cmd.Flags().GetFloat64("target")
				upd.TakeProfit = &v
			}
			if cmd.Flags().Changed("strategy") {
				v, _ := cmd.Flags().GetString("strategy")
				upd.Strategy = &v
			}
			if cmd.Flags().Changed("setup") {
				v, _ := cmd.Flags().GetString("setup")
				setup := models.TradeSetup(v)
				upd.Setup = &setup
			}
			if cmd.Flags().Changed("timeframe") {
				v, _ := cmd.Flags().GetString("timeframe")
				upd.Timeframe = &v
			}
			if cmd.Flags().Changed("emotion") {
				v, _ := cmd.Flags().GetString("emotion")
				emotion := models.EmotionalState(v)
				upd.EmotionalState = &emotion
			}
			if cmd.Flags().Changed("notes") {
				v, _ := cmd.Flags().GetString("notes")
				upd.PostTradeNotes = &v
			}
			if cmd.Flags().Changed("rating") {
				v, _ := cmd.Flags().GetInt("rating")
				if v < 1 || v > 5 {
					return fmt.Errorf("rating must be between 1 and 5, got %d", v)
				}
				upd.Rating = &v
			}
			if cmd.Flags().Changed("tag") {
				upd.Tags, _ = cmd.Flags().GetStringSlice("tag")
			}
			if cmd.Flags().Changed("mistake") {
				upd.Mistakes, _ = cmd.Flags().GetStringSlice("mistake")
			}
			if cmd.Flags().Changed("lesson") {
				upd.Lessons, _ = cmd.Flags().GetStringSlice("lesson")
			}

			if err := app.Journal.Update(args[0], upd); err != nil {
				return fmt.Errorf("updating trade: %w", err)
			}

			trade, ok := app.Journal.Get(args[0])
			if !ok {
				output.Warning("No trade with id %s", args[0])
				return nil
			}
			if output.IsJSON() {
				return output.JSON(trade)
			}
			output.Success("Updated trade %s", trade.ID)
			return nil
		},
	}

	cmd.Flags().Float64("stop", 0, "stop-loss price")
	cmd.Flags().Float64("target", 0, "take-profit price")
	cmd.Flags().String("strategy", "", "strategy name")
	cmd.Flags().String("setup", "", "setup classification")
	cmd.Flags().String("timeframe", "", "chart timeframe")
	cmd.Flags().String("emotion", "", "emotional state")
	cmd.Flags().String("notes", "", "post-trade notes")
	cmd.Flags().Int("rating", 0, "execution rating 1-5")
	cmd.Flags().StringSlice("tag", nil, "replace tags (repeatable)")
	cmd.Flags().StringSlice("mistake", nil, "replace mistakes (repeatable)")
	cmd.Flags().StringSlice("lesson", nil, "replace lessons (repeatable)")
	return cmd
}

// filtersFromFlags builds journal filters from the list/stats flag set.
func filtersFromFlags(cmd *cobra.Command) (models.JournalFilters, error) {
	var f models.JournalFilters

	f.Symbols, _ = cmd.Flags().GetStringSlice("symbol")
	f.Tags, _ = cmd.Flags().GetStringSlice("tag")

	if setups, _ := cmd.Flags().GetStringSlice("setup"); len(setups) > 0 {
		for _, s := range setups {
			f.Setups = append(f.Setups, models.TradeSetup(s))
		}
	}
	if statuses, _ := cmd.Flags().GetStringSlice("status"); len(statuses) > 0 {
		for _, s := range statuses {
			f.Status = append(f.Status, models.TradeStatus(s))
		}
	}
	if emotions, _ := cmd.Flags().GetStringSlice("emotion"); len(emotions) > 0 {
		for _, e := range emotions {
			f.EmotionalStates = append(f.EmotionalStates, models.EmotionalState(e))
		}
	}
	if v, _ := cmd.Flags().GetString("from"); v != "" {
		t, err := parseTimeFlag(v)
		if err != nil {
			return f, err
		}
		f.DateFrom = &t
	}
	if v, _ := cmd.Flags().GetString("to"); v != "" {
		t, err := parseTimeFlag(v)
		if err != nil {
			return f, err
		}
		f.DateTo = &t
	}
	if cmd.Flags().Changed("pnl-min") {
		v, _ := cmd.Flags().GetFloat64("pnl-min")
		f.PnLMin = &v
	}
	if cmd.Flags().Changed("pnl-max") {
		v, _ := cmd.Flags().GetFloat64("pnl-max")
		f.PnLMax = &v
	}

	return f, nil
}

func addJournalFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("symbol", nil, "filter by symbol (repeatable)")
	cmd.Flags().StringSlice("setup", nil, "filter by setup (repeatable)")
	cmd.Flags().StringSlice("status", nil, "filter by status: open, closed, cancelled (repeatable)")
	cmd.Flags().StringSlice("emotion", nil, "filter by emotional state (repeatable)")
	cmd.Flags().StringSlice("tag", nil, "filter by tag, any match (repeatable)")
	cmd.Flags().String("from", "", "only trades entered at or after this time")
	cmd.Flags().String("to", "", "only trades entered at or before this time")
	cmd.Flags().Float64("pnl-min", 0, "minimum realized PnL")
	cmd.Flags().Float64("pnl-max", 0, "maximum realized PnL")
}

func newJournalListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal trades",
		Example: `  desk journal list --status open
  desk journal list --symbol EUR/USD --from 2026-01-01 --pnl-min 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			filters, err := filtersFromFlags(cmd)
			if err != nil {
				return err
			}
			trades := app.Journal.ApplyFilters(filters)

			if output.IsJSON() {
				return output.JSON(trades)
			}
			if len(trades) == 0 {
				output.Info("No trades match.")
				return nil
			}

			table := NewTable(output, "ID", "Symbol", "Dir", "Status", "Entry", "Exit", "Size", "PnL", "Date")
			for _, t := range trades {
				exit := "-"
				if t.Status == models.StatusClosed {
					exit = FormatPrice(t.ExitPrice)
				}
				pnl := "-"
				if t.Status == models.StatusClosed {
					pnl = output.FormatPnL(t.PnL)
				}
				table.AddRow(
					t.ID,
					t.Symbol,
					string(t.Direction),
					string(t.Status),
					FormatPrice(t.EntryPrice),
					exit,
					FormatSize(t.Size),
					pnl,
					FormatDate(t.EntryTime),
				)
			}
			table.Render()
			return nil
		},
	}

	addJournalFilterFlags(cmd)
	return cmd
}

func newJournalShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <trade-id>",
		Short: "Show one trade in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			trade, ok := app.Journal.Get(args[0])
			if !ok {
				output.Warning("No trade with id %s", args[0])
				return nil
			}
			if output.IsJSON() {
				return output.JSON(trade)
			}

			output.Bold("%s %s (%s)", trade.Symbol, trade.Direction, trade.Status)
			output.Printf("  ID:         %s\n", trade.ID)
			output.Printf("  Entry:      %s at %s\n", FormatPrice(trade.EntryPrice), FormatDateTime(trade.EntryTime))
			if trade.ExitTime != nil {
				output.Printf("  Exit:       %s at %s\n", FormatPrice(trade.ExitPrice), FormatDateTime(*trade.ExitTime))
			}
			output.Printf("  Stop/Target: %s / %s\n", FormatPrice(trade.StopLoss), FormatPrice(trade.TakeProfit))
			output.Printf("  Size:       %s\n", FormatSize(trade.Size))
			if trade.Status == models.StatusClosed {
				output.Printf("  PnL:        %s (%s)\n", output.FormatPnL(trade.PnL), output.FormatPercent(trade.PnLPercent))
			}
			if trade.Strategy != "" {
				output.Printf("  Strategy:   %s (%s, %s)\n", trade.Strategy, trade.Setup, trade.Timeframe)
			}
			if trade.EmotionalState != "" {
				output.Printf("  Emotion:    %s\n", trade.EmotionalState)
			}
			if len(trade.Tags) > 0 {
				output.Printf("  Tags:       %v\n", trade.Tags)
			}
			if trade.PreTradeNotes != "" {
				output.Printf("  Pre-notes:  %s\n", trade.PreTradeNotes)
			}
			if trade.PostTradeNotes != "" {
				output.Printf("  Post-notes: %s\n", trade.PostTradeNotes)
			}
			if len(trade.Mistakes) > 0 {
				output.Printf("  Mistakes:   %v\n", trade.Mistakes)
			}
			if len(trade.Lessons) > 0 {
				output.Printf("  Lessons:    %v\n", trade.Lessons)
			}
			return nil
		},
	}
}

func newJournalRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <trade-id>",
		Short: "Delete a trade record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Journal.Remove(args[0]); err != nil {
				return fmt.Errorf("removing trade: %w", err)
			}
			output.Success("Trade removed")
			return nil
		},
	}
}

func newJournalStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Aggregate statistics over the (filtered) journal",
		Long:  "Compute win rate, profit factor and PnL aggregates. Only closed trades contribute.",
		Example: `  desk journal stats
  desk journal stats --symbol EUR/USD --from 2026-01-01
  desk journal stats --yaml > stats.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			filters, err := filtersFromFlags(cmd)
			if err != nil {
				return err
			}
			stats := journal.ComputeStats(app.Journal.ApplyFilters(filters))

			if output.IsJSON() {
				return output.JSON(stats)
			}
			if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
				data, err := yaml.Marshal(stats)
				if err != nil {
					return fmt.Errorf("encoding stats: %w", err)
				}
				output.Printf("%s", data)
				return nil
			}

			output.Bold("Journal Statistics")
			output.Println()
			output.Printf("  Trades:        %d (%d won, %d lost)\n", stats.TotalTrades, stats.WinningTrades, stats.LosingTrades)
			output.Printf("  Win Rate:      %.2f%%\n", stats.WinRate)
			output.Printf("  Total PnL:     %s\n", output.FormatPnL(stats.TotalPnL))
			output.Printf("  Average Win:   %s\n", FormatCurrency(stats.AverageWin))
			output.Printf("  Average Loss:  %s\n", FormatCurrency(stats.AverageLoss))
			output.Printf("  Largest Win:   %s\n", FormatCurrency(stats.LargestWin))
			output.Printf("  Largest Loss:  %s\n", FormatCurrency(stats.LargestLoss))
			output.Printf("  Profit Factor: %.2f\n", stats.ProfitFactor)
			return nil
		},
	}

	addJournalFilterFlags(cmd)
	cmd.Flags().Bool("yaml", false, "output stats as YAML")
	return cmd
}

// parseTimeFlag accepts RFC3339, date-time without zone, or a bare date.
func parseTimeFlag(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q (want RFC3339, 2006-01-02 15:04, or 2006-01-02)", s)
}

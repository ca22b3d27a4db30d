package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradingdesk/internal/backtest"
	"tradingdesk/internal/models"
)

// addBacktestCommands adds the backtesting-log commands.
func addBacktestCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "backtest",
		Short: "Backtesting log",
		Long:  "Track strategies under test with their recorded results, and raw ideas awaiting promotion.",
	}

	cmd.AddCommand(newStrategyCmd(app))
	cmd.AddCommand(newIdeaCmd(app))

	rootCmd.AddCommand(cmd)
}

func newStrategyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Manage strategies under test",
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Log a new strategy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			s := models.Strategy{Name: args[0]}
			s.Timeframe, _ = cmd.Flags().GetString("timeframe")
			s.Notes, _ = cmd.Flags().GetString("notes")

			saved, err := app.Backtest.AddStrategy(s)
			if err != nil {
				return fmt.Errorf("logging strategy: %w", err)
			}

			if output.IsJSON() {
				return output.JSON(saved)
			}
			output.Success("Logged strategy %q (%s)", saved.Name, saved.ID)
			return nil
		},
	}
	addCmd.Flags().String("timeframe", "", "chart timeframe (e.g. 4h)")
	addCmd.Flags().String("notes", "", "strategy notes")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List logged strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			strategies := app.Backtest.Strategies()
			if output.IsJSON() {
				return output.JSON(strategies)
			}
			if len(strategies) == 0 {
				output.Info("No strategies logged.")
				return nil
			}

			table := NewTable(output, "ID", "Name", "TF", "Status", "Trades", "Win Rate", "PF", "RR")
			for _, s := range strategies {
				table.AddRow(
					s.ID,
					TruncateString(s.Name, 24),
					s.Timeframe,
					string(s.Status),
					fmt.Sprintf("%d", s.TradesCount),
					fmt.Sprintf("%.1f%%", s.WinRate),
					fmt.Sprintf("%.2f", s.ProfitFactor),
					FormatRiskReward(s.RiskRewardRatio),
				)
			}
			table.Render()
			return nil
		},
	}

	resultsCmd := &cobra.Command{
		Use:   "results <strategy-id>",
		Short: "Record backtest results on a strategy",
		Example: `  desk backtest strategy results 01J5X... --trades 120 --win-rate 54 --profit-factor 1.7
  desk backtest strategy results 01J5X... --status completed --strength "works in trends" --weakness "chops in ranges"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			var res backtest.StrategyResults
			if cmd.Flags().Changed("trades") {
				v, _ := cmd.Flags().GetInt("trades")
				res.TradesCount = &v
			}
			if cmd.Flags().Changed("win-rate") {
				v, _ := cmd.Flags().GetFloat64("win-rate")
				res.WinRate = &v
			}
			if cmd.Flags().Changed("profit-factor") {
				v, _ := cmd.Flags().GetFloat64("profit-factor")
				res.ProfitFactor = &v
			}
			if cmd.Flags().Changed("rr") {
				v, _ := cmd.Flags().GetFloat64("rr")
				res.RiskRewardRatio = &v
			}
			if cmd.Flags().Changed("strength") {
				res.Strengths, _ = cmd.Flags().GetStringSlice("strength")
			}
			if cmd.Flags().Changed("weakness") {
				res.Weaknesses, _ = cmd.Flags().GetStringSlice("weakness")
			}
			if cmd.Flags().Changed("notes") {
				v, _ := cmd.Flags().GetString("notes")
				res.Notes = &v
			}
			if cmd.Flags().Changed("status") {
				v, _ := cmd.Flags().GetString("status")
				status := models.StrategyStatus(v)
				switch status {
				case models.StrategyIdeaStage, models.StrategyTesting, models.StrategyCompleted:
				default:
					return fmt.Errorf("status must be idea, testing, or completed, got %q", v)
				}
				res.Status = &status
			}

			if err := app.Backtest.UpdateResults(args[0], res); err != nil {
				return fmt.Errorf("recording results: %w", err)
			}
			output.Success("Results recorded")
			return nil
		},
	}
	resultsCmd.Flags().Int("trades", 0, "number of backtested trades")
	resultsCmd.Flags().Float64("win-rate", 0, "win rate percent")
	resultsCmd.Flags().Float64("profit-factor", 0, "profit factor")
	resultsCmd.Flags().Float64("rr", 0, "average risk-reward ratio")
	resultsCmd.Flags().StringSlice("strength", nil, "observed strength (repeatable)")
	resultsCmd.Flags().StringSlice("weakness", nil, "observed weakness (repeatable)")
	resultsCmd.Flags().String("notes", "", "result notes")
	resultsCmd.Flags().String("status", "", "move the strategy to idea, testing, or completed")

	removeCmd := &cobra.Command{
		Use:   "remove <strategy-id>",
		Short: "Delete a strategy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Backtest.RemoveStrategy(args[0]); err != nil {
				return fmt.Errorf("removing strategy: %w", err)
			}
			output.Success("Strategy removed")
			return nil
		},
	}

	cmd.AddCommand(addCmd, listCmd, resultsCmd, removeCmd)
	return cmd
}

func newIdeaCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "idea",
		Short: "Manage raw strategy ideas",
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Record a strategy idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			idea := models.StrategyIdea{Name: args[0]}
			idea.Concept, _ = cmd.Flags().GetString("concept")
			idea.Hypothesis, _ = cmd.Flags().GetString("hypothesis")

			saved, err := app.Backtest.AddIdea(idea)
			if err != nil {
				return fmt.Errorf("recording idea: %w", err)
			}

			if output.IsJSON() {
				return output.JSON(saved)
			}
			output.Success("Recorded idea %q (%s)", saved.Name, saved.ID)
			return nil
		},
	}
	addCmd.Flags().String("concept", "", "what the strategy does")
	addCmd.Flags().String("hypothesis", "", "why it should work")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List strategy ideas",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			ideas := app.Backtest.Ideas()
			if output.IsJSON() {
				return output.JSON(ideas)
			}
			if len(ideas) == 0 {
				output.Info("No ideas recorded.")
				return nil
			}

			table := NewTable(output, "ID", "Name", "Concept", "Added")
			for _, idea := range ideas {
				table.AddRow(
					idea.ID,
					TruncateString(idea.Name, 24),
					TruncateString(idea.Concept, 40),
					FormatDate(idea.CreatedAt),
				)
			}
			table.Render()
			return nil
		},
	}

	promoteCmd := &cobra.Command{
		Use:   "promote <idea-id>",
		Short: "Promote an idea to a strategy under test",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			timeframe, _ := cmd.Flags().GetString("timeframe")
			s, ok, err := app.Backtest.PromoteIdea(args[0], timeframe)
			if err != nil {
				return fmt.Errorf("promoting idea: %w", err)
			}
			if !ok {
				output.Warning("No idea with id %s", args[0])
				return nil
			}

			if output.IsJSON() {
				return output.JSON(s)
			}
			output.Success("Promoted %q to testing (%s)", s.Name, s.ID)
			return nil
		},
	}
	promoteCmd.Flags().String("timeframe", "", "chart timeframe for testing")

	removeCmd := &cobra.Command{
		Use:   "remove <idea-id>",
		Short: "Delete an idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Backtest.RemoveIdea(args[0]); err != nil {
				return fmt.Errorf("removing idea: %w", err)
			}
			output.Success("Idea removed")
			return nil
		},
	}

	cmd.AddCommand(addCmd, listCmd, promoteCmd, removeCmd)
	return cmd
}

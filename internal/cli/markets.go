package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tradingdesk/internal/models"
)

// addMarketCommands adds the market-session and currency-pair commands.
func addMarketCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "markets",
		Short: "Market sessions and currency pairs",
	}

	cmd.AddCommand(newMarketSessionsCmd(app))
	cmd.AddCommand(newMarketPairsCmd(app))

	rootCmd.AddCommand(cmd)
}

func newMarketSessionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions [session-id]",
		Short: "Show trading session clocks",
		Long:  "Show the tracked sessions (asia, europe, us, crypto, commodities) with their schedules and current open/closed status.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			if len(args) == 1 {
				info, ok := app.Sessions.Get(models.MarketSession(args[0]))
				if !ok {
					return fmt.Errorf("unknown session %q", args[0])
				}
				if output.IsJSON() {
					return output.JSON(info)
				}
				printSession(output, info)

				if stats, _ := cmd.Flags().GetBool("stats"); stats {
					s := app.Pairs.SessionStats()
					output.Println()
					output.Bold("Quick Stats")
					output.Printf("  Volume:      %.0f\n", s.Volume)
					output.Printf("  Volatility:  %.1f\n", s.Volatility)
					output.Printf("  Sentiment:   %s\n", s.Sentiment)
					output.Printf("  Performance: %s\n", output.FormatPercent(s.Performance))
				}
				return nil
			}

			sessions := app.Sessions.All()
			if output.IsJSON() {
				return output.JSON(sessions)
			}

			table := NewTable(output, "Session", "Status", "Hours", "Timezone", "Key Pairs")
			for _, info := range sessions {
				status := output.Red(string(info.Status))
				if info.Status == models.SessionOpen {
					status = output.Green(string(info.Status))
				}
				table.AddRow(
					info.Name,
					status,
					info.OpenTime+"-"+info.CloseTime,
					info.Timezone,
					TruncateString(strings.Join(info.KeyPairs, ", "), 32),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().Bool("stats", false, "show the session quick-stats strip")
	return cmd
}

func printSession(output *Output, info models.SessionInfo) {
	output.Bold("%s (%s)", info.Name, info.ID)
	output.Printf("  %s\n", info.Description)
	status := output.Red(string(info.Status))
	if info.Status == models.SessionOpen {
		status = output.Green(string(info.Status))
	}
	output.Printf("  Status:   %s\n", status)
	output.Printf("  Hours:    %s-%s %s\n", info.OpenTime, info.CloseTime, info.Timezone)
	output.Printf("  Indices:  %s\n", strings.Join(info.MainIndices, ", "))
	output.Printf("  Pairs:    %s\n", strings.Join(info.KeyPairs, ", "))
}

func newMarketPairsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairs [symbol]",
		Short: "Show the currency-pair board",
		Example: `  desk markets pairs
  desk markets pairs --category major
  desk markets pairs EUR/USD`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			if len(args) == 1 {
				pair, ok := app.Pairs.Find(args[0])
				if !ok {
					return fmt.Errorf("unknown pair %q", args[0])
				}
				if output.IsJSON() {
					return output.JSON(pair)
				}
				name := pair.Name
				if pair.Nickname != "" {
					name = fmt.Sprintf("%s (%q)", pair.Name, pair.Nickname)
				}
				output.Bold("%s", pair.Symbol)
				output.Printf("  %s\n", name)
				output.Printf("  Category: %s\n", pair.Category)
				output.Printf("  Bid/Ask:  %s / %s\n", FormatPrice(pair.Bid), FormatPrice(pair.Ask))
				output.Printf("  Spread:   %.5f\n", pair.Spread())
				return nil
			}

			category, _ := cmd.Flags().GetString("category")
			if category != "" {
				switch models.PairCategory(category) {
				case models.PairMajor, models.PairMinor, models.PairExotic:
				default:
					return fmt.Errorf("unknown category %q (want major, minor, or exotic)", category)
				}
			}

			pairs := app.Pairs.List(models.PairCategory(category))
			if output.IsJSON() {
				return output.JSON(pairs)
			}

			table := NewTable(output, "Symbol", "Nickname", "Category", "Bid", "Ask", "Change")
			for _, pair := range pairs {
				nickname := pair.Nickname
				if nickname == "" {
					nickname = "-"
				}
				table.AddRow(
					pair.Symbol,
					nickname,
					string(pair.Category),
					FormatPrice(pair.Bid),
					FormatPrice(pair.Ask),
					output.FormatPercent(pair.ChangePercent),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().String("category", "", "filter by category: major, minor, exotic")
	return cmd
}

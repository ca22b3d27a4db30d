package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradingdesk/internal/models"
)

// addPrefsCommands adds the user-preference commands.
func addPrefsCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "User preferences",
		Long:  "Default session, favorite markets, watchlists, quick-stats layout, and theme.",
	}

	cmd.AddCommand(newPrefsShowCmd(app))
	cmd.AddCommand(newPrefsSetCmd(app))
	cmd.AddCommand(newPrefsFavoriteCmd(app))
	cmd.AddCommand(newPrefsWatchlistCmd(app))

	rootCmd.AddCommand(cmd)
}

func newPrefsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			p := app.Prefs.Get()
			if output.IsJSON() {
				return output.JSON(p)
			}

			output.Bold("Preferences")
			output.Printf("  Default Session:  %s\n", p.DefaultSession)
			output.Printf("  Favorite Markets: %v\n", p.FavoriteMarkets)
			output.Printf("  Theme:            %s\n", p.Theme)
			output.Printf("  Quick Stats:      %v\n", p.QuickStats.Order)
			output.Println()
			output.Bold("Watchlists")
			for _, w := range p.Watchlists {
				output.Printf("  %s  %s: %v\n", w.ID, w.Name, w.Instruments)
			}
			return nil
		},
	}
}

func newPrefsSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set a preference",
		Example: `  desk prefs set --session europe
  desk prefs set --theme dark`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			changed := false

			if cmd.Flags().Changed("session") {
				v, _ := cmd.Flags().GetString("session")
				session := models.MarketSession(v)
				if _, ok := app.Sessions.Get(session); !ok {
					return fmt.Errorf("unknown session %q", v)
				}
				if err := app.Prefs.SetDefaultSession(session); err != nil {
					return fmt.Errorf("saving preferences: %w", err)
				}
				output.Success("Default session set to %s", session)
				changed = true
			}
			if cmd.Flags().Changed("theme") {
				v, _ := cmd.Flags().GetString("theme")
				switch v {
				case "light", "dark", "system":
				default:
					return fmt.Errorf("theme must be light, dark, or system, got %q", v)
				}
				if err := app.Prefs.SetTheme(v); err != nil {
					return fmt.Errorf("saving preferences: %w", err)
				}
				output.Success("Theme set to %s", v)
				changed = true
			}
			if cmd.Flags().Changed("quick-stats") {
				stats, _ := cmd.Flags().GetStringSlice("quick-stats")
				if err := app.Prefs.SetQuickStats(stats, stats); err != nil {
					return fmt.Errorf("saving preferences: %w", err)
				}
				output.Success("Quick stats updated")
				changed = true
			}

			if !changed {
				return fmt.Errorf("nothing to set; use --session, --theme, or --quick-stats")
			}
			return nil
		},
	}

	cmd.Flags().String("session", "", "default session: asia, europe, us, crypto, commodities")
	cmd.Flags().String("theme", "", "theme: light, dark, system")
	cmd.Flags().StringSlice("quick-stats", nil, "quick stats to show, in order")
	return cmd
}

func newPrefsFavoriteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <session-id>",
		Short: "Toggle a market session in the favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			session := models.MarketSession(args[0])
			if _, ok := app.Sessions.Get(session); !ok {
				return fmt.Errorf("unknown session %q", args[0])
			}
			if err := app.Prefs.ToggleFavoriteMarket(session); err != nil {
				return fmt.Errorf("saving preferences: %w", err)
			}
			output.Success("Favorites: %v", app.Prefs.Get().FavoriteMarkets)
			return nil
		},
	}
}

func newPrefsWatchlistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Manage watchlists",
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new empty watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			w, err := app.Prefs.AddWatchlist(args[0])
			if err != nil {
				return fmt.Errorf("creating watchlist: %w", err)
			}
			output.Success("Created watchlist %q (%s)", w.Name, w.ID)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <watchlist-id> <symbol>...",
		Short: "Replace a watchlist's instruments",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Prefs.UpdateWatchlist(args[0], args[1:]); err != nil {
				return fmt.Errorf("updating watchlist: %w", err)
			}
			output.Success("Watchlist updated")
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <watchlist-id>",
		Short: "Delete a watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Prefs.RemoveWatchlist(args[0]); err != nil {
				return fmt.Errorf("removing watchlist: %w", err)
			}
			output.Success("Watchlist removed")
			return nil
		},
	}

	cmd.AddCommand(addCmd, setCmd, removeCmd)
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradingdesk/internal/models"
)

// addPsychCommands adds the trading-psychology tracker commands.
func addPsychCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "psych",
		Short: "Trading psychology tracker",
		Long:  "Record mindset entries around trades and correlate moods with journal outcomes.",
	}

	cmd.AddCommand(newPsychAddCmd(app))
	cmd.AddCommand(newPsychListCmd(app))
	cmd.AddCommand(newPsychPatternsCmd(app))
	cmd.AddCommand(newPsychRemoveCmd(app))

	rootCmd.AddCommand(cmd)
}

var validMoods = []models.Mood{
	models.MoodConfident, models.MoodAnxious, models.MoodHesitant,
	models.MoodGreedy, models.MoodFearful, models.MoodFocused,
	models.MoodCalm, models.MoodOther,
}

func parseMood(s string) (models.Mood, error) {
	for _, m := range validMoods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mood %q", s)
}

func newPsychAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a mindset entry",
		Example: `  desk psych add --mood anxious --phase pre --stress 7 --notes "News spike, unsure about entry"
  desk psych add --mood focused --phase post --trade 01J5X... --factor "slept well"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			moodFlag, _ := cmd.Flags().GetString("mood")
			mood, err := parseMood(moodFlag)
			if err != nil {
				return err
			}

			phase, _ := cmd.Flags().GetString("phase")
			if p := models.EntryPhase(phase); p != models.PhasePre && p != models.PhasePost {
				return fmt.Errorf("phase must be pre or post, got %q", phase)
			}

			stress, _ := cmd.Flags().GetInt("stress")
			if stress < 1 || stress > 10 {
				return fmt.Errorf("stress level must be between 1 and 10, got %d", stress)
			}

			entry := models.PsychologyEntry{
				Mood:        mood,
				Phase:       models.EntryPhase(phase),
				StressLevel: stress,
			}
			entry.TradeID, _ = cmd.Flags().GetString("trade")
			entry.CustomMood, _ = cmd.Flags().GetString("custom-mood")
			entry.Notes, _ = cmd.Flags().GetString("notes")
			entry.ExternalFactors, _ = cmd.Flags().GetStringSlice("factor")

			if entry.TradeID != "" {
				if _, ok := app.Journal.Get(entry.TradeID); !ok {
					output.Warning("No journal trade with id %s; linking anyway", entry.TradeID)
				}
			}

			saved, err := app.Psych.Add(entry)
			if err != nil {
				return fmt.Errorf("recording entry: %w", err)
			}

			if output.IsJSON() {
				return output.JSON(saved)
			}
			output.Success("Recorded %s %s entry %s", saved.Phase, saved.Mood, saved.ID)
			return nil
		},
	}

	cmd.Flags().String("mood", "", "mood: confident, anxious, hesitant, greedy, fearful, focused, calm, other")
	cmd.Flags().String("custom-mood", "", "free-form mood when --mood other")
	cmd.Flags().String("phase", "pre", "pre or post trade")
	cmd.Flags().Int("stress", 5, "stress level 1-10")
	cmd.Flags().String("trade", "", "journal trade id to link")
	cmd.Flags().String("notes", "", "entry notes")
	cmd.Flags().StringSlice("factor", nil, "external factor (repeatable)")
	cmd.MarkFlagRequired("mood")
	return cmd
}

func newPsychListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List mindset entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			entries := app.Psych.All()
			if moodFlag, _ := cmd.Flags().GetString("mood"); moodFlag != "" {
				mood, err := parseMood(moodFlag)
				if err != nil {
					return err
				}
				entries = app.Psych.ByMood(mood)
			}

			if output.IsJSON() {
				return output.JSON(entries)
			}
			if len(entries) == 0 {
				output.Info("No entries.")
				return nil
			}

			table := NewTable(output, "ID", "Mood", "Phase", "Stress", "Trade", "When", "Notes")
			for _, e := range entries {
				trade := e.TradeID
				if trade == "" {
					trade = "-"
				}
				table.AddRow(
					e.ID,
					string(e.Mood),
					string(e.Phase),
					fmt.Sprintf("%d", e.StressLevel),
					trade,
					FormatDate(e.Timestamp),
					TruncateString(e.Notes, 30),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().String("mood", "", "restrict to one mood")
	return cmd
}

func newPsychPatternsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "Correlate moods with journal outcomes",
		Long:  "Aggregate win rate and average profit per mood over the closed trades the entries link to.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			patterns := app.Psych.MoodPatterns(app.Journal.All())
			if output.IsJSON() {
				return output.JSON(patterns)
			}
			if len(patterns) == 0 {
				output.Info("No entries to aggregate.")
				return nil
			}

			table := NewTable(output, "Mood", "Entries", "Win Rate", "Avg Profit")
			for _, p := range patterns {
				table.AddRow(
					string(p.Mood),
					fmt.Sprintf("%d", p.TotalTrades),
					fmt.Sprintf("%.1f%%", p.WinRate),
					output.FormatPnL(p.AverageProfit),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newPsychRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <entry-id>",
		Short: "Delete a mindset entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Psych.Remove(args[0]); err != nil {
				return fmt.Errorf("removing entry: %w", err)
			}
			output.Success("Entry removed")
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tradingdesk/internal/calculator"
	"tradingdesk/internal/models"
)

// addCalcCommands adds the position-size calculator commands.
func addCalcCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Position-size calculator",
		Long:  "Compute risk-based position sizes and manage calculator templates.",
	}

	cmd.AddCommand(newCalcSizeCmd(app))
	cmd.AddCommand(newCalcInstrumentsCmd(app))
	cmd.AddCommand(newCalcTemplateCmd(app))

	rootCmd.AddCommand(cmd)
}

// stateFromFlags builds a CalculatorState from the command's flags, starting
// from the configured account defaults and optionally a saved template.
func stateFromFlags(cmd *cobra.Command, app *App) (models.CalculatorState, error) {
	state := calculator.DefaultState()
	state.AccountCurrency = models.Currency(app.Config.Account.Currency)
	state.AccountBalance = app.Config.Account.Balance
	state.RiskPercentage = app.Config.Account.RiskPercentage
	state.Leverage = app.Config.Account.Leverage

	if name, _ := cmd.Flags().GetString("template"); name != "" {
		tpl, ok := findTemplateByName(app, name)
		if !ok {
			return state, fmt.Errorf("template %q not found", name)
		}
		state = calculator.ApplyTemplate(state, tpl)
	}

	if v, _ := cmd.Flags().GetString("market"); v != "" {
		mt := models.MarketType(v)
		if !mt.Valid() {
			return state, fmt.Errorf("unknown market type %q", v)
		}
		state.MarketType = mt
	}
	if cmd.Flags().Changed("symbol") {
		state.Instrument, _ = cmd.Flags().GetString("symbol")
	}
	if cmd.Flags().Changed("balance") {
		state.AccountBalance, _ = cmd.Flags().GetFloat64("balance")
	}
	if cmd.Flags().Changed("custom-balance") {
		v, _ := cmd.Flags().GetFloat64("custom-balance")
		state.CustomBalance = &v
	}
	if cmd.Flags().Changed("risk") {
		state.RiskPercentage, _ = cmd.Flags().GetFloat64("risk")
	}
	if cmd.Flags().Changed("entry") {
		state.EntryPrice, _ = cmd.Flags().GetFloat64("entry")
	}
	if cmd.Flags().Changed("stop-price") {
		state.StopLossPrice, _ = cmd.Flags().GetFloat64("stop-price")
	}
	if cmd.Flags().Changed("stop") {
		state.StopLoss, _ = cmd.Flags().GetFloat64("stop")
	}
	if cmd.Flags().Changed("leverage") {
		state.Leverage, _ = cmd.Flags().GetFloat64("leverage")
	}
	if cmd.Flags().Changed("commission") {
		state.Commission, _ = cmd.Flags().GetFloat64("commission")
	}
	if cmd.Flags().Changed("spread") {
		state.Spread, _ = cmd.Flags().GetFloat64("spread")
	}
	if cmd.Flags().Changed("slippage") {
		state.Slippage, _ = cmd.Flags().GetFloat64("slippage")
	}

	if levels, _ := cmd.Flags().GetStringSlice("tp"); len(levels) > 0 {
		parsed, err := parseTakeProfitLevels(levels)
		if err != nil {
			return state, err
		}
		state.TakeProfitLevels = parsed
	}

	return state, nil
}

// parseTakeProfitLevels parses "price:percentage" pairs.
func parseTakeProfitLevels(raw []string) ([]models.TakeProfitLevel, error) {
	out := make([]models.TakeProfitLevel, 0, len(raw))
	for _, item := range raw {
		parts := strings.SplitN(item, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("bad take-profit level %q (want price:percentage)", item)
		}
		price, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("bad take-profit price %q: %w", parts[0], err)
		}
		pct, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad take-profit percentage %q: %w", parts[1], err)
		}
		if pct < 0 || pct > 100 {
			return nil, fmt.Errorf("take-profit percentage %v out of range [0,100]", pct)
		}
		out = append(out, models.TakeProfitLevel{Price: price, Percentage: pct})
	}
	return out, nil
}

func findTemplateByName(app *App, name string) (models.Template, bool) {
	for _, tpl := range app.Templates.List() {
		if tpl.Name == name || tpl.ID == name {
			return tpl, true
		}
	}
	return models.Template{}, false
}

func addCalcStateFlags(cmd *cobra.Command) {
	cmd.Flags().String("market", "", "market type: forex, stocks, crypto, futures, options")
	cmd.Flags().String("symbol", "", "instrument symbol (e.g. EUR/USD)")
	cmd.Flags().Float64("balance", 0, "account balance")
	cmd.Flags().Float64("custom-balance", 0, "balance override for this calculation")
	cmd.Flags().Float64("risk", 0, "risk per trade, percent of balance")
	cmd.Flags().Float64("entry", 0, "entry price")
	cmd.Flags().Float64("stop", 0, "stop-loss distance")
	cmd.Flags().Float64("stop-price", 0, "stop-loss price")
	cmd.Flags().StringSlice("tp", nil, "take-profit level as price:percentage (repeatable)")
	cmd.Flags().Float64("leverage", 0, "account leverage")
	cmd.Flags().Float64("commission", 0, "commission per unit")
	cmd.Flags().Float64("spread", 0, "spread in pips")
	cmd.Flags().Float64("slippage", 0, "expected slippage in pips")
	cmd.Flags().String("template", "", "apply a saved template before other flags")
}

func newCalcSizeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size",
		Short: "Compute a position size",
		Long: `Compute a risk-based position size for the given market and levels.

Validation problems are shown as warnings; the calculation still runs and
degenerate inputs produce zero results instead of errors.`,
		Example: `  desk calc size --market forex --symbol EUR/USD --entry 1.1000 --stop-price 1.0950 --risk 1
  desk calc size --market futures --symbol ES --entry 5000 --stop-price 4980 --tp 5050:50 --tp 5100:50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			state, err := stateFromFlags(cmd, app)
			if err != nil {
				return err
			}

			if v := calculator.ValidateInputs(state, app.Catalog); !v.IsValid {
				output.Warning("! %s", v.Message)
			}

			var instrument *models.Instrument
			if inst, ok := app.Catalog.Find(state.Instrument, state.MarketType); ok {
				instrument = &inst
			}

			result := calculator.ComputeSize(state, instrument)
			app.Logger.Debug().
				Str("symbol", state.Instrument).
				Float64("size", result.Size).
				Float64("risk_amount", result.RiskAmount).
				Msg("Position size computed")

			if output.IsJSON() {
				return output.JSON(result)
			}

			output.Bold("Position Size - %s (%s)", state.Instrument, state.MarketType)
			output.Println()
			output.Printf("  Size:             %s\n", FormatSize(result.Size))
			output.Printf("  Risk Amount:      %s\n", FormatCurrency(result.RiskAmount))
			if state.MarketType == models.MarketForex {
				output.Printf("  Pip Value:        %s\n", FormatCurrency(result.PipValue))
			}
			output.Printf("  Margin:           %s\n", FormatCurrency(result.Margin))
			output.Printf("  Potential Profit: %s\n", FormatCurrency(result.PotentialProfit))
			output.Printf("  Risk/Reward:      %s\n", FormatRiskReward(result.RiskRewardRatio))
			output.Printf("  Commission:       %s\n", FormatCurrency(result.Commission))
			output.Printf("  Total Cost:       %s\n", FormatCurrency(result.TotalCost))
			if state.MarketType == models.MarketForex && state.EntryPrice > 0 {
				output.Println()
				output.Dim("Break-even (incl. spread): %s", FormatPrice(calculator.BreakEvenPrice(state)))
			}

			if total := totalTPPercentage(state.TakeProfitLevels); total != 100 && len(state.TakeProfitLevels) > 0 {
				output.Println()
				output.Warning("! Take-profit percentages sum to %.0f%%, not 100%%", total)
			}

			return nil
		},
	}

	addCalcStateFlags(cmd)
	return cmd
}

func totalTPPercentage(levels []models.TakeProfitLevel) float64 {
	var total float64
	for _, l := range levels {
		total += l.Percentage
	}
	return total
}

func newCalcInstrumentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instruments",
		Short: "List or search tradable instruments",
		Example: `  desk calc instruments --market forex
  desk calc instruments --market stocks --search apple`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			marketFlag, _ := cmd.Flags().GetString("market")
			search, _ := cmd.Flags().GetString("search")

			marketTypes := models.MarketTypes
			if marketFlag != "" {
				mt := models.MarketType(marketFlag)
				if !mt.Valid() {
					return fmt.Errorf("unknown market type %q", marketFlag)
				}
				marketTypes = []models.MarketType{mt}
			}

			var all []models.Instrument
			for _, mt := range marketTypes {
				if search != "" {
					all = append(all, app.Catalog.Search(mt, search)...)
				} else {
					all = append(all, app.Catalog.List(mt)...)
				}
			}

			if output.IsJSON() {
				return output.JSON(all)
			}

			table := NewTable(output, "Symbol", "Name", "Market", "Min", "Max")
			for _, inst := range all {
				table.AddRow(
					inst.Symbol,
					TruncateString(inst.Name, 30),
					string(inst.Type),
					FormatSize(inst.MinSize),
					FormatSize(inst.MaxSize),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().String("market", "", "restrict to one market type")
	cmd.Flags().String("search", "", "case-insensitive substring match on symbol or name")
	return cmd
}

func newCalcTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage calculator templates",
	}

	saveCmd := &cobra.Command{
		Use:     "save <name>",
		Short:   "Save the given calculator setup as a template",
		Args:    cobra.ExactArgs(1),
		Example: `  desk calc template save scalp-eurusd --market forex --symbol EUR/USD --risk 0.5 --leverage 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			state, err := stateFromFlags(cmd, app)
			if err != nil {
				return err
			}

			tpl, err := app.Templates.Save(args[0], state)
			if err != nil {
				return fmt.Errorf("saving template: %w", err)
			}

			app.Logger.Info().Str("template_id", tpl.ID).Str("name", tpl.Name).Msg("Template saved")
			output.Success("Saved template %q (%s)", tpl.Name, tpl.ID)
			return nil
		},
	}
	addCalcStateFlags(saveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			templates := app.Templates.List()
			if output.IsJSON() {
				return output.JSON(templates)
			}

			if len(templates) == 0 {
				output.Info("No templates saved.")
				return nil
			}

			table := NewTable(output, "ID", "Name", "Market", "Risk %", "Leverage")
			for _, tpl := range templates {
				risk, leverage := "-", "-"
				if tpl.Settings.RiskPercentage != nil {
					risk = fmt.Sprintf("%.2f", *tpl.Settings.RiskPercentage)
				}
				if tpl.Settings.Leverage != nil {
					leverage = fmt.Sprintf("1:%.0f", *tpl.Settings.Leverage)
				}
				table.AddRow(tpl.ID, tpl.Name, string(tpl.MarketType), risk, leverage)
			}
			table.Render()
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Templates.Remove(args[0]); err != nil {
				return fmt.Errorf("deleting template: %w", err)
			}
			output.Success("Template removed")
			return nil
		},
	}

	cmd.AddCommand(saveCmd, listCmd, deleteCmd)
	return cmd
}

package main

import (
	"flag"
	"fmt"
	"strings"
)

// AnalyzeFlags holds all command line flags for the analyze command
type AnalyzeFlags struct {
	// Input
	DataFile *string
	Symbol   *string
	Period   *string

	// Account settings
	InitialCapital *float64

	// Analysis options
	DailyDate    *string
	BacktestFile *string

	// Output options
	OutputDir   *string
	ConsoleOnly *bool
	EnvFile     *string

	// Help and version
	ShowVersion *bool
	ShowHelp    *bool
}

// NewAnalyzeFlags creates and registers all analyze command line flags
func NewAnalyzeFlags() *AnalyzeFlags {
	flags := &AnalyzeFlags{
		// Input
		DataFile: flag.String("data", "", "Path to trade history file (.csv, .json, .db)"),
		Symbol:   flag.String("symbol", "", "Restrict analysis to one symbol"),
		Period:   flag.String("period", "", "Limit data to trailing period (7d, 30d, 180d, 365d)"),

		// Account settings
		InitialCapital: flag.Float64("capital", 0, "Initial capital (overrides INITIAL_CAPITAL)"),

		// Analysis options
		DailyDate:    flag.String("daily", "", "Print a daily report for this date (YYYY-MM-DD)"),
		BacktestFile: flag.String("backtest", "", "Backtest reference JSON for live vs backtest comparison"),

		// Output options
		OutputDir:   flag.String("output", "", "Output directory (default: results/<SYMBOL>_<period>)"),
		ConsoleOnly: flag.Bool("console-only", false, "Console output only (no files)"),
		EnvFile:     flag.String("env", ".env", "Environment file path"),

		// Help and version
		ShowVersion: flag.Bool("version", false, "Show version information"),
		ShowHelp:    flag.Bool("help", false, "Show detailed help"),
	}

	return flags
}

// ValidateAnalyzeFlags performs validation on flag combinations
func ValidateAnalyzeFlags(flags *AnalyzeFlags) error {
	if *flags.InitialCapital < 0 {
		return fmt.Errorf("initial capital must not be negative, got: %.2f", *flags.InitialCapital)
	}

	if *flags.Symbol != "" && len(*flags.Symbol) < 3 {
		return fmt.Errorf("symbol must be at least 3 characters, got: %s", *flags.Symbol)
	}

	if *flags.DailyDate != "" && len(*flags.DailyDate) != len("2006-01-02") {
		return fmt.Errorf("daily date must be YYYY-MM-DD, got: %s", *flags.DailyDate)
	}

	return nil
}

// PrintAnalyzeUsageExamples prints usage examples for the analyze command
func PrintAnalyzeUsageExamples() {
	examples := []struct {
		command     string
		description string
	}{
		{
			"analyze -data trades.csv",
			"Full performance report over a CSV trade history",
		},
		{
			"analyze -data trades.db -symbol BTCUSDT -period 30d",
			"Last 30 days of BTC trades from the trading database",
		},
		{
			"analyze -data trades.json -daily 2026-08-15",
			"Performance report plus a daily summary for one date",
		},
		{
			"analyze -data trades.csv -backtest results/best.json",
			"Compare live performance against a backtest baseline",
		},
		{
			"analyze -data trades.csv -console-only",
			"Console report only, skip file output",
		},
	}

	fmt.Printf("\n📚 USAGE EXAMPLES:\n")
	fmt.Printf("%s\n", strings.Repeat("-", 60))

	for _, example := range examples {
		fmt.Printf("\n• %s\n", example.description)
		fmt.Printf("  %s\n", example.command)
	}
}

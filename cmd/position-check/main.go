package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/quantlab/trade-analyzer/internal/config"
	"github.com/quantlab/trade-analyzer/internal/risk"
	"github.com/quantlab/trade-analyzer/pkg/reporting"
)

const (
	AppName    = "Position Check"
	AppVersion = "1.0.0"
)

func main() {
	// Create and parse command line flags
	flags := NewPositionFlags()
	flag.Parse()

	// Version and help before validation so they work without -entry
	if *flags.ShowVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}

	if *flags.ShowHelp {
		printUsageHelp()
		return
	}

	if err := ValidatePositionFlags(flags); err != nil {
		log.Fatalf("❌ Flag validation error: %v", err)
	}

	// Header
	fmt.Printf("🎯 %s v%s\n", strings.ToUpper(AppName), AppVersion)
	fmt.Printf("%s\n\n", strings.Repeat("=", 50))

	// Load environment and risk thresholds
	if err := config.LoadEnvFile(*flags.EnvFile); err != nil {
		log.Printf("⚠️  %v", err)
	}
	cfg := config.LoadFromEnv()

	evaluator := risk.NewEvaluator(cfg.Risk)
	side := risk.Side(strings.ToUpper(*flags.Side))

	// Evaluate the proposed position
	maxSize := evaluator.MaxPositionSizeForLeverage(*flags.Leverage)
	level := evaluator.RiskLevelForLeverage(*flags.Leverage)
	liqDistance := evaluator.LiquidationDistance(*flags.EntryPrice, *flags.LiquidationPrice, side)
	stops := evaluator.SuggestedStops(*flags.EntryPrice, side, *flags.Leverage)
	warnings := evaluator.EvaluatePosition(*flags.Leverage, *flags.PositionSize, *flags.MarginRatio, liqDistance)
	emergency := evaluator.CheckEmergency(*flags.DailyPnLPct, *flags.MarginRatio, liqDistance, *flags.AccountBalance)

	printAssessment(flags, level, maxSize, liqDistance, stops)

	console := reporting.NewDefaultConsoleReporter()
	console.OutputWarnings(warnings)
	fmt.Println()
	console.OutputEmergency(emergency)

	if emergency.Any() {
		os.Exit(1)
	}
}

func printUsageHelp() {
	fmt.Printf("%s v%s - Leveraged Position Risk Evaluation\n\n", AppName, AppVersion)
	fmt.Printf("USAGE:\n  %s [OPTIONS]\n\n", filepath.Base(flag.CommandLine.Name()))

	PrintPositionUsageExamples()

	fmt.Printf("\nFLAGS:\n")
	flag.PrintDefaults()
}

func printAssessment(flags *PositionFlags, level risk.Level, maxSize, liqDistance float64, stops risk.StopTargets) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("POSITION ASSESSMENT - %s", strings.ToUpper(*flags.Symbol)))
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"📊 Side", strings.ToUpper(*flags.Side)},
		{"📊 Leverage", fmt.Sprintf("%dx (%s)", *flags.Leverage, level)},
		{"💰 Entry Price", fmt.Sprintf("$%.6f", *flags.EntryPrice)},
		{"💰 Position Size", fmt.Sprintf("$%.2f (max recommended $%.2f)", *flags.PositionSize, maxSize)},
		{"📏 Liq. Distance", fmt.Sprintf("%.2f%%", liqDistance)},
	})

	t.AppendSeparator()

	t.AppendRows([]table.Row{
		{"🛑 Stop Loss", fmt.Sprintf("$%.6f (%.2f%%)", stops.StopLoss, stops.StopLossPct)},
		{"🎯 Take Profit", fmt.Sprintf("$%.6f (%.2f%%)", stops.TakeProfit, stops.TakeProfitPct)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 18, WidthMax: 18, Align: text.AlignLeft},
		{Number: 2, WidthMin: 25, WidthMax: 45, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()
}

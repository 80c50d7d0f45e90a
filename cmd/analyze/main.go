package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quantlab/trade-analyzer/internal/analytics"
	"github.com/quantlab/trade-analyzer/internal/config"
	datamanager "github.com/quantlab/trade-analyzer/pkg/data"
	"github.com/quantlab/trade-analyzer/pkg/reporting"
	"github.com/quantlab/trade-analyzer/pkg/types"
)

const (
	AppName    = "Trade Analyzer"
	AppVersion = "1.0.0"
)

func main() {
	// Create and parse command line flags
	flags := NewAnalyzeFlags()
	flag.Parse()

	// Validate flags before proceeding
	if err := ValidateAnalyzeFlags(flags); err != nil {
		log.Fatalf("❌ Flag validation error: %v", err)
	}

	// Version and help
	if *flags.ShowVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}

	if *flags.ShowHelp {
		printUsageHelp()
		return
	}

	// Header
	printHeader()

	// Load environment and configuration
	if err := config.LoadEnvFile(*flags.EnvFile); err != nil {
		log.Printf("⚠️  %v", err)
	}
	cfg := config.LoadFromEnv()
	if *flags.InitialCapital > 0 {
		cfg.InitialCapital = *flags.InitialCapital
	}
	if *flags.DataFile != "" {
		cfg.DataFile = *flags.DataFile
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	// Parse period filter
	var selectedPeriod time.Duration
	if *flags.Period != "" {
		period := strings.TrimSpace(*flags.Period)
		if d, ok := datamanager.ParseTrailingPeriod(period); ok {
			selectedPeriod = d
		} else {
			log.Fatalf("❌ Invalid period format: %s (use 7d, 30d, 180d, 365d)", period)
		}
	}

	// Load trade history
	trades := loadTrades(cfg.DataFile, *flags.Symbol, selectedPeriod)
	if len(trades) == 0 {
		log.Fatalf("❌ No trades left after filtering")
	}
	log.Printf("📊 Analyzing %d trades (capital $%.2f)", len(trades), cfg.InitialCapital)

	// Compute and report
	metrics := analytics.Compute(trades, cfg.InitialCapital)
	symbolStats := analytics.BySymbol(trades)

	reporter := reporting.NewDefaultReporter()
	reporter.OutputMetricsWithContext(metrics, *flags.Symbol, *flags.Period)
	reporter.OutputSymbolBreakdown(symbolStats)

	if *flags.DailyDate != "" {
		day, err := time.Parse("2006-01-02", *flags.DailyDate)
		if err != nil {
			log.Fatalf("❌ Invalid daily date: %v", err)
		}
		reporter.OutputDailyReport(analytics.ReportForDay(trades, day))
	}

	var comparison *analytics.Comparison
	if *flags.BacktestFile != "" {
		ref, err := loadBacktestReference(*flags.BacktestFile)
		if err != nil {
			log.Fatalf("❌ Could not load backtest reference: %v", err)
		}
		cmp := analytics.CompareWithBacktest(metrics, ref)
		comparison = &cmp
		printComparison(cmp)
	}

	// File output
	if !*flags.ConsoleOnly {
		writeReports(reporter, flags, trades, metrics, symbolStats, comparison)
	}
}

func printHeader() {
	fmt.Printf("🎯 %s v%s\n", strings.ToUpper(AppName), AppVersion)
	fmt.Printf("%s\n\n", strings.Repeat("=", 50))
}

func printUsageHelp() {
	fmt.Printf("%s v%s - Trading Performance & Risk Evaluation\n\n", AppName, AppVersion)
	fmt.Printf("USAGE:\n  %s [OPTIONS]\n\n", filepath.Base(flag.CommandLine.Name()))

	PrintAnalyzeUsageExamples()

	fmt.Printf("\nFLAGS:\n")
	flag.PrintDefaults()
}

// loadTrades selects a provider for the file extension, loads, validates and
// filters the history.
func loadTrades(dataFile, symbol string, period time.Duration) []types.Trade {
	provider := providerForFile(dataFile)
	log.Printf("📊 Loading trades from %s (%s)", dataFile, provider.GetName())

	trades, err := provider.LoadTrades(dataFile)
	if err != nil {
		log.Fatalf("❌ Could not load trades: %v", err)
	}

	filter := datamanager.NewDefaultTradeFilter()
	trades = filter.SortByTimestamp(trades)
	if err := provider.ValidateTrades(trades); err != nil {
		log.Fatalf("❌ Invalid trade history: %v", err)
	}

	if symbol != "" {
		var filtered []types.Trade
		for _, t := range trades {
			if strings.EqualFold(t.Symbol, symbol) {
				filtered = append(filtered, t)
			}
		}
		trades = filtered
	}

	if period > 0 {
		trades = filter.FilterByPeriod(trades, period)
	}

	return trades
}

func providerForFile(path string) datamanager.TradeProvider {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return datamanager.NewJSONProvider()
	case ".db", ".sqlite", ".sqlite3":
		return datamanager.NewSQLiteProvider()
	default:
		return datamanager.NewCSVProvider()
	}
}

func loadBacktestReference(path string) (analytics.BacktestReference, error) {
	var ref analytics.BacktestReference
	raw, err := os.ReadFile(path)
	if err != nil {
		return ref, err
	}
	if err := json.Unmarshal(raw, &ref); err != nil {
		return ref, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return ref, nil
}

func printComparison(cmp analytics.Comparison) {
	fmt.Println("📊 LIVE VS BACKTEST:")
	printFieldDiff("Total Return %", cmp.TotalReturnPct)
	printFieldDiff("Sharpe Ratio", cmp.SharpeRatio)
	printFieldDiff("Max Drawdown %", cmp.MaxDrawdown)
	printFieldDiff("Win Rate %", cmp.WinRate)
	printFieldDiff("Total Trades", cmp.TotalTrades)
	fmt.Println()
}

func printFieldDiff(label string, d analytics.FieldDiff) {
	fmt.Printf("  %-16s live %.2f vs backtest %.2f (%+.2f, %+.1f%%)\n",
		label, d.Live, d.Backtest, d.Absolute, d.PercentDiff)
}

func writeReports(reporter reporting.Reporter, flags *AnalyzeFlags, trades []types.Trade,
	metrics analytics.Metrics, symbolStats []analytics.SymbolStats, comparison *analytics.Comparison) {

	outputDir := *flags.OutputDir
	if outputDir == "" {
		outputDir = reporter.GetDefaultOutputDir(*flags.Symbol, *flags.Period)
	}

	csvPath := filepath.Join(outputDir, "trades.csv")
	if err := reporter.WriteTradesCSV(trades, metrics, csvPath); err != nil {
		log.Printf("⚠️  Could not write %s: %v", csvPath, err)
	} else {
		log.Printf("💾 Trades CSV written to %s", csvPath)
	}

	xlsxPath := filepath.Join(outputDir, "report.xlsx")
	if err := reporter.WriteReportXLSX(trades, metrics, xlsxPath); err != nil {
		log.Printf("⚠️  Could not write %s: %v", xlsxPath, err)
	} else {
		log.Printf("💾 Excel report written to %s", xlsxPath)
	}

	doc := reporting.ReportDocument{
		Symbol:     *flags.Symbol,
		Period:     *flags.Period,
		Metrics:    metrics,
		Symbols:    symbolStats,
		Comparison: comparison,
	}
	jsonPath := filepath.Join(outputDir, "metrics.json")
	if err := reporting.WriteReportJSON(doc, jsonPath); err != nil {
		log.Printf("⚠️  Could not write %s: %v", jsonPath, err)
	} else {
		log.Printf("💾 Metrics JSON written to %s", jsonPath)
	}
}

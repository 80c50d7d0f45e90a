package main

import (
	"flag"
	"fmt"
	"strings"
)

// PositionFlags holds all command line flags for the position-check command
type PositionFlags struct {
	// Position parameters
	Symbol           *string
	Side             *string
	EntryPrice       *float64
	LiquidationPrice *float64
	Leverage         *int
	PositionSize     *float64
	MarginRatio      *float64

	// Account state
	DailyPnLPct    *float64
	AccountBalance *float64

	// Output options
	EnvFile *string

	// Help and version
	ShowVersion *bool
	ShowHelp    *bool
}

// NewPositionFlags creates and registers all position-check command line flags
func NewPositionFlags() *PositionFlags {
	flags := &PositionFlags{
		// Position parameters
		Symbol:           flag.String("symbol", "BTCUSDT", "Trading symbol"),
		Side:             flag.String("side", "LONG", "Position side (LONG, SHORT)"),
		EntryPrice:       flag.Float64("entry", 0, "Entry price"),
		LiquidationPrice: flag.Float64("liquidation", 0, "Liquidation price (0 = unknown)"),
		Leverage:         flag.Int("leverage", 5, "Position leverage"),
		PositionSize:     flag.Float64("size", 0, "Position size in USDT"),
		MarginRatio:      flag.Float64("margin-ratio", 0, "Current margin ratio in percent"),

		// Account state
		DailyPnLPct:    flag.Float64("daily-pnl", 0, "Daily PnL in percent (losses negative)"),
		AccountBalance: flag.Float64("balance", 1000, "Account balance in USDT"),

		// Output options
		EnvFile: flag.String("env", ".env", "Environment file path"),

		// Help and version
		ShowVersion: flag.Bool("version", false, "Show version information"),
		ShowHelp:    flag.Bool("help", false, "Show detailed help"),
	}

	return flags
}

// ValidatePositionFlags performs validation on flag combinations
func ValidatePositionFlags(flags *PositionFlags) error {
	side := strings.ToUpper(*flags.Side)
	if side != "LONG" && side != "SHORT" {
		return fmt.Errorf("side must be LONG or SHORT, got: %s", *flags.Side)
	}

	if *flags.EntryPrice <= 0 {
		return fmt.Errorf("entry price must be positive, got: %.6f", *flags.EntryPrice)
	}

	if *flags.Leverage < 1 {
		return fmt.Errorf("leverage must be at least 1, got: %d", *flags.Leverage)
	}

	if *flags.PositionSize < 0 {
		return fmt.Errorf("position size must not be negative, got: %.2f", *flags.PositionSize)
	}

	return nil
}

// PrintPositionUsageExamples prints usage examples for the position-check command
func PrintPositionUsageExamples() {
	examples := []struct {
		command     string
		description string
	}{
		{
			"position-check -symbol BTCUSDT -side LONG -entry 50000 -leverage 10 -size 1500",
			"Evaluate a 10x long against the recommended limits",
		},
		{
			"position-check -entry 3000 -side SHORT -leverage 20 -liquidation 3120",
			"Check liquidation distance for a 20x short",
		},
		{
			"position-check -entry 50000 -leverage 5 -daily-pnl -12 -balance 450 -margin-ratio 85",
			"Include account state to evaluate emergency conditions",
		},
	}

	fmt.Printf("\n📚 USAGE EXAMPLES:\n")
	fmt.Printf("%s\n", strings.Repeat("-", 60))

	for _, example := range examples {
		fmt.Printf("\n• %s\n", example.description)
		fmt.Printf("  %s\n", example.command)
	}
}

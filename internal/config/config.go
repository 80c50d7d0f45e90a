package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/quantlab/trade-analyzer/internal/risk"
)

// Config holds the analyzer settings that can be overridden through the
// environment.
type Config struct {
	InitialCapital float64
	DataFile       string
	OutputDir      string
	Risk           risk.Config
}

// LoadEnvFile loads environment variables from a .env style file. A missing
// file is not an error; the system environment is used as-is.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("could not load environment file %s: %w", path, err)
	}
	return nil
}

// LoadFromEnv builds the analyzer configuration from environment variables,
// falling back to the built-in defaults for anything unset.
func LoadFromEnv() Config {
	riskCfg := risk.DefaultConfig()

	riskCfg.MaxRecommendedLeverage = getEnvInt("MAX_RECOMMENDED_LEVERAGE", riskCfg.MaxRecommendedLeverage)
	riskCfg.DefaultLeverage = getEnvInt("DEFAULT_LEVERAGE", riskCfg.DefaultLeverage)
	riskCfg.MaxPositionSizeUSDT = getEnvFloat("MAX_POSITION_SIZE_USDT", riskCfg.MaxPositionSizeUSDT)
	riskCfg.MaxTotalPositions = getEnvInt("MAX_TOTAL_POSITIONS", riskCfg.MaxTotalPositions)
	riskCfg.DefaultStopLossPct = getEnvFloat("DEFAULT_STOP_LOSS_PCT", riskCfg.DefaultStopLossPct)
	riskCfg.DefaultTakeProfitPct = getEnvFloat("DEFAULT_TAKE_PROFIT_PCT", riskCfg.DefaultTakeProfitPct)
	riskCfg.MaxDailyLossPct = getEnvFloat("MAX_DAILY_LOSS_PCT", riskCfg.MaxDailyLossPct)
	riskCfg.MarginRatioWarning = getEnvFloat("MARGIN_RATIO_WARNING", riskCfg.MarginRatioWarning)
	riskCfg.MarginRatioDanger = getEnvFloat("MARGIN_RATIO_DANGER", riskCfg.MarginRatioDanger)
	riskCfg.MinAccountBalance = getEnvFloat("MIN_ACCOUNT_BALANCE", riskCfg.MinAccountBalance)

	return Config{
		InitialCapital: getEnvFloat("INITIAL_CAPITAL", 10000),
		DataFile:       getEnv("TRADE_DATA_FILE", "trades.csv"),
		OutputDir:      getEnv("OUTPUT_DIR", "results"),
		Risk:           riskCfg,
	}
}

// Validate checks the configuration for values that make analysis impossible.
func (c Config) Validate() error {
	if c.InitialCapital <= 0 {
		return fmt.Errorf("initial capital must be positive, got %f", c.InitialCapital)
	}
	if c.Risk.MaxRecommendedLeverage <= 0 {
		return fmt.Errorf("max recommended leverage must be positive, got %d", c.Risk.MaxRecommendedLeverage)
	}
	if c.Risk.MaxDailyLossPct <= 0 {
		return fmt.Errorf("max daily loss percent must be positive, got %f", c.Risk.MaxDailyLossPct)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/quantlab/trade-analyzer/pkg/types"
)

// CSVProvider implements TradeProvider for CSV trade history files.
type CSVProvider struct {
	format TradeColumnMapping
}

// NewCSVProvider creates a new CSV trade provider with the default format.
func NewCSVProvider() *CSVProvider {
	return &CSVProvider{
		format: DefaultTradeCSVFormat,
	}
}

// NewCSVProviderWithFormat creates a new CSV trade provider with a custom
// column mapping.
func NewCSVProviderWithFormat(format TradeColumnMapping) *CSVProvider {
	return &CSVProvider{
		format: format,
	}
}

// GetName returns the name of the provider.
func (p *CSVProvider) GetName() string {
	return "CSV Provider"
}

// LoadTrades loads trade history from a CSV file. Malformed rows are skipped
// with a warning; a missing file falls back to generated sample data.
func (p *CSVProvider) LoadTrades(source string) ([]types.Trade, error) {
	file, err := os.Open(source)
	if err != nil {
		if os.IsNotExist(err) {
			log.Println("⚠️  Trade history file not found, generating sample data...")
			return GenerateSampleTrades(DefaultSampleOptions()), nil
		}
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, err
	}

	var trades []types.Trade

	lineNum := 1 // header already consumed
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("error reading CSV at line %d: %v", lineNum, err)
		}
		lineNum++

		if len(record) < p.format.MinColumns {
			log.Printf("⚠️ Insufficient columns at line %d (expected %d, got %d), skipping", lineNum, p.format.MinColumns, len(record))
			continue
		}

		timestamp, err := time.Parse(p.format.DateFormat, record[p.format.TimestampCol])
		if err != nil {
			log.Printf("⚠️ Invalid timestamp '%s' at line %d, skipping: %v", record[p.format.TimestampCol], lineNum, err)
			continue
		}

		amount, err := strconv.ParseFloat(record[p.format.AmountCol], 64)
		if err != nil {
			log.Printf("⚠️ Invalid trade amount '%s' at line %d, skipping: %v", record[p.format.AmountCol], lineNum, err)
			continue
		}

		pnl, err := strconv.ParseFloat(record[p.format.PnLCol], 64)
		if err != nil {
			log.Printf("⚠️ Invalid pnl '%s' at line %d, skipping: %v", record[p.format.PnLCol], lineNum, err)
			continue
		}

		pnlPct, err := strconv.ParseFloat(record[p.format.PnLPctCol], 64)
		if err != nil {
			log.Printf("⚠️ Invalid pnl percentage '%s' at line %d, skipping: %v", record[p.format.PnLPctCol], lineNum, err)
			continue
		}

		fees, err := strconv.ParseFloat(record[p.format.FeesCol], 64)
		if err != nil {
			log.Printf("⚠️ Invalid fees '%s' at line %d, skipping: %v", record[p.format.FeesCol], lineNum, err)
			continue
		}

		if amount <= 0 {
			log.Printf("⚠️ Non-positive trade amount at line %d, skipping", lineNum)
			continue
		}
		if fees < 0 {
			log.Printf("⚠️ Negative fees at line %d, skipping", lineNum)
			continue
		}

		trades = append(trades, types.Trade{
			Timestamp:     timestamp,
			Symbol:        record[p.format.SymbolCol],
			TradeAmount:   amount,
			PnL:           pnl,
			PnLPercentage: pnlPct,
			Fees:          fees,
		})
	}

	return trades, nil
}

// ValidateTrades checks the loaded history for structural problems.
func (p *CSVProvider) ValidateTrades(trades []types.Trade) error {
	return validateTrades(trades)
}

// validateTrades is shared by all providers: timestamps must be ascending
// (duplicates are valid re-entries), amounts positive, fees non-negative.
func validateTrades(trades []types.Trade) error {
	for i, t := range trades {
		if t.Timestamp.IsZero() {
			return fmt.Errorf("trade %d has a zero timestamp", i)
		}
		if t.TradeAmount <= 0 {
			return fmt.Errorf("trade %d has non-positive amount %f", i, t.TradeAmount)
		}
		if t.Fees < 0 {
			return fmt.Errorf("trade %d has negative fees %f", i, t.Fees)
		}
		if i > 0 && t.Timestamp.Before(trades[i-1].Timestamp) {
			return fmt.Errorf("trades not in chronological order at index %d: %s comes after %s",
				i, t.Timestamp.Format(time.RFC3339), trades[i-1].Timestamp.Format(time.RFC3339))
		}
	}
	return nil
}

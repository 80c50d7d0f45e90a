package data

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/quantlab/trade-analyzer/pkg/types"
)

// jsonTrade is the wire shape of one trade record in a JSON report file.
type jsonTrade struct {
	Timestamp     string  `json:"timestamp"`
	Symbol        string  `json:"symbol"`
	TradeAmount   float64 `json:"trade_amount"`
	PnL           float64 `json:"pnl"`
	PnLPercentage float64 `json:"pnl_percentage"`
	Fees          float64 `json:"fees"`
}

// jsonTimestampLayouts are the accepted timestamp encodings, tried in order.
var jsonTimestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// JSONProvider implements TradeProvider for JSON trade report files.
type JSONProvider struct{}

// NewJSONProvider creates a new JSON trade provider.
func NewJSONProvider() *JSONProvider {
	return &JSONProvider{}
}

// GetName returns the name of the provider.
func (p *JSONProvider) GetName() string {
	return "JSON Provider"
}

// LoadTrades loads trade history from a JSON file holding an array of trade
// objects. The result is sorted by timestamp ascending.
func (p *JSONProvider) LoadTrades(source string) ([]types.Trade, error) {
	raw, err := os.ReadFile(source)
	if err != nil {
		return nil, err
	}

	var records []jsonTrade
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}

	trades := make([]types.Trade, 0, len(records))
	for i, rec := range records {
		timestamp, err := parseJSONTimestamp(rec.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		trades = append(trades, types.Trade{
			Timestamp:     timestamp,
			Symbol:        rec.Symbol,
			TradeAmount:   rec.TradeAmount,
			PnL:           rec.PnL,
			PnLPercentage: rec.PnLPercentage,
			Fees:          rec.Fees,
		})
	}

	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].Timestamp.Before(trades[j].Timestamp)
	})

	return trades, nil
}

// ValidateTrades checks the loaded history for structural problems.
func (p *JSONProvider) ValidateTrades(trades []types.Trade) error {
	return validateTrades(trades)
}

func parseJSONTimestamp(value string) (time.Time, error) {
	for _, layout := range jsonTimestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

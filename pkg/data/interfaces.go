package data

import (
	"time"

	"github.com/quantlab/trade-analyzer/pkg/types"
)

// TradeProvider loads closed-trade history from a backing source. Providers
// reject malformed records at ingestion so downstream consumers only ever see
// well-typed trades.
type TradeProvider interface {
	// LoadTrades loads the trade history from the specified source.
	LoadTrades(source string) ([]types.Trade, error)

	// ValidateTrades validates the integrity of the loaded history.
	ValidateTrades(trades []types.Trade) error

	// GetName returns the name of the provider.
	GetName() string
}

// TradeFilter narrows and orders a loaded trade history.
type TradeFilter interface {
	// FilterByPeriod keeps only the trailing period of the history.
	FilterByPeriod(trades []types.Trade, period time.Duration) []types.Trade

	// FilterByDateRange keeps trades inside [start, end].
	FilterByDateRange(trades []types.Trade, start, end time.Time) []types.Trade

	// ValidateTimeSequence ensures the history is in chronological order.
	ValidateTimeSequence(trades []types.Trade) error
}

// TradeColumnMapping defines the column positions for trade history CSV
// files.
type TradeColumnMapping struct {
	TimestampCol int
	SymbolCol    int
	AmountCol    int
	PnLCol       int
	PnLPctCol    int
	FeesCol      int
	MinColumns   int
	DateFormat   string
}

// DefaultTradeCSVFormat matches the columns written by the reporting layer:
// timestamp, symbol, trade_amount, pnl, pnl_percentage, fees.
var DefaultTradeCSVFormat = TradeColumnMapping{
	TimestampCol: 0,
	SymbolCol:    1,
	AmountCol:    2,
	PnLCol:       3,
	PnLPctCol:    4,
	FeesCol:      5,
	MinColumns:   6,
	DateFormat:   "2006-01-02 15:04:05",
}

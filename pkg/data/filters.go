package data

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/quantlab/trade-analyzer/pkg/types"
)

// DefaultTradeFilter implements TradeFilter for common filtering operations.
type DefaultTradeFilter struct{}

// NewDefaultTradeFilter creates a new default trade filter.
func NewDefaultTradeFilter() *DefaultTradeFilter {
	return &DefaultTradeFilter{}
}

// FilterByPeriod keeps only the trailing period of the history, measured back
// from the last trade.
func (f *DefaultTradeFilter) FilterByPeriod(trades []types.Trade, period time.Duration) []types.Trade {
	if period <= 0 || len(trades) == 0 {
		return trades
	}

	latest := trades[len(trades)-1].Timestamp
	cutoff := latest.Add(-period)

	startIdx := len(trades)
	for i, t := range trades {
		if !t.Timestamp.Before(cutoff) {
			startIdx = i
			break
		}
	}

	return trades[startIdx:]
}

// FilterByDateRange keeps trades inside [start, end], inclusive.
func (f *DefaultTradeFilter) FilterByDateRange(trades []types.Trade, start, end time.Time) []types.Trade {
	if len(trades) == 0 {
		return trades
	}

	var filtered []types.Trade
	for _, t := range trades {
		if !t.Timestamp.Before(start) && !t.Timestamp.After(end) {
			filtered = append(filtered, t)
		}
	}

	return filtered
}

// ValidateTimeSequence ensures the history is in chronological order.
// Duplicate timestamps are allowed; re-entries close at the same instant.
func (f *DefaultTradeFilter) ValidateTimeSequence(trades []types.Trade) error {
	for i := 1; i < len(trades); i++ {
		if trades[i].Timestamp.Before(trades[i-1].Timestamp) {
			return fmt.Errorf("trades not in chronological order at index %d: %s comes after %s",
				i, trades[i].Timestamp.Format(time.RFC3339), trades[i-1].Timestamp.Format(time.RFC3339))
		}
	}
	return nil
}

// SortByTimestamp returns a copy of the history ordered by close time.
// The sort is stable so same-instant re-entries keep their original order.
func (f *DefaultTradeFilter) SortByTimestamp(trades []types.Trade) []types.Trade {
	if len(trades) <= 1 {
		return trades
	}

	sorted := make([]types.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	return sorted
}

// ParseTrailingPeriod converts strings like "7d", "30d", "365d" to a
// duration. Anything but digits followed by a single "d" is rejected.
func ParseTrailingPeriod(period string) (time.Duration, bool) {
	digits, ok := strings.CutSuffix(period, "d")
	if !ok {
		return 0, false
	}
	days, err := strconv.Atoi(digits)
	if err != nil || days <= 0 {
		return 0, false
	}
	return time.Duration(days) * 24 * time.Hour, true
}

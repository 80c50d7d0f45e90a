package types

import "time"

// Trade is a single closed position. PnL and Fees are independent amounts in
// quote currency; net result is PnL - Fees and is derived by consumers.
type Trade struct {
	Timestamp     time.Time `json:"timestamp"`
	Symbol        string    `json:"symbol"`
	TradeAmount   float64   `json:"trade_amount"`
	PnL           float64   `json:"pnl"`
	PnLPercentage float64   `json:"pnl_percentage"`
	Fees          float64   `json:"fees"`
}

// IsWin reports whether the trade closed with a positive realized PnL.
// Break-even trades count as losses.
func (t Trade) IsWin() bool {
	return t.PnL > 0
}

// NetPnL returns realized PnL after fees.
func (t Trade) NetPnL() float64 {
	return t.PnL - t.Fees
}

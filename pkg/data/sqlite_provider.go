package data

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/quantlab/trade-analyzer/pkg/types"
)

// SQLiteProvider implements TradeProvider over the trading database written
// by the live platform. It expects a `trades` table with the standard record
// columns.
type SQLiteProvider struct{}

// NewSQLiteProvider creates a new SQLite trade provider.
func NewSQLiteProvider() *SQLiteProvider {
	return &SQLiteProvider{}
}

// GetName returns the name of the provider.
func (p *SQLiteProvider) GetName() string {
	return "SQLite Provider"
}

// LoadTrades loads the full trade history from the database file, ordered by
// close timestamp.
func (p *SQLiteProvider) LoadTrades(source string) ([]types.Trade, error) {
	db, err := sql.Open("sqlite3", source)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", source, err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT timestamp, symbol, trade_amount, pnl, pnl_percentage, fees
		FROM trades
		ORDER BY timestamp ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}
	defer rows.Close()

	var trades []types.Trade
	for rows.Next() {
		var (
			rawTS string
			t     types.Trade
		)
		if err := rows.Scan(&rawTS, &t.Symbol, &t.TradeAmount, &t.PnL, &t.PnLPercentage, &t.Fees); err != nil {
			return nil, fmt.Errorf("failed to scan trade row: %w", err)
		}
		t.Timestamp, err = parseJSONTimestamp(rawTS)
		if err != nil {
			return nil, fmt.Errorf("trade row: %w", err)
		}
		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trades: %w", err)
	}

	return trades, nil
}

// ValidateTrades checks the loaded history for structural problems.
func (p *SQLiteProvider) ValidateTrades(trades []types.Trade) error {
	return validateTrades(trades)
}

// SaveTrades writes a trade history into the database, creating the table if
// needed. Useful for seeding test fixtures and migrating CSV histories.
func (p *SQLiteProvider) SaveTrades(source string, trades []types.Trade) error {
	db, err := sql.Open("sqlite3", source)
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", source, err)
	}
	defer db.Close()

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS trades (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TEXT NOT NULL,
			symbol TEXT NOT NULL,
			trade_amount REAL NOT NULL,
			pnl REAL NOT NULL,
			pnl_percentage REAL NOT NULL,
			fees REAL NOT NULL
		)`); err != nil {
		return fmt.Errorf("failed to create trades table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO trades (timestamp, symbol, trade_amount, pnl, pnl_percentage, fees)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range trades {
		if _, err := stmt.Exec(
			t.Timestamp.Format(time.RFC3339),
			t.Symbol,
			t.TradeAmount,
			t.PnL,
			t.PnLPercentage,
			t.Fees,
		); err != nil {
			return fmt.Errorf("failed to insert trade: %w", err)
		}
	}

	return tx.Commit()
}

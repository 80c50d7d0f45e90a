package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/quantlab/trade-analyzer/internal/analytics"
	"github.com/quantlab/trade-analyzer/pkg/types"
)

// DefaultExcelReporter implements Excel output functionality
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

// WriteReportXLSX writes the full analysis report to an Excel workbook with
// Summary, Trades and Daily sheets.
func (r *DefaultExcelReporter) WriteReportXLSX(trades []types.Trade, metrics analytics.Metrics, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const summarySheet = "Summary"
	const tradesSheet = "Trades"
	const dailySheet = "Daily"

	fx.SetSheetName(fx.GetSheetName(0), summarySheet)
	fx.NewSheet(tradesSheet)
	fx.NewSheet(dailySheet)

	styles, err := r.createExcelStyles(fx)
	if err != nil {
		return err
	}

	if err := r.writeSummarySheet(fx, summarySheet, metrics, styles); err != nil {
		return err
	}

	if err := r.writeTradesSheet(fx, tradesSheet, trades, styles); err != nil {
		return err
	}

	if err := r.writeDailySheet(fx, dailySheet, trades, styles); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

// createExcelStyles creates all workbook styles
func (r *DefaultExcelReporter) createExcelStyles(fx *excelize.File) (ExcelStyles, error) {
	var styles ExcelStyles
	var err error

	// Header style - dark background with white text
	styles.HeaderStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"}, // Dark slate gray
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Currency style (right aligned, $ format)
	styles.CurrencyStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 7, // Currency format with $ symbol
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "E0E0E0", Style: 1},
			{Type: "right", Color: "E0E0E0", Style: 1},
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Percentage style (right aligned, % format)
	styles.PercentStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 9, // Percentage format with % symbol
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "E0E0E0", Style: 1},
			{Type: "right", Color: "E0E0E0", Style: 1},
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Base style for plain cells
	styles.BaseStyle, err = fx.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "left",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "E0E0E0", Style: 1},
			{Type: "right", Color: "E0E0E0", Style: 1},
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Green text for winning trades
	styles.WinStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Color: "008000",
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "E0E0E0", Style: 1},
			{Type: "right", Color: "E0E0E0", Style: 1},
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Red text for losing trades
	styles.LossStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Color: "FF0000",
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "E0E0E0", Style: 1},
			{Type: "right", Color: "E0E0E0", Style: 1},
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Summary style (blue background)
	styles.SummaryStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"4472C4"}, // Blue
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 2},
			{Type: "right", Color: "000000", Style: 2},
			{Type: "top", Color: "000000", Style: 2},
			{Type: "bottom", Color: "000000", Style: 2},
		},
	})
	if err != nil {
		return styles, err
	}

	return styles, nil
}

// writeSummarySheet writes the performance metrics overview
func (r *DefaultExcelReporter) writeSummarySheet(fx *excelize.File, sheet string, metrics analytics.Metrics, styles ExcelStyles) error {
	fx.SetColWidth(sheet, "A", "A", 24)
	fx.SetColWidth(sheet, "B", "B", 16)

	fx.SetCellValue(sheet, "A1", "Metric")
	fx.SetCellValue(sheet, "B1", "Value")
	fx.SetCellStyle(sheet, "A1", "B1", styles.HeaderStyle)

	type summaryRow struct {
		label string
		value interface{}
		style int
	}

	rows := []summaryRow{
		{"Total Trades", metrics.TotalTrades, styles.BaseStyle},
		{"Winning Trades", metrics.WinningTrades, styles.BaseStyle},
		{"Losing Trades", metrics.LosingTrades, styles.BaseStyle},
		{"Win Rate", metrics.WinRate / 100, styles.PercentStyle},
		{"Total PnL", metrics.TotalPnL, styles.CurrencyStyle},
		{"Total Fees", metrics.TotalFees, styles.CurrencyStyle},
		{"Net PnL", metrics.NetPnL, styles.CurrencyStyle},
		{"Total Return", metrics.TotalReturnPct / 100, styles.PercentStyle},
		{"Avg Win", metrics.AvgWin, styles.CurrencyStyle},
		{"Avg Loss", metrics.AvgLoss, styles.CurrencyStyle},
		{"Profit Factor", metrics.ProfitFactor, styles.BaseStyle},
		{"Max Win Streak", metrics.ConsecutiveWins, styles.BaseStyle},
		{"Max Loss Streak", metrics.ConsecutiveLosses, styles.BaseStyle},
		{"Max Drawdown", metrics.MaxDrawdown / 100, styles.PercentStyle},
		{"Sharpe Ratio", metrics.SharpeRatio, styles.BaseStyle},
	}

	for i, row := range rows {
		labelCell := fmt.Sprintf("A%d", i+2)
		valueCell := fmt.Sprintf("B%d", i+2)
		fx.SetCellValue(sheet, labelCell, row.label)
		fx.SetCellStyle(sheet, labelCell, labelCell, styles.BaseStyle)
		fx.SetCellValue(sheet, valueCell, row.value)
		fx.SetCellStyle(sheet, valueCell, valueCell, row.style)
	}

	return nil
}

// writeTradesSheet writes the full trade history
func (r *DefaultExcelReporter) writeTradesSheet(fx *excelize.File, sheet string, trades []types.Trade, styles ExcelStyles) error {
	fx.SetColWidth(sheet, "A", "A", 20) // Timestamp
	fx.SetColWidth(sheet, "B", "B", 12) // Symbol
	fx.SetColWidth(sheet, "C", "C", 14) // Amount
	fx.SetColWidth(sheet, "D", "D", 12) // PnL
	fx.SetColWidth(sheet, "E", "E", 10) // PnL %
	fx.SetColWidth(sheet, "F", "F", 10) // Fees

	headers := []string{"Timestamp", "Symbol", "Amount", "PnL", "PnL %", "Fees"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle)
	}

	for i, t := range trades {
		row := i + 2
		pnlStyle := styles.WinStyle
		if !t.IsWin() {
			pnlStyle = styles.LossStyle
		}

		values := []interface{}{
			t.Timestamp.Format("2006-01-02 15:04:05"),
			t.Symbol,
			t.TradeAmount,
			t.PnL,
			t.PnLPercentage / 100,
			t.Fees,
		}
		cellStyles := []int{
			styles.BaseStyle,
			styles.BaseStyle,
			styles.CurrencyStyle,
			pnlStyle,
			styles.PercentStyle,
			styles.CurrencyStyle,
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			fx.SetCellValue(sheet, cell, v)
			fx.SetCellStyle(sheet, cell, cell, cellStyles[col])
		}
	}

	return nil
}

// writeDailySheet writes one aggregate row per calendar day
func (r *DefaultExcelReporter) writeDailySheet(fx *excelize.File, sheet string, trades []types.Trade, styles ExcelStyles) error {
	fx.SetColWidth(sheet, "A", "A", 14) // Date
	fx.SetColWidth(sheet, "B", "B", 10) // Trades
	fx.SetColWidth(sheet, "C", "C", 12) // Win Rate
	fx.SetColWidth(sheet, "D", "D", 12) // PnL
	fx.SetColWidth(sheet, "E", "E", 10) // Fees
	fx.SetColWidth(sheet, "F", "F", 14) // Volume

	headers := []string{"Date", "Trades", "Win Rate", "PnL", "Fees", "Volume"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle)
	}

	// Distinct days in trade order
	seen := make(map[string]bool)
	row := 2
	for _, t := range trades {
		day := t.Timestamp.Format("2006-01-02")
		if seen[day] {
			continue
		}
		seen[day] = true

		report := analytics.ReportForDay(trades, t.Timestamp)

		pnlStyle := styles.WinStyle
		if report.TotalPnL <= 0 {
			pnlStyle = styles.LossStyle
		}

		values := []interface{}{
			report.Date,
			report.TotalTrades,
			report.WinRate / 100,
			report.TotalPnL,
			report.TotalFees,
			report.TotalVolume,
		}
		cellStyles := []int{
			styles.BaseStyle,
			styles.BaseStyle,
			styles.PercentStyle,
			pnlStyle,
			styles.CurrencyStyle,
			styles.CurrencyStyle,
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			fx.SetCellValue(sheet, cell, v)
			fx.SetCellStyle(sheet, cell, cell, cellStyles[col])
		}
		row++
	}

	return nil
}

// Package-level convenience function
func WriteReportXLSX(trades []types.Trade, metrics analytics.Metrics, path string) error {
	reporter := NewDefaultExcelReporter()
	return reporter.WriteReportXLSX(trades, metrics, path)
}

package reporting

import (
	"github.com/quantlab/trade-analyzer/internal/analytics"
	"github.com/quantlab/trade-analyzer/internal/risk"
	"github.com/quantlab/trade-analyzer/pkg/types"
)

// Package reporting provides output generation for trade analysis results

// ConsoleReporter defines interface for console output
type ConsoleReporter interface {
	OutputMetrics(metrics analytics.Metrics)
	OutputMetricsWithContext(metrics analytics.Metrics, symbol, period string)
	OutputSymbolBreakdown(stats []analytics.SymbolStats)
	OutputDailyReport(report analytics.DailyReport)
	OutputWarnings(warnings risk.PositionWarnings)
	OutputEmergency(conditions risk.EmergencyConditions)
}

// FileReporter defines interface for file output
type FileReporter interface {
	WriteTradesCSV(trades []types.Trade, metrics analytics.Metrics, path string) error
	WriteReportXLSX(trades []types.Trade, metrics analytics.Metrics, path string) error
	WriteMetricsJSON(metrics analytics.Metrics, path string) error
}

// PathManager defines interface for output path management
type PathManager interface {
	GetDefaultOutputDir(symbol, period string) string
	EnsureDirectoryExists(path string) error
}

// Reporter combines all reporting interfaces
type Reporter interface {
	ConsoleReporter
	FileReporter
	PathManager
}

// DefaultReporter bundles the console, file and path implementations behind
// the combined Reporter interface.
type DefaultReporter struct {
	*DefaultConsoleReporter
	*DefaultCSVReporter
	*DefaultExcelReporter
	*DefaultJSONFormatter
	*DefaultPathManager
}

var _ Reporter = (*DefaultReporter)(nil)

// NewDefaultReporter creates a reporter with all default implementations.
func NewDefaultReporter() *DefaultReporter {
	return &DefaultReporter{
		DefaultConsoleReporter: NewDefaultConsoleReporter(),
		DefaultCSVReporter:     NewDefaultCSVReporter(),
		DefaultExcelReporter:   NewDefaultExcelReporter(),
		DefaultJSONFormatter:   NewDefaultJSONFormatter(),
		DefaultPathManager:     NewDefaultPathManager(),
	}
}

// ExcelStyles holds Excel formatting styles
type ExcelStyles struct {
	HeaderStyle   int
	CurrencyStyle int
	PercentStyle  int
	BaseStyle     int
	WinStyle      int
	LossStyle     int
	SummaryStyle  int
}

// ReportingConfig holds configuration for reporting
type ReportingConfig struct {
	EnableConsole   bool
	EnableFiles     bool
	OutputDirectory string
	ExcelEnabled    bool
	CSVEnabled      bool
	JSONEnabled     bool
}

package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/quantlab/trade-analyzer/internal/analytics"
)

// DefaultJSONFormatter implements JSON output functionality
type DefaultJSONFormatter struct{}

// NewDefaultJSONFormatter creates a new JSON formatter
func NewDefaultJSONFormatter() *DefaultJSONFormatter {
	return &DefaultJSONFormatter{}
}

// ReportDocument is the JSON shape of a full analysis report.
type ReportDocument struct {
	GeneratedAt string                  `json:"generated_at"`
	Symbol      string                  `json:"symbol,omitempty"`
	Period      string                  `json:"period,omitempty"`
	Metrics     analytics.Metrics       `json:"metrics"`
	Symbols     []analytics.SymbolStats `json:"symbols,omitempty"`
	Comparison  *analytics.Comparison   `json:"backtest_comparison,omitempty"`
}

// FormatMetrics formats performance metrics as indented JSON bytes
func (f *DefaultJSONFormatter) FormatMetrics(metrics analytics.Metrics) ([]byte, error) {
	return json.MarshalIndent(metrics, "", "  ")
}

// PrintMetrics prints performance metrics as JSON to console
func (f *DefaultJSONFormatter) PrintMetrics(metrics analytics.Metrics) {
	data, _ := json.MarshalIndent(metrics, "", "  ")
	fmt.Println(string(data))
}

// WriteMetricsJSON writes performance metrics to a JSON file
func (f *DefaultJSONFormatter) WriteMetricsJSON(metrics analytics.Metrics, path string) error {
	doc := ReportDocument{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Metrics:     metrics,
	}
	return writeJSONFile(doc, path)
}

// WriteReportJSON writes a full report document to a JSON file
func WriteReportJSON(doc ReportDocument, path string) error {
	if doc.GeneratedAt == "" {
		doc.GeneratedAt = time.Now().Format(time.RFC3339)
	}
	return writeJSONFile(doc, path)
}

// WriteMetricsJSON is the package-level convenience function
func WriteMetricsJSON(metrics analytics.Metrics, path string) error {
	formatter := NewDefaultJSONFormatter()
	return formatter.WriteMetricsJSON(metrics, path)
}

func writeJSONFile(v interface{}, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0644)
}

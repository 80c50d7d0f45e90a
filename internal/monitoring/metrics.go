package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quantlab/trade-analyzer/internal/analytics"
)

var (
	// Performance metrics
	totalTrades = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "trade_analyzer_total_trades",
			Help: "Number of trades in the analyzed history",
		},
	)

	netPnL = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "trade_analyzer_net_pnl",
			Help: "Net PnL of the analyzed history after fees",
		},
	)

	winRate = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "trade_analyzer_win_rate",
			Help: "Win rate of the analyzed history in percent",
		},
	)

	profitFactor = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "trade_analyzer_profit_factor",
			Help: "Ratio of average win to average loss",
		},
	)

	maxDrawdown = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "trade_analyzer_max_drawdown",
			Help: "Maximum drawdown of the cumulative return curve in percent",
		},
	)

	sharpeRatio = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "trade_analyzer_sharpe_ratio",
			Help: "Annualized Sharpe ratio over daily PnL",
		},
	)

	// Per-symbol metrics
	symbolPnL = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "trade_analyzer_symbol_pnl",
			Help: "Total PnL per traded symbol",
		},
		[]string{"symbol"},
	)

	// Refresh metrics
	refreshesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trade_analyzer_refreshes_total",
			Help: "Total number of trade history refreshes",
		},
		[]string{"status"},
	)
)

func init() {
	// Register metrics
	prometheus.MustRegister(totalTrades)
	prometheus.MustRegister(netPnL)
	prometheus.MustRegister(winRate)
	prometheus.MustRegister(profitFactor)
	prometheus.MustRegister(maxDrawdown)
	prometheus.MustRegister(sharpeRatio)
	prometheus.MustRegister(symbolPnL)
	prometheus.MustRegister(refreshesTotal)
}

// MetricsHandler handles Prometheus metrics endpoint
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// PublishMetrics pushes the computed performance metrics to the gauges
func PublishMetrics(metrics analytics.Metrics) {
	totalTrades.Set(float64(metrics.TotalTrades))
	netPnL.Set(metrics.NetPnL)
	winRate.Set(metrics.WinRate)
	profitFactor.Set(metrics.ProfitFactor)
	maxDrawdown.Set(metrics.MaxDrawdown)
	sharpeRatio.Set(metrics.SharpeRatio)
}

// PublishSymbolStats pushes per-symbol PnL to the gauges
func PublishSymbolStats(stats []analytics.SymbolStats) {
	for _, s := range stats {
		symbolPnL.WithLabelValues(s.Symbol).Set(s.TotalPnL)
	}
}

// RecordRefresh records the outcome of a trade history refresh
func RecordRefresh(status string) {
	refreshesTotal.WithLabelValues(status).Inc()
}

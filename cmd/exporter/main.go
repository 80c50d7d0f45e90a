package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/quantlab/trade-analyzer/internal/analytics"
	"github.com/quantlab/trade-analyzer/internal/config"
	"github.com/quantlab/trade-analyzer/internal/monitoring"
	datamanager "github.com/quantlab/trade-analyzer/pkg/data"
)

const (
	AppName    = "Trade Metrics Exporter"
	AppVersion = "1.0.0"
)

func main() {
	dataFile := flag.String("data", "", "Path to trade history file (.csv, .json, .db)")
	listenAddr := flag.String("listen", ":9090", "Address for the metrics HTTP server")
	refreshEvery := flag.Duration("refresh", time.Minute, "How often to re-read the trade history")
	envFile := flag.String("env", ".env", "Environment file path")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}

	fmt.Printf("🎯 %s v%s\n", strings.ToUpper(AppName), AppVersion)
	fmt.Printf("%s\n\n", strings.Repeat("=", 50))

	if err := config.LoadEnvFile(*envFile); err != nil {
		log.Printf("⚠️  %v", err)
	}
	cfg := config.LoadFromEnv()
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	health := monitoring.NewHealthChecker()

	mux := http.NewServeMux()
	mux.Handle("/metrics", monitoring.NewMetricsHandler())
	mux.Handle("/healthz", health)

	server := &http.Server{
		Addr:    *listenAddr,
		Handler: mux,
	}

	go func() {
		log.Printf("📊 Metrics server listening on %s", *listenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Metrics server error: %v", err)
		}
	}()

	// First refresh immediately, then on the ticker
	refresh(cfg, health)

	ticker := time.NewTicker(*refreshEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("🛑 Shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Printf("⚠️  Server shutdown error: %v", err)
			}
			return
		case <-ticker.C:
			refresh(cfg, health)
		}
	}
}

// refresh re-reads the trade history and republishes all gauges.
func refresh(cfg config.Config, health *monitoring.HealthChecker) {
	provider := providerForFile(cfg.DataFile)

	trades, err := provider.LoadTrades(cfg.DataFile)
	if err != nil {
		log.Printf("⚠️  Refresh failed: %v", err)
		monitoring.RecordRefresh("error")
		health.MarkError(err)
		return
	}

	filter := datamanager.NewDefaultTradeFilter()
	trades = filter.SortByTimestamp(trades)

	metrics := analytics.Compute(trades, cfg.InitialCapital)
	monitoring.PublishMetrics(metrics)
	monitoring.PublishSymbolStats(analytics.BySymbol(trades))
	monitoring.RecordRefresh("success")
	health.MarkRefresh(len(trades))

	log.Printf("📊 Refreshed %d trades (net PnL $%.2f)", metrics.TotalTrades, metrics.NetPnL)
}

func providerForFile(path string) datamanager.TradeProvider {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return datamanager.NewJSONProvider()
	case ".db", ".sqlite", ".sqlite3":
		return datamanager.NewSQLiteProvider()
	default:
		return datamanager.NewCSVProvider()
	}
}

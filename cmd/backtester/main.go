package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Zaid2044/FinSight-Trading-Backtester/internal/backtest"
	"github.com/Zaid2044/FinSight-Trading-Backtester/internal/config"
	"github.com/Zaid2044/FinSight-Trading-Backtester/internal/marketdata"
	"github.com/Zaid2044/FinSight-Trading-Backtester/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalChan
		log.Printf("shutdown signal received")
		cancel()
	}()

	log.Printf("fetching %s daily bars %s to %s feed=%s",
		cfg.Symbol, cfg.Start.Format("2006-01-02"), cfg.End.Format("2006-01-02"), cfg.Feed)
	client := marketdata.New(cfg.APIKey, cfg.APISecret, cfg.Feed, cfg.DataBaseURL)
	bars, err := client.DailyBars(ctx, cfg.Symbol, cfg.Start, cfg.End)
	if err != nil {
		log.Fatalf("market data error: %v", err)
	}

	log.Printf("running backtest sma=%d/%d capital=%.2f days=%d",
		cfg.ShortWindow, cfg.LongWindow, cfg.InitialCapital, len(bars))
	result, err := backtest.Run(bars, cfg.Engine())
	if err != nil {
		log.Fatalf("backtest error: %v", err)
	}

	report.PrintSummary(os.Stdout, cfg, result.Summary)

	if err := backtest.WriteCSV(result.Days, cfg.LedgerPath); err != nil {
		log.Fatalf("ledger write error: %v", err)
	}
	log.Printf("ledger saved to %s", cfg.LedgerPath)

	results, err := report.NewResultsWriter(cfg.ResultsPath)
	if err != nil {
		log.Fatalf("results log error: %v", err)
	}
	defer func() {
		if err := results.Close(); err != nil {
			log.Printf("failed to close results log: %v", err)
		}
	}()
	if err := results.Append(cfg, result); err != nil {
		log.Fatalf("results write error: %v", err)
	}
	log.Printf("run recorded in %s", cfg.ResultsPath)
}

package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Zaid2044/FinSight-Trading-Backtester/internal/backtest"
	"github.com/Zaid2044/FinSight-Trading-Backtester/internal/config"
)

// RunRecord is one completed backtest in the NDJSON results log.
type RunRecord struct {
	RunID             string    `json:"run_id"`
	Timestamp         time.Time `json:"timestamp"`
	Symbol            string    `json:"symbol"`
	Start             string    `json:"start"`
	End               string    `json:"end"`
	ShortWindow       int       `json:"short_window"`
	LongWindow        int       `json:"long_window"`
	InitialCapital    float64   `json:"initial_capital"`
	Days              int       `json:"days"`
	Trades            int       `json:"trades"`
	FinalValue        string    `json:"final_value"`
	StrategyReturnPct float64   `json:"strategy_return_pct"`
	BuyHoldValue      string    `json:"buy_hold_value"`
	BuyHoldReturnPct  float64   `json:"buy_hold_return_pct"`
}

// ResultsWriter appends one record per run, so repeated runs and parameter
// sweeps accumulate into a single comparable log.
type ResultsWriter struct {
	file   *os.File
	writer *bufio.Writer
	mu     sync.Mutex
}

func NewResultsWriter(path string) (*ResultsWriter, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open results log: %w", err)
	}
	return &ResultsWriter{
		file:   file,
		writer: bufio.NewWriter(file),
	}, nil
}

func (r *ResultsWriter) Append(cfg config.Config, res backtest.Result) error {
	record := RunRecord{
		RunID:             uuid.NewString(),
		Timestamp:         time.Now().UTC(),
		Symbol:            cfg.Symbol,
		Start:             cfg.Start.Format("2006-01-02"),
		End:               cfg.End.Format("2006-01-02"),
		ShortWindow:       cfg.ShortWindow,
		LongWindow:        cfg.LongWindow,
		InitialCapital:    cfg.InitialCapital,
		Days:              len(res.Days),
		Trades:            res.Summary.Trades,
		FinalValue:        res.Summary.FinalValue.StringFixed(2),
		StrategyReturnPct: res.Summary.StrategyReturnPct,
		BuyHoldValue:      res.Summary.BuyHoldValue.StringFixed(2),
		BuyHoldReturnPct:  res.Summary.BuyHoldReturnPct,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal run record: %w", err)
	}
	if _, err := r.writer.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("write run record: %w", err)
	}
	return r.writer.Flush()
}

func (r *ResultsWriter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.writer.Flush(); err != nil {
		_ = r.file.Close()
		return err
	}
	return r.file.Close()
}

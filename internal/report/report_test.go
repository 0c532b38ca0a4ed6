package report

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Zaid2044/FinSight-Trading-Backtester/internal/backtest"
	"github.com/Zaid2044/FinSight-Trading-Backtester/internal/config"
)

func sampleConfig() config.Config {
	return config.Config{
		Symbol:         "TSLA",
		Start:          time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		End:            time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		ShortWindow:    50,
		LongWindow:     200,
		InitialCapital: 100000,
	}
}

func sampleResult() backtest.Result {
	return backtest.Result{
		Days: make([]backtest.DayState, 1006),
		Summary: backtest.Summary{
			FinalValue:        decimal.NewFromFloat(154321.5),
			StrategyReturnPct: 54.32,
			BuyHoldValue:      decimal.NewFromFloat(181234.25),
			BuyHoldReturnPct:  81.23,
			Trades:            4,
		},
	}
}

func TestPrintSummaryLayout(t *testing.T) {
	var sb strings.Builder
	PrintSummary(&sb, sampleConfig(), sampleResult().Summary)
	out := sb.String()

	for _, want := range []string{
		"SMA Crossover (50/200) on TSLA",
		"Period: 2020-01-01 to 2023-12-31",
		"Initial Capital:       $100000.00",
		"Final Portfolio Value: $154321.50",
		"Total Return:          54.32%",
		"Buy and Hold",
		"$181234.25",
		"81.23%",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestResultsWriterAppendsNDJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.ndjson")
	w, err := NewResultsWriter(path)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}

	cfg := sampleConfig()
	res := sampleResult()
	if err := w.Append(cfg, res); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := w.Append(cfg, res); err != nil {
		t.Fatalf("second append: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open results: %v", err)
	}
	defer f.Close()

	var records []RunRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec RunRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("invalid NDJSON line: %v", err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan results: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	first := records[0]
	if first.RunID == "" || first.RunID == records[1].RunID {
		t.Fatalf("expected distinct non-empty run IDs, got %q and %q", first.RunID, records[1].RunID)
	}
	if first.Symbol != "TSLA" || first.ShortWindow != 50 || first.LongWindow != 200 {
		t.Fatalf("config echo wrong: %+v", first)
	}
	if first.Days != 1006 || first.Trades != 4 {
		t.Fatalf("result echo wrong: %+v", first)
	}
	if first.FinalValue != "154321.50" {
		t.Fatalf("expected formatted final value, got %q", first.FinalValue)
	}
}

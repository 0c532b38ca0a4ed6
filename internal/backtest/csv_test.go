package backtest

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteCSVLeavesWarmupCellsEmpty(t *testing.T) {
	closes := []float64{10, 11, 12, 13, 14, 15}
	res, err := Run(seriesFrom(closes), testConfig(2, 4, 1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "ledger.csv")
	if err := WriteCSV(res.Days, path); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != len(closes)+1 {
		t.Fatalf("expected header plus %d rows, got %d", len(closes), len(rows))
	}
	if rows[0][0] != "date" || rows[0][7] != "total_value" {
		t.Fatalf("unexpected header: %v", rows[0])
	}

	// Day 0: neither average is ready. Day 4: both are.
	if rows[1][2] != "" || rows[1][3] != "" {
		t.Fatalf("expected empty warmup cells, got %q/%q", rows[1][2], rows[1][3])
	}
	if rows[5][2] == "" || rows[5][3] == "" {
		t.Fatalf("expected populated averages on day 4, got %q/%q", rows[5][2], rows[5][3])
	}
}

package backtest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV saves the per-day ledger. Averages still in warmup are written
// as empty cells so a renderer cannot mistake them for zero.
func WriteCSV(days []DayState, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create ledger: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{
		"date", "close", "short_avg", "long_avg", "transition", "cash", "shares", "total_value",
	}); err != nil {
		return fmt.Errorf("write ledger header: %w", err)
	}
	for _, d := range days {
		record := []string{
			d.Date.Format("2006-01-02"),
			formatF(d.Close),
			"",
			"",
			d.Transition.String(),
			d.Cash.String(),
			d.Shares.String(),
			d.TotalValue.String(),
		}
		if d.ShortOK {
			record[2] = formatF(d.ShortAvg)
		}
		if d.LongOK {
			record[3] = formatF(d.LongAvg)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write ledger row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func formatF(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

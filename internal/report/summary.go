package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Zaid2044/FinSight-Trading-Backtester/internal/backtest"
	"github.com/Zaid2044/FinSight-Trading-Backtester/internal/config"
)

// PrintSummary writes the human-readable performance block for one run.
func PrintSummary(w io.Writer, cfg config.Config, sum backtest.Summary) {
	rule := strings.Repeat("-", 35)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Backtest Performance ---")
	fmt.Fprintf(w, "Strategy: SMA Crossover (%d/%d) on %s\n", cfg.ShortWindow, cfg.LongWindow, cfg.Symbol)
	fmt.Fprintf(w, "Period: %s to %s\n", cfg.Start.Format("2006-01-02"), cfg.End.Format("2006-01-02"))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Initial Capital:       $%.2f\n", cfg.InitialCapital)
	fmt.Fprintf(w, "Final Portfolio Value: $%s\n", sum.FinalValue.StringFixed(2))
	fmt.Fprintf(w, "Total Return:          %.2f%%\n", sum.StrategyReturnPct)
	fmt.Fprintf(w, "Trades Executed:       %d\n", sum.Trades)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Benchmark: Buy and Hold")
	fmt.Fprintf(w, "Final Portfolio Value: $%s\n", sum.BuyHoldValue.StringFixed(2))
	fmt.Fprintf(w, "Total Return:          %.2f%%\n", sum.BuyHoldReturnPct)
	fmt.Fprintln(w, rule)
}

package backtest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Zaid2044/FinSight-Trading-Backtester/internal/signal"
)

// Config holds the strategy parameters for a single run.
type Config struct {
	ShortWindow    int
	LongWindow     int
	InitialCapital decimal.Decimal
}

// DayState is one day of the portfolio ledger. Cash and Shares are decimal
// so the value identity cash + shares*close == total holds exactly; Total
// is always recomputed from them, never carried independently.
type DayState struct {
	Date       time.Time
	Close      float64
	ShortAvg   float64
	LongAvg    float64
	ShortOK    bool
	LongOK     bool
	Transition signal.Transition
	Cash       decimal.Decimal
	Shares     decimal.Decimal
	TotalValue decimal.Decimal
}

// Summary compares the strategy against a buy-and-hold benchmark over the
// same period.
type Summary struct {
	FinalValue        decimal.Decimal
	StrategyReturnPct float64
	BuyHoldValue      decimal.Decimal
	BuyHoldReturnPct  float64
	Trades            int
}

// Result is the full output surface handed to reporting.
type Result struct {
	Days    []DayState
	Summary Summary
}

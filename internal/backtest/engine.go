package backtest

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/Zaid2044/FinSight-Trading-Backtester/internal/series"
	"github.com/Zaid2044/FinSight-Trading-Backtester/internal/signal"
)

var (
	ErrEmptySeries         = errors.New("empty price series")
	ErrInsufficientHistory = errors.New("insufficient history")
	ErrInvalidCapital      = errors.New("invalid initial capital")

	// ErrInvalidWindow re-exports the generator's sentinel so callers can
	// match window failures without importing the signal package.
	ErrInvalidWindow = signal.ErrInvalidWindow
)

var hundred = decimal.NewFromInt(100)

// Validate checks the strategy parameters before any computation starts.
func (c Config) Validate() error {
	if c.InitialCapital.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: %s", ErrInvalidCapital, c.InitialCapital)
	}
	if c.ShortWindow <= 0 || c.LongWindow <= 0 {
		return fmt.Errorf("%w: windows must be positive, got %d/%d", ErrInvalidWindow, c.ShortWindow, c.LongWindow)
	}
	if c.ShortWindow >= c.LongWindow {
		return fmt.Errorf("%w: short window %d must be below long window %d", ErrInvalidWindow, c.ShortWindow, c.LongWindow)
	}
	return nil
}

// Run executes one full backtest: signal generation, then the sequential
// all-in/all-out state machine, then summary metrics. It either returns a
// complete result or an error; no partial ledger is ever produced.
func Run(s series.Series, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if len(s) == 0 {
		return Result{}, ErrEmptySeries
	}
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	if len(s) < cfg.LongWindow {
		return Result{}, fmt.Errorf("%w: %d days, long window %d", ErrInsufficientHistory, len(s), cfg.LongWindow)
	}

	points, err := signal.Generate(s, cfg.ShortWindow, cfg.LongWindow)
	if err != nil {
		return Result{}, err
	}

	days := make([]DayState, 0, len(s))
	cash := cfg.InitialCapital
	shares := decimal.Zero
	trades := 0

	for i, p := range s {
		pt := points[i]
		close := decimal.NewFromFloat(p.Close)

		// Trades execute at the current day's close; day 0 never trades.
		if i > 0 {
			switch pt.Transition {
			case signal.Enter:
				if cash.IsPositive() {
					shares = shares.Add(cash.Div(close))
					cash = decimal.Zero
					trades++
					slog.Debug("enter", "date", p.Date.Format("2006-01-02"), "close", p.Close, "shares", shares)
				}
			case signal.Exit:
				if shares.IsPositive() {
					cash = cash.Add(shares.Mul(close))
					shares = decimal.Zero
					trades++
					slog.Debug("exit", "date", p.Date.Format("2006-01-02"), "close", p.Close, "cash", cash)
				}
			}
		}

		days = append(days, DayState{
			Date:       p.Date,
			Close:      p.Close,
			ShortAvg:   pt.ShortAvg,
			LongAvg:    pt.LongAvg,
			ShortOK:    pt.ShortOK,
			LongOK:     pt.LongOK,
			Transition: pt.Transition,
			Cash:       cash,
			Shares:     shares,
			TotalValue: cash.Add(shares.Mul(close)),
		})
	}

	return Result{
		Days:    days,
		Summary: summarize(s, cfg, days, trades),
	}, nil
}

func summarize(s series.Series, cfg Config, days []DayState, trades int) Summary {
	finalValue := days[len(days)-1].TotalValue

	firstClose := decimal.NewFromFloat(s.First().Close)
	lastClose := decimal.NewFromFloat(s.Last().Close)
	buyHoldValue := cfg.InitialCapital.Mul(lastClose).Div(firstClose)

	return Summary{
		FinalValue:        finalValue,
		StrategyReturnPct: returnPct(finalValue, cfg.InitialCapital),
		BuyHoldValue:      buyHoldValue,
		BuyHoldReturnPct:  returnPct(buyHoldValue, cfg.InitialCapital),
		Trades:            trades,
	}
}

func returnPct(final, initial decimal.Decimal) float64 {
	pct, _ := final.Div(initial).Sub(decimal.NewFromInt(1)).Mul(hundred).Float64()
	return pct
}

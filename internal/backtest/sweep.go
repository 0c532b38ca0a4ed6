package backtest

import (
	"sync"

	"github.com/Zaid2044/FinSight-Trading-Backtester/internal/series"
)

// SweepResult pairs one parameter set with its run outcome.
type SweepResult struct {
	Config Config
	Result Result
	Err    error
}

// Sweep runs one backtest per config concurrently. The series is shared
// read-only; every run owns its own state, so runs never interact. Results
// come back in input order.
func Sweep(s series.Series, configs []Config) []SweepResult {
	results := make([]SweepResult, len(configs))
	var wg sync.WaitGroup
	for i, cfg := range configs {
		wg.Add(1)
		go func(i int, cfg Config) {
			defer wg.Done()
			res, err := Run(s, cfg)
			results[i] = SweepResult{Config: cfg, Result: res, Err: err}
		}(i, cfg)
	}
	wg.Wait()
	return results
}

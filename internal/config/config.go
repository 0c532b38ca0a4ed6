package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"

	"github.com/Zaid2044/FinSight-Trading-Backtester/internal/backtest"
)

type Config struct {
	Symbol         string
	Start          time.Time
	End            time.Time
	Feed           string
	ShortWindow    int
	LongWindow     int
	InitialCapital float64
	LedgerPath     string
	ResultsPath    string
	DataBaseURL    string
	APIKey         string
	APISecret      string
}

// fileConfig is the TOML shape; only fields that make sense to persist.
type fileConfig struct {
	Symbol         string  `toml:"symbol"`
	Start          string  `toml:"start"`
	End            string  `toml:"end"`
	Feed           string  `toml:"feed"`
	ShortWindow    int     `toml:"short_window"`
	LongWindow     int     `toml:"long_window"`
	InitialCapital float64 `toml:"initial_capital"`
	LedgerPath     string  `toml:"ledger_path"`
	ResultsPath    string  `toml:"results_path"`
}

const dateLayout = "2006-01-02"

// Load resolves the run configuration. Precedence: CLI flags, then the
// TOML config file, then defaults. Credentials come from the environment
// only, bootstrapped from .env when present.
func Load() (Config, error) {
	var cfg Config
	var configPath, start, end string

	loadDotEnvIfPresent(".env")

	flag.StringVar(&configPath, "config", "", "path to TOML config file")
	flag.StringVar(&cfg.Symbol, "symbol", "TSLA", "ticker symbol to backtest")
	flag.StringVar(&start, "start", "2020-01-01", "period start (YYYY-MM-DD)")
	flag.StringVar(&end, "end", "2023-12-31", "period end (YYYY-MM-DD)")
	flag.StringVar(&cfg.Feed, "feed", "iex", "market data feed: iex or sip")
	flag.IntVar(&cfg.ShortWindow, "short-window", 50, "short SMA window in trading days")
	flag.IntVar(&cfg.LongWindow, "long-window", 200, "long SMA window in trading days")
	flag.Float64Var(&cfg.InitialCapital, "initial-capital", 100000, "starting cash")
	flag.StringVar(&cfg.LedgerPath, "ledger-path", "ledger.csv", "path to per-day ledger CSV")
	flag.StringVar(&cfg.ResultsPath, "results-path", "results.ndjson", "path to run results log")
	flag.StringVar(&cfg.DataBaseURL, "data-base-url", "", "market data base URL override")
	flag.Parse()

	if configPath != "" {
		if err := applyFile(configPath, &cfg, &start, &end); err != nil {
			return cfg, err
		}
	}

	cfg.APIKey = os.Getenv("APCA_API_KEY_ID")
	cfg.APISecret = os.Getenv("APCA_API_SECRET_KEY")

	var err error
	if cfg.Start, err = time.Parse(dateLayout, start); err != nil {
		return cfg, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	if cfg.End, err = time.Parse(dateLayout, end); err != nil {
		return cfg, fmt.Errorf("invalid end date %q: %w", end, err)
	}

	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyFile fills in values from the TOML file without overriding flags
// the user set explicitly on the command line.
func applyFile(path string, cfg *Config, start, end *string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if fc.Symbol != "" && !set["symbol"] {
		cfg.Symbol = fc.Symbol
	}
	if fc.Start != "" && !set["start"] {
		*start = fc.Start
	}
	if fc.End != "" && !set["end"] {
		*end = fc.End
	}
	if fc.Feed != "" && !set["feed"] {
		cfg.Feed = fc.Feed
	}
	if fc.ShortWindow != 0 && !set["short-window"] {
		cfg.ShortWindow = fc.ShortWindow
	}
	if fc.LongWindow != 0 && !set["long-window"] {
		cfg.LongWindow = fc.LongWindow
	}
	if fc.InitialCapital != 0 && !set["initial-capital"] {
		cfg.InitialCapital = fc.InitialCapital
	}
	if fc.LedgerPath != "" && !set["ledger-path"] {
		cfg.LedgerPath = fc.LedgerPath
	}
	if fc.ResultsPath != "" && !set["results-path"] {
		cfg.ResultsPath = fc.ResultsPath
	}
	return nil
}

// Engine converts the run configuration into strategy parameters.
func (c Config) Engine() backtest.Config {
	return backtest.Config{
		ShortWindow:    c.ShortWindow,
		LongWindow:     c.LongWindow,
		InitialCapital: decimal.NewFromFloat(c.InitialCapital),
	}
}

func validate(cfg Config) error {
	if cfg.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if cfg.Feed != "iex" && cfg.Feed != "sip" {
		return fmt.Errorf("invalid feed: %s", cfg.Feed)
	}
	if !cfg.Start.Before(cfg.End) {
		return fmt.Errorf("start %s must be before end %s",
			cfg.Start.Format(dateLayout), cfg.End.Format(dateLayout))
	}
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return fmt.Errorf("APCA_API_KEY_ID and APCA_API_SECRET_KEY are required")
	}
	// Window and capital rules live with the engine; fail here, before any
	// network call, rather than after fetching a series.
	return cfg.Engine().Validate()
}

package marketdata

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	alpacamd "github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"github.com/Zaid2044/FinSight-Trading-Backtester/internal/series"
)

// Client fetches historical daily bars from Alpaca. It is the only
// component that talks to the outside world; everything downstream sees a
// validated series.Series.
type Client struct {
	client *alpacamd.Client
	feed   alpacamd.Feed
}

func New(apiKey, apiSecret, feed, baseURL string) *Client {
	opts := alpacamd.ClientOpts{
		APIKey:    apiKey,
		APISecret: apiSecret,
		BaseURL:   baseURL,
	}
	return &Client{
		client: alpacamd.NewClient(opts),
		feed:   parseFeed(feed),
	}
}

// DailyBars returns split- and dividend-adjusted daily closes for the
// period, normalized to day-granular UTC dates and checked against the
// input contract before anything simulates on them.
func (c *Client) DailyBars(ctx context.Context, symbol string, start, end time.Time) (series.Series, error) {
	req := alpacamd.GetBarsRequest{
		TimeFrame:  alpacamd.OneDay,
		Adjustment: alpacamd.All,
		Start:      start,
		End:        end,
		Feed:       c.feed,
	}

	bars, err := c.client.GetBars(symbol, req)
	if err != nil {
		slog.Error("fetch daily bars failed", "symbol", symbol, "error", err)
		return nil, fmt.Errorf("fetch daily bars for %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: no bars for %s between %s and %s",
			series.ErrInvalidInput, symbol, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	s := Normalize(bars)
	if err := s.Validate(); err != nil {
		return nil, err
	}

	slog.Info("daily bars fetched", "symbol", symbol, "bars", len(s),
		"first", s.First().Date.Format("2006-01-02"), "last", s.Last().Date.Format("2006-01-02"))
	return s, nil
}

// Normalize converts raw bars into the engine's series, truncating bar
// timestamps to the trading day in UTC.
func Normalize(bars []alpacamd.Bar) series.Series {
	s := make(series.Series, 0, len(bars))
	for _, bar := range bars {
		ts := bar.Timestamp.UTC()
		s = append(s, series.PricePoint{
			Date:  time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
			Close: bar.Close,
		})
	}
	return s
}

func parseFeed(feed string) alpacamd.Feed {
	switch feed {
	case "sip":
		return alpacamd.SIP
	default:
		return alpacamd.IEX
	}
}

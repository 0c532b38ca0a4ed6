package signal

import (
	"errors"
	"fmt"

	"github.com/Zaid2044/FinSight-Trading-Backtester/internal/series"
)

var ErrInvalidWindow = errors.New("invalid window")

// Transition marks the exact day a crossover happens.
type Transition int

const (
	None Transition = iota
	Enter
	Exit
)

func (t Transition) String() string {
	switch t {
	case Enter:
		return "ENTER"
	case Exit:
		return "EXIT"
	default:
		return "NONE"
	}
}

// Point is the derived signal state for one trading day, aligned 1:1 with
// the price series. The OK flags distinguish "not enough history yet" from
// a real zero; warmup must never read as a value.
type Point struct {
	ShortAvg   float64
	LongAvg    float64
	ShortOK    bool
	LongOK     bool
	Trend      bool
	TrendOK    bool
	Transition Transition
}

// Generate computes both moving averages, the trend (short above long) and
// the Enter/Exit transitions for every day of the series. It is a pure
// function of its inputs; each day's point depends only on closes up to and
// including that day.
func Generate(s series.Series, shortWindow, longWindow int) ([]Point, error) {
	if shortWindow <= 0 || longWindow <= 0 {
		return nil, fmt.Errorf("%w: windows must be positive, got %d/%d", ErrInvalidWindow, shortWindow, longWindow)
	}
	if shortWindow >= longWindow {
		return nil, fmt.Errorf("%w: short window %d must be below long window %d", ErrInvalidWindow, shortWindow, longWindow)
	}
	if longWindow > len(s) {
		return nil, fmt.Errorf("%w: long window %d exceeds series length %d", ErrInvalidWindow, longWindow, len(s))
	}

	points := make([]Point, len(s))
	short := newRollingWindow(shortWindow)
	long := newRollingWindow(longWindow)

	prevTrend := false
	prevTrendOK := false
	for i, p := range s {
		short.Add(p.Close)
		long.Add(p.Close)

		pt := Point{}
		pt.ShortAvg, pt.ShortOK = short.Mean()
		pt.LongAvg, pt.LongOK = long.Mean()
		if pt.ShortOK && pt.LongOK {
			pt.Trend = pt.ShortAvg > pt.LongAvg
			pt.TrendOK = true
		}

		// A transition needs a known trend on the previous day; the first
		// day and the first defined-trend day never trade.
		if i > 0 && prevTrendOK && pt.TrendOK {
			if !prevTrend && pt.Trend {
				pt.Transition = Enter
			} else if prevTrend && !pt.Trend {
				pt.Transition = Exit
			}
		}

		prevTrend = pt.Trend
		prevTrendOK = pt.TrendOK
		points[i] = pt
	}
	return points, nil
}

package series

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidInput = errors.New("invalid price series")

// PricePoint is one trading day of the input series.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// Series is an ascending, gap-as-is sequence of daily closes. The engine
// treats it as read-only; ownership stays with whoever fetched it.
type Series []PricePoint

// Validate enforces the input contract: non-empty, strictly ascending
// unique dates, positive finite closes.
func (s Series) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty series", ErrInvalidInput)
	}
	for i, p := range s {
		if p.Close <= 0 || math.IsInf(p.Close, 0) || math.IsNaN(p.Close) {
			return fmt.Errorf("%w: non-positive close %v at %s", ErrInvalidInput, p.Close, p.Date.Format("2006-01-02"))
		}
		if i > 0 && !s[i-1].Date.Before(p.Date) {
			return fmt.Errorf("%w: dates not ascending at %s", ErrInvalidInput, p.Date.Format("2006-01-02"))
		}
	}
	return nil
}

// Closes returns the close prices in series order.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, p := range s {
		closes[i] = p.Close
	}
	return closes
}

func (s Series) First() PricePoint {
	return s[0]
}

func (s Series) Last() PricePoint {
	return s[len(s)-1]
}

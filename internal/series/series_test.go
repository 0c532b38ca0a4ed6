package series

import (
	"errors"
	"math"
	"testing"
	"time"
)

func day(offset int) time.Time {
	return time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestValidateAcceptsAscendingPositiveSeries(t *testing.T) {
	s := Series{
		{Date: day(0), Close: 100},
		{Date: day(1), Close: 101.5},
		{Date: day(3), Close: 99},
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("expected valid series, got %v", err)
	}
}

func TestValidateRejectsEmptySeries(t *testing.T) {
	if err := (Series{}).Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestValidateRejectsNonAscendingDates(t *testing.T) {
	s := Series{
		{Date: day(1), Close: 100},
		{Date: day(0), Close: 101},
	}
	if err := s.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestValidateRejectsDuplicateDates(t *testing.T) {
	s := Series{
		{Date: day(0), Close: 100},
		{Date: day(0), Close: 101},
	}
	if err := s.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestValidateRejectsNonPositiveClose(t *testing.T) {
	s := Series{
		{Date: day(0), Close: 100},
		{Date: day(1), Close: 0},
	}
	if err := s.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestValidateRejectsNonFiniteClose(t *testing.T) {
	s := Series{
		{Date: day(0), Close: math.NaN()},
	}
	if err := s.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for NaN, got %v", err)
	}
	s[0].Close = math.Inf(1)
	if err := s.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for Inf, got %v", err)
	}
}

func TestClosesAndEndpoints(t *testing.T) {
	s := Series{
		{Date: day(0), Close: 1},
		{Date: day(1), Close: 2},
		{Date: day(2), Close: 3},
	}
	closes := s.Closes()
	if len(closes) != 3 || closes[0] != 1 || closes[2] != 3 {
		t.Fatalf("unexpected closes: %v", closes)
	}
	if s.First().Close != 1 || s.Last().Close != 3 {
		t.Fatalf("unexpected endpoints: first=%v last=%v", s.First(), s.Last())
	}
}

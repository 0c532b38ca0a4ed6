package signal

import "testing"

func TestRollingWindowMean(t *testing.T) {
	w := newRollingWindow(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		w.Add(v)
	}

	mean, ok := w.Mean()
	if !ok {
		t.Fatalf("expected full window")
	}
	expected := (3.0 + 4.0 + 5.0) / 3.0
	if mean != expected {
		t.Fatalf("expected mean %.2f, got %.2f", expected, mean)
	}
}

func TestRollingWindowMeanDuringWarmup(t *testing.T) {
	w := newRollingWindow(3)
	w.Add(1)
	w.Add(2)

	if _, ok := w.Mean(); ok {
		t.Fatalf("expected no mean before a full window")
	}
}

func TestRollingWindowEvictsOldest(t *testing.T) {
	w := newRollingWindow(2)
	w.Add(10)
	w.Add(20)
	w.Add(30)

	mean, ok := w.Mean()
	if !ok {
		t.Fatalf("expected full window")
	}
	if mean != 25 {
		t.Fatalf("expected mean 25 after eviction, got %.2f", mean)
	}
}

package signal

// rollingWindow keeps an incremental sum over the most recent w values so a
// full pass over the series computes every mean in O(n).
type rollingWindow struct {
	values []float64
	size   int
	next   int
	count  int
	sum    float64
}

func newRollingWindow(size int) *rollingWindow {
	return &rollingWindow{
		values: make([]float64, size),
		size:   size,
	}
}

func (r *rollingWindow) Add(value float64) {
	if r.count == r.size {
		r.sum -= r.values[r.next]
	} else {
		r.count++
	}
	r.values[r.next] = value
	r.sum += value
	r.next = (r.next + 1) % r.size
}

// Mean returns the window average and whether a full window has been seen.
func (r *rollingWindow) Mean() (float64, bool) {
	if r.count < r.size {
		return 0, false
	}
	return r.sum / float64(r.size), true
}

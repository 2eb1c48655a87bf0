package pull

import "time"

// tween interpolates between two values over a fixed wall-clock window
// with an ease-out curve. Values derive from the elapsed fraction at each
// sample, so dropped or late frames cannot accumulate drift.
type tween struct {
	from     float64
	to       float64
	duration time.Duration
	start    time.Time
}

func newTween(from, to float64, d time.Duration, now time.Time) tween {
	return tween{from: from, to: to, duration: d, start: now}
}

func (t tween) progress(now time.Time) float64 {
	if t.duration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.start)) / float64(t.duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Value samples the eased interpolation at the given time.
func (t tween) Value(now time.Time) float64 {
	return t.from + (t.to-t.from)*easeOutCubic(t.progress(now))
}

// Done reports whether the window has fully elapsed.
func (t tween) Done(now time.Time) bool {
	return t.progress(now) >= 1
}

func easeOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

package anim

import (
	"strconv"
	"time"
)

// CounterDuration is how long a result counter takes to reach its target.
const CounterDuration = 1500 * time.Millisecond

// Counter animates a number from Start to End.
type Counter struct {
	Start, End float64
	Duration   time.Duration
	Prefix     string
	Suffix     string
	Ease       Easing
}

// NewCounter counts from 0 to end over CounterDuration with EaseOutQuart.
func NewCounter(end float64, prefix, suffix string) Counter {
	return Counter{End: end, Duration: CounterDuration, Prefix: prefix, Suffix: suffix, Ease: EaseOutQuart}
}

// Progress returns linear progress in [0,1] after elapsed.
func (c Counter) Progress(elapsed time.Duration) float64 {
	if c.Duration <= 0 {
		return 1
	}
	return clamp01(float64(elapsed) / float64(c.Duration))
}

// Value returns the displayed number after elapsed. Once the duration has
// passed it is exactly End.
func (c Counter) Value(elapsed time.Duration) float64 {
	p := c.Progress(elapsed)
	if p >= 1 {
		return c.End
	}
	ease := c.Ease
	if ease == nil {
		ease = EaseOutQuart
	}
	return c.Start + (c.End-c.Start)*ease(p)
}

// Text renders Value with two decimals between Prefix and Suffix.
func (c Counter) Text(elapsed time.Duration) string {
	return c.Prefix + Fixed2(c.Value(elapsed)) + c.Suffix
}

// Done reports whether the counter has reached End.
func (c Counter) Done(elapsed time.Duration) bool { return c.Progress(elapsed) >= 1 }

// Fixed2 formats v with exactly two decimals.
func Fixed2(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

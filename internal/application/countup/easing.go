// Package countup animates headline result metrics from their zero state to their
// target. Each metric is an Instance moving through Idle, Delayed, Running and Done,
// driven by a Scheduler. A Group owns the instances of one results section and starts
// them at most once.
package countup

import (
	"math"
	"strconv"
	"time"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"
)

const (
	// Duration is the run time of one instance, excluding its stagger delay.
	Duration = 1600 * time.Millisecond
	// Stagger is the extra start delay per instance index.
	Stagger = 180 * time.Millisecond
)

// EaseOutExpo maps elapsed fraction t in [0,1] to animation progress.
func EaseOutExpo(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// Format prints n as "n%" or "#n".
func Format(n int, f domain.ValueFormat) string {
	if f == domain.FormatRank {
		return "#" + strconv.Itoa(n)
	}
	return strconv.Itoa(n) + "%"
}

// DisplayAt is the text shown for m at elapsed fraction progress. Static metrics always
// show their given value. Progress 1 shows the exact target.
func DisplayAt(m domain.ResultMetric, progress float64) string {
	if !m.Animated() {
		return m.Value
	}
	target := *m.NumericValue
	switch {
	case progress <= 0:
		return Format(0, m.Format)
	case progress >= 1:
		return Format(target, m.Format)
	}
	return Format(int(math.Round(EaseOutExpo(progress)*float64(target))), m.Format)
}

// Initial is the text shown before the section is triggered.
func Initial(m domain.ResultMetric) string {
	return DisplayAt(m, 0)
}

func progressOf(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= Duration {
		return 1
	}
	return float64(elapsed) / float64(Duration)
}

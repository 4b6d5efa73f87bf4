// Package runstats provides the small run-level reporting helpers an
// experiment loop needs around the tour core: sample statistics over
// repeated run results, wall-clock timing, and a stable timestamp format
// for result logs.
//
// Statistics are delegated to github.com/aclements/go-moremath/stats; this
// package pins down the error contract (a mean needs one observation, a
// standard deviation needs two) and the Bessel-corrected estimator choice.
//
// Design: deterministic pure functions plus a trivial Timer value type;
// no logging, no global state.
package runstats

import (
	"errors"
	"fmt"
	"time"

	"github.com/aclements/go-moremath/stats"
)

// ErrEmptySample is returned when a statistic needs at least one observation.
var ErrEmptySample = errors.New("runstats: empty sample")

// ErrSampleTooSmall is returned when a statistic needs at least two
// observations (sample standard deviation divides by n−1).
var ErrSampleTooSmall = errors.New("runstats: sample too small")

// timestampLayout is the experiment-log timestamp format,
// e.g. "2021-12-31 15:45:59".
const timestampLayout = "2006-01-02 15:04:05"

// Mean returns the arithmetic mean of xs.
// Returns ErrEmptySample when len(xs) == 0.
//
// Complexity: O(n).
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	return stats.Sample{Xs: xs}.Mean(), nil
}

// StdDev returns the Bessel-corrected sample standard deviation of xs
// (divisor n−1). Returns ErrSampleTooSmall when len(xs) < 2.
//
// Complexity: O(n).
func StdDev(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, ErrSampleTooSmall
	}
	return stats.Sample{Xs: xs}.StdDev(), nil
}

// Summary bundles the statistics reported per batch of runs.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64 // 0 when Count < 2
	Min    float64
	Max    float64
}

// Summarize computes a Summary over xs.
// Returns ErrEmptySample when len(xs) == 0.
//
// Complexity: O(n).
func Summarize(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, ErrEmptySample
	}

	var (
		s = Summary{Count: len(xs), Min: xs[0], Max: xs[0]}
		x float64
	)
	for _, x = range xs {
		if x < s.Min {
			s.Min = x
		}
		if x > s.Max {
			s.Max = x
		}
	}
	s.Mean = stats.Sample{Xs: xs}.Mean()
	if len(xs) >= 2 {
		s.StdDev = stats.Sample{Xs: xs}.StdDev()
	}
	return s, nil
}

// Timer measures elapsed wall-clock time from its creation.
// The zero value is not meaningful; obtain one from StartTimer.
type Timer struct {
	start time.Time
}

// StartTimer returns a Timer anchored at the current instant.
func StartTimer() Timer { return Timer{start: time.Now()} }

// Elapsed returns the time passed since the timer started.
func (t Timer) Elapsed() time.Duration { return time.Since(t.start) }

// ElapsedSeconds returns the elapsed time in fractional seconds, the unit
// used throughout experiment logs.
func (t Timer) ElapsedSeconds() float64 { return time.Since(t.start).Seconds() }

// String formats the elapsed seconds, so a Timer can be dropped directly
// into a log line.
func (t Timer) String() string { return fmt.Sprintf("%.6f", t.ElapsedSeconds()) }

// Timestamp returns the current local date and time in the experiment-log
// format "2006-01-02 15:04:05".
func Timestamp() string { return time.Now().Format(timestampLayout) }

// Package tour - shared types, sentinels and tolerances.
//
// Hot paths in this package (Succ/Pred/ContainsEdge, relocation cascades,
// Walker.Visit) never return errors; their preconditions are caller contracts
// documented per method. Construction and diagnostics return only the
// sentinel errors declared here, optionally wrapped with detail via %w.
package tour

import "errors"

// Metric is the external distance oracle the tour core consumes.
//
// Implementations must be symmetric (Distance(a,b) == Distance(b,a)),
// non-negative, pure, and stable for the lifetime of any Tour pricing moves
// against them. metric.Dense satisfies this interface.
type Metric interface {
	// Distance returns the cost of the edge between nodes u and v. O(1).
	Distance(u, v int) float64
	// RouteLength returns the sum of distances over every cyclically-adjacent
	// pair of the route, including the closing edge. O(len(route)).
	RouteLength(route []int) float64
}

// ErrDimensionMismatch is returned when an input sequence has an invalid
// length for the operation (empty route, wrong dimension).
var ErrDimensionMismatch = errors.New("tour: dimension mismatch")

// ErrNotPermutation is returned when a supplied route is not a permutation
// of [0, n): an entry is out of range or appears more than once.
var ErrNotPermutation = errors.New("tour: route is not a permutation")

// ErrCostMismatch is reported by Walker.Validate when the maintained cost
// diverges from the oracle's from-scratch recomputation beyond costTol.
var ErrCostMismatch = errors.New("tour: cost diverges from recomputation")

// ErrVisitedMismatch is reported by Walker.Validate when the maintained
// visited bitmask disagrees with the set of nodes actually on the route.
var ErrVisitedMismatch = errors.New("tour: visited state diverges from route")

// ErrPositionDesync is reported by Walker.Validate when the inverse position
// index disagrees with the route ordering.
var ErrPositionDesync = errors.New("tour: position index out of sync")

// costTol is the relative tolerance Walker.Validate allows between the
// incrementally maintained cost and an exact recomputation. Incremental
// adjacent-edge deltas accumulate FP error across many moves; this bound is
// loose enough for millions of updates yet tight enough to catch logic bugs.
const costTol = 1e-6

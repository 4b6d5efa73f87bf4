// Package tour - the constructive walker (ant-style incremental builder).
//
// A Walker layers incremental construction state on top of a Tour: a visited
// bitmask, a lazily-compacted list of remaining candidates, and a count of
// nodes placed so far. A constructive pass calls TryVisit once per node until
// the tour is complete; the Walker is then usable as a plain Tour (it embeds
// one), including with the relocate operators.
//
// Lifecycle: Initialize(n) resets all state in place for reuse across many
// constructive runs (no reallocation when the dimension is unchanged);
// Visit/TryVisit are the only mutators of visited state; construction is
// complete once Placed() == Dimension(). There is no way back to the
// constructing state except another Initialize.
//
// The unvisited candidate list is an over-approximation: marking a node
// visited does not eagerly remove it (removal from an arbitrary position
// would cost O(n) per visit). UnvisitedNodes compacts the list in place on
// every call, so batching candidate queries keeps the amortized cost low,
// while calling it after every single visit degrades to O(n²) total.
package tour

import (
	"fmt"
	"math"

	"github.com/acolib/antour/bitmask"
)

// Walker builds a complete Tour incrementally, one node per visit.
// The zero value is unusable until Initialize is called.
type Walker struct {
	Tour

	visited   bitmask.Bitmask
	unvisited []int // over-approximation; stale entries purged by UnvisitedNodes
	dimension int
	placed    int
}

// NewWalker returns a Walker ready to construct tours over dimension nodes.
//
// Complexity: O(n).
func NewWalker(dimension int) *Walker {
	w := &Walker{}
	w.Initialize(dimension)
	return w
}

// Initialize resets the Walker for a fresh constructive run over nodes
// [0, dimension): no node visited, no node placed, cost +Inf, every node a
// candidate. Existing storage is reused when the dimension is unchanged, so
// resetting between iterations costs O(n) with zero allocations.
//
// Contract (not checked): dimension ≥ 1.
//
// Complexity: O(n) time.
func (w *Walker) Initialize(dimension int) {
	w.dimension = dimension
	w.placed = 0
	w.cost = infCost

	w.route = grow(w.route, dimension)
	w.pos = grow(w.pos, dimension)
	w.unvisited = grow(w.unvisited, dimension)

	var i int
	for i = 0; i < dimension; i++ {
		w.unvisited[i] = i
	}
	w.visited.Resize(dimension)
}

// Dimension returns the number of nodes of the instance under construction.
func (w *Walker) Dimension() int { return w.dimension }

// Placed returns the number of nodes placed on the route so far.
func (w *Walker) Placed() int { return w.placed }

// Complete reports whether every node has been placed.
func (w *Walker) Complete() bool { return w.placed == w.dimension }

// Visit places node at the next free route position, records its position
// in the index, and marks it visited.
//
// Contract (not checked): !IsVisited(node) and the walker is not complete.
// Callers that do not already know the visited status use TryVisit instead.
//
// Complexity: O(1), no allocations.
func (w *Walker) Visit(node int) {
	w.route[w.placed] = node
	w.pos[node] = w.placed
	w.placed++
	w.visited.Set(node)
}

// TryVisit visits node if it has not been visited yet and reports whether
// the visit happened. A false return leaves all state unchanged. This is
// the safe public entry point for constructive algorithms.
//
// Complexity: O(1), no allocations.
func (w *Walker) TryVisit(node int) bool {
	if w.visited.Get(node) {
		return false
	}
	w.Visit(node)
	return true
}

// IsVisited reports whether node has been placed on the route.
//
// Complexity: O(1).
func (w *Walker) IsVisited(node int) bool { return w.visited.Get(node) }

// Current returns the most recently placed node.
// Contract (not checked): Placed() ≥ 1.
//
// Complexity: O(1).
func (w *Walker) Current() int { return w.route[w.placed-1] }

// UnvisitedCount returns the number of nodes not yet placed.
//
// Complexity: O(1).
func (w *Walker) UnvisitedCount() int { return w.dimension - w.placed }

// UnvisitedNodes compacts the candidate list in place, filtering out entries
// that became visited since the last call, and returns it. After the call
// the returned slice contains exactly the unvisited nodes, in an unspecified
// order that is stable until the next Visit; its length equals
// UnvisitedCount().
//
// The slice aliases Walker storage: it is valid until the next Initialize
// and its contents shift on the next compaction. Callers must not mutate it.
//
// Complexity: O(current list length) per call. Cheap when batched between
// visits; calling it after every single visit is O(n²) over a full run.
func (w *Walker) UnvisitedNodes() []int {
	var (
		j    int
		node int
	)
	for _, node = range w.unvisited {
		if !w.visited.Get(node) {
			w.unvisited[j] = node
			j++
		}
	}
	w.unvisited = w.unvisited[:j]
	return w.unvisited
}

// Validate is a full self-check intended for tests and periodic
// reconciliation, not the hot path. It re-derives every piece of redundant
// state from the route and reports the first divergence found:
//
//   - ErrDimensionMismatch: construction incomplete or wrong route length,
//   - ErrPositionDesync:    pos[route[i]] != i for some i,
//   - ErrVisitedMismatch:   route duplicates a node, or the maintained
//     bitmask disagrees with the set of routed nodes,
//   - ErrCostMismatch:      cost differs from m.RouteLength(route) beyond
//     a relative tolerance of 1e-6 (accumulated
//     incremental drift or a pricing bug).
//
// Returns nil when every invariant holds. Walker state is never modified.
//
// Complexity: O(n) time, O(n/64) space (one scratch bitmask).
func (w *Walker) Validate(m Metric) error {
	if !w.Complete() {
		return fmt.Errorf("%w: %d of %d nodes placed", ErrDimensionMismatch, w.placed, w.dimension)
	}
	if len(w.route) != w.dimension {
		return fmt.Errorf("%w: route length %d, dimension %d", ErrDimensionMismatch, len(w.route), w.dimension)
	}

	var (
		i    int
		node int
		seen = bitmask.New(w.dimension)
	)
	for i = 0; i < w.dimension; i++ {
		node = w.route[i]
		if node < 0 || node >= w.dimension {
			return fmt.Errorf("%w: node %d out of range at position %d", ErrVisitedMismatch, node, i)
		}
		if seen.Get(node) {
			return fmt.Errorf("%w: node %d routed twice", ErrVisitedMismatch, node)
		}
		seen.Set(node)
		if w.pos[node] != i {
			return fmt.Errorf("%w: node %d at position %d, index says %d", ErrPositionDesync, node, i, w.pos[node])
		}
	}
	for i = 0; i < w.dimension; i++ {
		if seen.Get(i) != w.visited.Get(i) {
			return fmt.Errorf("%w: node %d routed=%t visited=%t", ErrVisitedMismatch, i, seen.Get(i), w.visited.Get(i))
		}
	}

	var (
		exact = m.RouteLength(w.route)
		diff  = math.Abs(w.cost - exact)
		scale = math.Max(1, math.Abs(exact))
	)
	if diff > costTol*scale {
		return fmt.Errorf("%w: have %.9f, recomputed %.9f", ErrCostMismatch, w.cost, exact)
	}
	return nil
}

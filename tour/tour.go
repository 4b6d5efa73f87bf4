// Package tour - the mutable cyclic tour with an inverse position index.
//
// A Tour owns three coupled pieces of state:
//   - route: an open permutation of [0, n) (no closing duplicate; position
//     n−1 is cyclically adjacent to position 0),
//   - pos:   the inverse index, pos[route[i]] == i for every i,
//   - cost:  a trusted scalar equal to the cyclic route length.
//
// Every public mutator keeps route and pos in sync within the same call;
// no intermediate desync is observable through the public API. Cost is
// maintained only by the operators that document doing so (see relocate.go);
// SwapPositions and Update deliberately trust the caller.
//
// Design:
//   - Array-of-positions instead of a linked structure: O(1) succ/pred plus
//     O(1) position lookup, with moves costing O(displacement). Plain int
//     indices keep it cache-friendly and ownership-free.
//   - Hot-path queries return no errors; node presence is a caller contract.
//   - No logging, no panics on user input in constructors - only sentinels.
package tour

import "math"

// Tour is a cyclic sequence of node identifiers with an O(1) inverse
// position index and a running cost. The zero value is an empty tour;
// populate it with Update or build one with NewTour.
type Tour struct {
	route []int
	pos   []int // pos[node] = index of node within route
	cost  float64
}

// NewTour builds a Tour from an explicit route and its cost.
// The route must be a permutation of [0, len(route)); the cost is trusted
// verbatim (no recomputation). The route is copied into owned storage.
//
// Returns ErrDimensionMismatch for an empty route and ErrNotPermutation for
// out-of-range or duplicate entries.
//
// Complexity: O(n) time, O(n) space.
func NewTour(route []int, cost float64) (*Tour, error) {
	if err := ValidatePermutation(route, len(route)); err != nil {
		return nil, err
	}

	t := &Tour{}
	t.Update(route, cost)
	return t, nil
}

// Len returns the number of nodes on the tour.
func (t *Tour) Len() int { return len(t.route) }

// Cost returns the current running cost of the tour.
func (t *Tour) Cost() float64 { return t.cost }

// SetCost overwrites the running cost. The value is trusted; callers that
// compute a tour's length externally (e.g. while constructing it) use this
// to seed cost before applying cost-maintaining moves.
func (t *Tour) SetCost(cost float64) { t.cost = cost }

// Route returns the live route slice as a read-only view. Mutating it
// directly bypasses the position index and breaks the Tour invariants;
// use the Tour operators instead.
func (t *Tour) Route() []int { return t.route }

// CopyRoute returns an independent copy of the current route.
//
// Complexity: O(n) time, O(n) space.
func (t *Tour) CopyRoute() []int {
	if t.route == nil {
		return nil
	}
	out := make([]int, len(t.route))
	copy(out, t.route)
	return out
}

// Position returns the index of node within the route.
// Contract (not checked): node is present on the tour.
//
// Complexity: O(1).
func (t *Tour) Position(node int) int { return t.pos[node] }

// Succ returns the cyclic successor of node: the node at the next position,
// wrapping from the last position back to the first.
// Contract (not checked): node is present on the tour.
//
// Complexity: O(1), no allocations.
func (t *Tour) Succ(node int) int {
	var i = t.pos[node]
	if i+1 < len(t.route) {
		return t.route[i+1]
	}
	return t.route[0]
}

// Pred returns the cyclic predecessor of node, wrapping from the first
// position back to the last.
// Contract (not checked): node is present on the tour.
//
// Complexity: O(1), no allocations.
func (t *Tour) Pred(node int) int {
	var i = t.pos[node]
	if i > 0 {
		return t.route[i-1]
	}
	return t.route[len(t.route)-1]
}

// ContainsEdge reports whether a and b are cyclically adjacent. The tour is
// treated as undirected: an edge and its reverse are the same edge, so
// ContainsEdge(a, b) == ContainsEdge(b, a).
// Contract (not checked): both nodes are present on the tour.
//
// Complexity: O(1).
func (t *Tour) ContainsEdge(a, b int) bool {
	return t.Succ(a) == b || t.Pred(a) == b
}

// SwapPositions exchanges the nodes at route positions i and j and updates
// the position index for both in the same call. Cost is untouched: this is
// the building block for higher-level moves that price themselves.
// Contract (not checked): 0 ≤ i, j < Len().
//
// Complexity: O(1).
func (t *Tour) SwapPositions(i, j int) {
	t.pos[t.route[i]], t.pos[t.route[j]] = t.pos[t.route[j]], t.pos[t.route[i]]
	t.route[i], t.route[j] = t.route[j], t.route[i]
}

// Update replaces the route wholesale and rebuilds the position index.
// The route is copied into owned storage (reused when capacity allows, so a
// same-size Update inside an iteration loop does not allocate). The cost is
// trusted verbatim; so is the route shape - callers own both contracts
// (the route must be a permutation of [0, n)).
//
// Complexity: O(n) time.
func (t *Tour) Update(route []int, cost float64) {
	var n = len(route)
	t.route = grow(t.route, n)
	t.pos = grow(t.pos, n)
	copy(t.route, route)
	t.cost = cost
	t.reindex()
}

// UpdateFrom replaces this tour's state with a copy of the other tour's
// route and cost. Same contracts and reuse behavior as Update.
//
// Complexity: O(n) time.
func (t *Tour) UpdateFrom(other *Tour) {
	t.Update(other.route, other.cost)
}

// CursorAt returns a Cursor positioned on node, iterating this tour's live
// route. Contract (not checked): node is present on the tour.
//
// Complexity: O(1).
func (t *Tour) CursorAt(node int) Cursor {
	return Cursor{route: t.route, idx: t.pos[node]}
}

// reindex rebuilds pos from route in one pass.
//
// Complexity: O(n).
func (t *Tour) reindex() {
	var i int
	for i = 0; i < len(t.route); i++ {
		t.pos[t.route[i]] = i
	}
}

// grow returns s resized to length n, reusing capacity when possible.
func grow(s []int, n int) []int {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]int, n)
}

// ValidatePermutation checks that route is a permutation of [0, n) of
// length n. Returns ErrDimensionMismatch when the length is wrong or n ≤ 0,
// and ErrNotPermutation on out-of-range or duplicate entries.
//
// Complexity: O(n) time, O(n) space (one boolean marker slice).
func ValidatePermutation(route []int, n int) error {
	if n <= 0 || len(route) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = route[i]
		if v < 0 || v >= n {
			return ErrNotPermutation
		}
		if seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}
	return nil
}

// infCost is the cost of a tour that has not been priced yet.
var infCost = math.Inf(1)

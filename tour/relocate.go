// Package tour - local-move operators: segment relocation.
//
// Relocate moves a single node v to immediately follow a node u while
// preserving the relative order of every other node. Both variants implement
// the move as a bounded cascade of adjacent-position swaps over the shorter
// span between the two positions, so the cost is O(|pos(u) − pos(v)|)
// rather than O(n):
//
//   - Relocate: topology only. The position index stays correct after every
//     elementary swap, but cost is NOT maintained - callers needing a
//     cost-consistent tour afterwards recompute via the oracle or use
//     RelocateWithCost.
//   - RelocateWithCost: identical placement result, but every elementary
//     swap also adjusts cost by the two affected outer-edge deltas, keeping
//     it exact (up to FP accumulation) without ever recomputing the full
//     route length. That incremental pricing is the whole point of the
//     operator on large instances inside a hot loop.
//
// Contracts (not checked, hot path): u != v, both on the tour, Len() ≥ 2.
// If v already follows u, both variants perform zero swaps.
package tour

// Relocate moves v to immediately follow u, preserving the relative order
// of all other nodes. The position index is updated at each elementary
// swap; the running cost is left untouched.
//
// Contract (not checked): u != v, both present, Len() ≥ 2.
//
// Complexity: O(|Position(u) − Position(v)|) time, O(1) space.
func (t *Tour) Relocate(u, v int) {
	var (
		i = t.pos[u]
		j = t.pos[v]
	)
	if j < i {
		// v is left of u: drop v onto u's position in one swap, then bubble
		// the displaced u back down so the order of the span [j, i−1]
		// is restored.
		t.SwapPositions(i, j)
		for j < i-1 {
			t.SwapPositions(j, j+1)
			j++
		}
	} else {
		// v is right of u: bubble v leftwards until it sits just after u.
		for j > i+1 {
			t.SwapPositions(j, j-1)
			j--
		}
	}
}

// RelocateWithCost moves v to immediately follow u exactly as Relocate does,
// but prices every elementary swap incrementally against m so that Cost()
// stays equal to the cyclic route length (up to FP accumulation across many
// moves; see Walker.Validate for periodic reconciliation).
//
// If v is already the successor of u the cascade performs zero swaps and
// cost is preserved exactly.
//
// Contract (not checked): u != v, both present, Len() ≥ 2.
//
// Complexity: O(|Position(u) − Position(v)|) oracle lookups, O(1) space.
func (t *Tour) RelocateWithCost(u, v int, m Metric) {
	var (
		i = t.pos[u]
		j = t.pos[v]
	)
	for j < i {
		t.swapWithNext(j, m)
		j++
	}
	for j > i+1 {
		t.swapWithNext(j-1, m)
		j--
	}
}

// swapWithNext exchanges the nodes at positions i and i+1 and adjusts cost
// by the delta of the two outer edges. With neighbors p = Pred(route[i]) and
// s = Succ(route[i+1]), the swap replaces edges (p,u),(v,s) by (p,v),(u,s);
// the middle edge (u,v) is unchanged because the metric is symmetric.
//
// Contract: 0 ≤ i < Len()−1.
//
// Complexity: O(1), four oracle lookups.
func (t *Tour) swapWithNext(i int, m Metric) {
	var (
		u = t.route[i]
		v = t.route[i+1]
	)
	t.cost -= m.Distance(t.Pred(u), u) + m.Distance(v, t.Succ(v))
	t.pos[u], t.pos[v] = t.pos[v], t.pos[u]
	t.route[i], t.route[i+1] = t.route[i+1], t.route[i]
	t.cost += m.Distance(t.Pred(v), v) + m.Distance(u, t.Succ(u))
}

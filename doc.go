// Package antour is the mutable-tour engine for ant-style TSP metaheuristics:
// a cyclic permutation with an O(1) position index, incremental local moves,
// and low-overhead constructive state for building tours node by node.
//
// 🐜 What is antour?
//
//	A small, allocation-conscious library that brings together:
//		• Tour: cyclic route + inverse position index, O(1) succ/pred/edge queries
//		• Cursor: restartable cyclic iteration over a live route
//		• Relocate moves: order-preserving node relocation, plain or cost-maintaining
//		• Walker: incremental (ant-style) tour construction with a visited bitmask
//		• Metric: dense symmetric distance oracles (matrix or planar Euclidean)
//		• Run helpers: best-known reference values, sample mean/stdev, timers
//
// ✨ Why choose antour?
//
//   - Hot-loop discipline – no hidden allocations, no locking, no logging
//   - Strict contracts – sentinel errors on construction, documented
//     caller contracts on the O(1) query paths
//   - Reuse-friendly – Walker.Initialize resets state in place so a
//     population of walkers can run millions of iterations without GC churn
//
// Everything is organized under focused subpackages:
//
//	bitmask/   — packed visited-bit tracking over node identifiers
//	metric/    — dense symmetric distance oracles
//	tour/      — Tour, Cursor, relocate operators, constructive Walker
//	bestknown/ — best-known tour lengths per instance (JSON reference file)
//	runstats/  — sample statistics, wall-clock timing, experiment timestamps
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a unit square; the tour 0→1→2→3→0 has length 4, and relocating
//	node 2 to follow node 0 yields 0→2→1→3→0 with length 2+2√2.
//
// Concurrency model: a Tour or Walker is a single-owner mutable value.
// Run one per worker; the library adds no locks because none are needed
// under that ownership discipline.
//
//	go get github.com/acolib/antour
package antour

// Package tour_test exercises the Tour core: construction sentinels,
// O(1) queries (Succ/Pred/ContainsEdge), position swaps, and wholesale
// updates - always re-checking the position-index invariant.
package tour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acolib/antour/tour"
)

func TestNewTour_ValidationSentinels(t *testing.T) {
	cases := []struct {
		name  string
		route []int
		want  error
	}{
		{"empty", nil, tour.ErrDimensionMismatch},
		{"out_of_range", []int{0, 1, 5}, tour.ErrNotPermutation},
		{"negative", []int{0, -1, 2}, tour.ErrNotPermutation},
		{"duplicate", []int{0, 1, 1}, tour.ErrNotPermutation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tour.NewTour(tc.route, 0)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewTour_TrustsCostAndCopiesRoute(t *testing.T) {
	route := []int{2, 0, 1}
	tr, err := tour.NewTour(route, 42.5)
	require.NoError(t, err)
	require.Equal(t, 42.5, tr.Cost()) // cost adopted verbatim, never recomputed
	require.Equal(t, 3, tr.Len())

	route[0] = 1 // the Tour owns its storage; input aliasing must not leak
	require.Equal(t, []int{2, 0, 1}, tr.Route())
	requireIndexInSync(t, tr)
}

func TestSuccPred_CyclicWraparound(t *testing.T) {
	tr, err := tour.NewTour([]int{3, 1, 0, 2}, 0)
	require.NoError(t, err)

	require.Equal(t, 1, tr.Succ(3))
	require.Equal(t, 0, tr.Succ(1))
	require.Equal(t, 2, tr.Succ(0))
	require.Equal(t, 3, tr.Succ(2)) // wraps last → first

	require.Equal(t, 2, tr.Pred(3)) // wraps first → last
	require.Equal(t, 3, tr.Pred(1))
	require.Equal(t, 1, tr.Pred(0))
	require.Equal(t, 0, tr.Pred(2))
}

func TestSuccPred_AreInverse(t *testing.T) {
	m := ringMetric(t, 7)
	tr := identityTour(t, 7, m)

	var node int
	for node = 0; node < 7; node++ {
		require.Equal(t, node, tr.Pred(tr.Succ(node)))
		require.Equal(t, node, tr.Succ(tr.Pred(node)))
	}
}

func TestContainsEdge_Undirected(t *testing.T) {
	tr, err := tour.NewTour([]int{2, 0, 4, 1, 3}, 0)
	require.NoError(t, err)

	var a, b int
	for a = 0; a < 5; a++ {
		for b = 0; b < 5; b++ {
			require.Equal(t, tr.ContainsEdge(a, b), tr.ContainsEdge(b, a),
				"edge symmetry broken for (%d,%d)", a, b)
		}
	}

	require.True(t, tr.ContainsEdge(2, 0))
	require.True(t, tr.ContainsEdge(3, 2)) // closing edge, cyclic adjacency
	require.False(t, tr.ContainsEdge(0, 3))
	require.False(t, tr.ContainsEdge(2, 4))
}

func TestSwapPositions_KeepsIndexInSync(t *testing.T) {
	tr, err := tour.NewTour([]int{0, 1, 2, 3, 4}, 10)
	require.NoError(t, err)

	tr.SwapPositions(1, 3)
	require.Equal(t, []int{0, 3, 2, 1, 4}, tr.Route())
	requireIndexInSync(t, tr)
	require.Equal(t, 10.0, tr.Cost()) // cost untouched by the primitive

	tr.SwapPositions(0, 4)
	require.Equal(t, []int{4, 3, 2, 1, 0}, tr.Route())
	requireIndexInSync(t, tr)

	tr.SwapPositions(2, 2) // self-swap is a harmless no-op
	require.Equal(t, []int{4, 3, 2, 1, 0}, tr.Route())
	requireIndexInSync(t, tr)
}

func TestUpdate_RebuildsIndexAndTrustsCost(t *testing.T) {
	tr, err := tour.NewTour([]int{0, 1, 2}, 3)
	require.NoError(t, err)

	tr.Update([]int{2, 1, 0}, 7.25)
	require.Equal(t, []int{2, 1, 0}, tr.Route())
	require.Equal(t, 7.25, tr.Cost())
	requireIndexInSync(t, tr)

	other, err := tour.NewTour([]int{1, 0, 2}, 5.5)
	require.NoError(t, err)
	tr.UpdateFrom(other)
	require.Equal(t, []int{1, 0, 2}, tr.Route())
	require.Equal(t, 5.5, tr.Cost())
	requireIndexInSync(t, tr)

	// UpdateFrom copies: mutating the source afterwards must not alias.
	other.SwapPositions(0, 1)
	require.Equal(t, []int{1, 0, 2}, tr.Route())
}

func TestUpdate_GrowsFromZeroValue(t *testing.T) {
	var tr tour.Tour
	tr.Update([]int{1, 2, 0, 3}, 1.5)
	require.Equal(t, 4, tr.Len())
	require.Equal(t, 1.5, tr.Cost())
	requireIndexInSync(t, &tr)
}

func TestSetCost_OverwritesVerbatim(t *testing.T) {
	tr, err := tour.NewTour([]int{0, 1}, 1)
	require.NoError(t, err)
	tr.SetCost(123.75)
	require.Equal(t, 123.75, tr.Cost())
}

func TestCopyRoute_Independent(t *testing.T) {
	tr, err := tour.NewTour([]int{1, 0, 2}, 0)
	require.NoError(t, err)

	cp := tr.CopyRoute()
	require.Equal(t, []int{1, 0, 2}, cp)
	tr.SwapPositions(0, 2)
	require.Equal(t, []int{1, 0, 2}, cp, "copy must not alias live route")
}

func TestValidatePermutation(t *testing.T) {
	require.NoError(t, tour.ValidatePermutation([]int{0}, 1))
	require.NoError(t, tour.ValidatePermutation([]int{3, 0, 2, 1}, 4))
	require.ErrorIs(t, tour.ValidatePermutation([]int{0, 1}, 3), tour.ErrDimensionMismatch)
	require.ErrorIs(t, tour.ValidatePermutation(nil, 0), tour.ErrDimensionMismatch)
	require.ErrorIs(t, tour.ValidatePermutation([]int{0, 2}, 2), tour.ErrNotPermutation)
	require.ErrorIs(t, tour.ValidatePermutation([]int{1, 1}, 2), tour.ErrNotPermutation)
}

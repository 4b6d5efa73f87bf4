// Package tour_test provides lightweight helpers shared across the *_test.go
// files in this package: deterministic geometric fixtures and invariant
// checkers. Helpers are intentionally minimal and avoid duplicating what the
// focused test files already cover.
package tour_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acolib/antour/metric"
	"github.com/acolib/antour/tour"
)

const (
	// costEps is the tolerance for comparing incrementally maintained costs
	// against oracle recomputations in tests.
	costEps = 1e-9

	// seedDet is the deterministic seed for rand-driven tests.
	seedDet = int64(1)
)

// unitSquareMetric returns the Euclidean oracle over the unit-square corners
// 0:(0,0), 1:(1,0), 2:(1,1), 3:(0,1): sides 1, diagonals √2.
func unitSquareMetric(t *testing.T) *metric.Dense {
	t.Helper()
	d, err := metric.NewEuclidean([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)
	return d
}

// ringMetric returns the Euclidean oracle over n points on a unit circle,
// node i at angle 2πi/n. The identity tour 0..n−1 is the polygon boundary.
func ringMetric(t *testing.T, n int) *metric.Dense {
	t.Helper()
	pts := make([][2]float64, n)
	var i int
	for i = 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(a), math.Sin(a)}
	}
	d, err := metric.NewEuclidean(pts)
	require.NoError(t, err)
	return d
}

// identityTour builds a Tour over the route 0..n−1 with cost priced by m.
func identityTour(t *testing.T, n int, m tour.Metric) *tour.Tour {
	t.Helper()
	route := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		route[i] = i
	}
	tr, err := tour.NewTour(route, m.RouteLength(route))
	require.NoError(t, err)
	return tr
}

// requireIndexInSync asserts the core Tour invariant: Position(route[i]) == i
// for every index, and that the route is a permutation of [0, Len).
func requireIndexInSync(t *testing.T, tr *tour.Tour) {
	t.Helper()
	var (
		route = tr.Route()
		n     = tr.Len()
	)
	require.NoError(t, tour.ValidatePermutation(route, n))
	var i int
	for i = 0; i < n; i++ {
		require.Equal(t, i, tr.Position(route[i]), "position index desync at %d", i)
	}
}

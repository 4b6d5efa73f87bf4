// Package metric - shared sentinels and tolerances.
//
// All constructors in this package return only the sentinel errors declared
// here; query methods (Distance/RouteLength) are contract-based hot paths and
// never allocate or fail.
package metric

import "errors"

// ErrDimensionMismatch is returned when an input has an invalid shape
// (empty data, ragged rows, NaN entries, or an out-of-range dimension).
var ErrDimensionMismatch = errors.New("metric: dimension mismatch")

// ErrNonSquare is returned when the supplied distance matrix is not n×n.
var ErrNonSquare = errors.New("metric: matrix is not square")

// ErrAsymmetry is returned when d[i][j] and d[j][i] differ beyond symTol.
// This core targets the symmetric routing problem only.
var ErrAsymmetry = errors.New("metric: matrix is not symmetric")

// ErrNegativeWeight is returned when any distance is negative.
var ErrNegativeWeight = errors.New("metric: negative distance")

// ErrIncompleteMetric is returned when a distance is +Inf (missing edge).
// A tour core that prices arbitrary relocations needs every pair defined.
var ErrIncompleteMetric = errors.New("metric: incomplete distance matrix")

// ErrNonZeroDiagonal is returned when |d[i][i]| exceeds symTol.
var ErrNonZeroDiagonal = errors.New("metric: non-zero diagonal")

// symTol is the structural tolerance for symmetry/diagonal checks.
// It is a validation knob, independent from any caller-side cost tolerance.
const symTol = 1e-12

// roundScale controls RouteLength stabilization precision (1e-9).
// Rounding the O(n) recomputation avoids cross-platform FP noise in tests
// without affecting which tour is shorter.
const roundScale = 1e9

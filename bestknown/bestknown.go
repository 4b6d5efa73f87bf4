// Package bestknown loads and queries best-known tour lengths per problem
// instance from a JSON reference file of the form
//
//	{ "berlin52": 7542, "eil51": 426, "pcb442": 50778 }
//
// Callers use it to report the gap between a heuristic's result and the
// best value recorded in the literature. A missing reference file is not an
// error: it simply means no reference values are available, and every lookup
// falls back to its default.
//
// Design:
//   - Read-only after Load; the DB is a plain map owned by the caller.
//   - Deterministic, side-effect free lookups; no logging.
//   - Only file I/O and decoding can fail; lookups never do.
package bestknown

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrMalformed is returned when the reference file exists but does not
// decode as a flat JSON object of instance-name → value.
var ErrMalformed = errors.New("bestknown: malformed reference file")

// DB maps instance names to their best-known tour length.
type DB map[string]float64

// Load reads the reference file at path. A non-existent file yields an
// empty DB and a nil error (no reference values available); any other read
// failure or a malformed document is reported.
//
// Complexity: O(file size).
func Load(path string) (DB, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DB{}, nil
		}
		return nil, fmt.Errorf("bestknown: read %s: %w", path, err)
	}

	var db DB
	if err = json.Unmarshal(raw, &db); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	if db == nil {
		db = DB{}
	}
	return db, nil
}

// Has reports whether a best-known value is recorded for name.
func (db DB) Has(name string) bool {
	_, ok := db[name]
	return ok
}

// Value returns the best-known value for name, or fallback when the
// instance is not recorded.
//
// Complexity: O(1).
func (db DB) Value(name string, fallback float64) float64 {
	if v, ok := db[name]; ok {
		return v
	}
	return fallback
}

// Gap returns the relative excess of cost over the best-known value for
// name, e.g. 0.025 for a tour 2.5% above the reference. The second result
// is false when the instance is not recorded or its reference value is not
// positive, in which case the gap is 0.
//
// Complexity: O(1).
func (db DB) Gap(name string, cost float64) (float64, bool) {
	best, ok := db[name]
	if !ok || best <= 0 {
		return 0, false
	}
	return (cost - best) / best, true
}

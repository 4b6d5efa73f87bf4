// Package tour - lazy cyclic cursor over a live route.
package tour

// Cursor is a restartable cyclic iterator over a Tour's route: a reference
// to the route plus a current position, nothing more. It never terminates -
// Next and Prev wrap around forever, and the caller decides when to stop
// (typically after Len steps to detect a full cycle). Construct one at any
// node with Tour.CursorAt.
//
// A Cursor reads the live route; interleaving it with tour mutations
// observes those mutations. It does not own the Tour.
type Cursor struct {
	route []int
	idx   int
}

// At returns the node under the cursor without moving it.
//
// Complexity: O(1).
func (c *Cursor) At() int { return c.route[c.idx] }

// Next moves one step forward with cyclic wraparound and returns the node
// at the new position.
//
// Complexity: O(1), no allocations.
func (c *Cursor) Next() int {
	if c.idx+1 < len(c.route) {
		c.idx++
	} else {
		c.idx = 0
	}
	return c.route[c.idx]
}

// Prev moves one step backward with cyclic wraparound and returns the node
// at the new position.
//
// Complexity: O(1), no allocations.
func (c *Cursor) Prev() int {
	if c.idx > 0 {
		c.idx--
	} else {
		c.idx = len(c.route) - 1
	}
	return c.route[c.idx]
}

// Package redistrict implements the greedy boundary-reassignment engine
// that reduces the spatial inequality of per-student funding between
// neighboring districts (see Inequality), one single-school move at a
// time.
//
// Run seeds a lazyheap.LazyHeap with every district keyed by its
// absolute distance from the state-wide funding-per-student mean,
// repeatedly pops the worst-off district, and asks pickMoves for a
// batch of single-school reassignments (drawn from that district's
// border and its neighbors' borders) that move it closer to the mean
// without violating the configured min/max schools-per-district bounds.
// A district with no legal improving move is set aside in a
// holdout.Queue rather than repeatedly retried, and is only reconsidered
// once something in its neighborhood has actually changed.
//
// The loop terminates when the heap is empty and, even after one
// Recycle of the holdout queue, no held-out district has seen its
// neighborhood change (districts may still sit in the holdout queue),
// or when an earlystop.Stopper observing the running
// inequality value signals that progress has stalled.
//
// Complexity per iteration: O(deg(D)) to evaluate and apply a
// district's move batch, where deg(D) is its border size plus its
// neighbors' border sizes; O(log n) amortized for the heap operations
// surrounding it.
package redistrict

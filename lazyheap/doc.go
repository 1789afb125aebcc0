// Package lazyheap implements a lazy-deletion priority queue on top of
// container/heap.
//
// Unlike a heap with positional updates, LazyHeap never searches for or
// repositions an existing entry: Update tombstones the old entry in
// place and pushes a fresh one, so a single item may have several
// stale copies sitting in the underlying slice at once. Pop skips
// tombstoned copies lazily as it encounters them, and a live id→node
// index guarantees each item's Pop/Update call sees the one copy that
// still matters.
//
// This trades Update's O(log n) cost (one push) for extra heap
// occupancy: a heap that receives k updates to the same n keys grows to
// O(n+k) entries before anything is popped. Push enforces an optional
// capacity by pruning tombstoned entries (and, failing that, rejecting
// the push) rather than growing unbounded.
//
// Complexity: Push O(log n), Pop amortized O(log n) (worst case O(m log m)
// across m tombstoned entries encountered before a live one), Update
// O(log n).
package lazyheap

// Package holdout implements a two-queue FIFO for deferring items that
// are temporarily not actionable without losing their place in line.
//
// Dequeue drains the primary queue; whichever tags come back before an
// actionable item is stale, they are moved to a leftover queue instead
// of requeued at the back of primary (which would starve them behind a
// constant stream of still-stale items). Recycle swaps leftover back
// into primary, giving every deferred item another pass once the
// caller believes conditions have changed.
package holdout

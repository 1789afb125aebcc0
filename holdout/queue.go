package holdout

// TagFunc computes a snapshot value for an item at the moment it is
// enqueued, used later by ValidFunc to decide whether anything has
// changed since.
type TagFunc func(item interface{}) int64

// ValidFunc reports whether item is actionable now, given the tag it
// was enqueued with. A typical implementation compares a current
// change counter against snapshot and returns true if it has advanced.
type ValidFunc func(item interface{}, snapshot int64) bool

type wrapped struct {
	item     interface{}
	snapshot int64
}

// Queue is a FIFO that defers items failing ValidFunc into a leftover
// queue instead of discarding or reordering them. A zero Queue is not
// usable; construct one with New.
type Queue struct {
	primary  []wrapped
	leftover []wrapped
	tag      TagFunc
	valid    ValidFunc
}

// New constructs an empty Queue.
func New(tag TagFunc, valid ValidFunc) *Queue {
	return &Queue{tag: tag, valid: valid}
}

// Enqueue appends item to the primary queue, tagging it with its
// current snapshot value.
func (q *Queue) Enqueue(item interface{}) {
	q.primary = append(q.primary, wrapped{item: item, snapshot: q.tag(item)})
}

// Dequeue pops items off the front of the primary queue until it finds
// one ValidFunc accepts, moving every rejected item to the leftover
// queue in the order encountered. Returns false if primary is drained
// without finding an actionable item.
//
// Complexity: O(k) where k is the number of stale items skipped.
func (q *Queue) Dequeue() (interface{}, bool) {
	for len(q.primary) > 0 {
		w := q.primary[0]
		q.primary = q.primary[1:]
		if q.valid(w.item, w.snapshot) {
			return w.item, true
		}
		q.leftover = append(q.leftover, w)
	}
	return nil, false
}

// Recycle swaps the leftover queue into primary position, moving
// whatever was left in primary into leftover (Dequeue always drains
// primary to empty before returning false, so by the time Recycle is
// useful primary is already empty). Stale tags are not recomputed; items
// validated on their original snapshot until re-enqueued.
func (q *Queue) Recycle() {
	q.primary, q.leftover = q.leftover, q.primary
}

// Len returns the combined number of items across both queues.
func (q *Queue) Len() int { return len(q.primary) + len(q.leftover) }

// Empty reports whether both queues are empty.
func (q *Queue) Empty() bool { return len(q.primary) == 0 && len(q.leftover) == 0 }

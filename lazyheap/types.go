package lazyheap

// IdentityFunc extracts the stable key an item is tracked by. Two
// values sharing an identity are the same logical entry to the heap,
// so pushing one after the other is an update, not an insert.
type IdentityFunc func(item interface{}) string

// GreaterFunc reports whether a outranks b. LazyHeap pops the
// maximal element by this order — it is not the container/heap
// "less" convention.
type GreaterFunc func(a, b interface{}) bool

// FreezeFunc returns a snapshot of item suitable for retaining after
// item itself may keep mutating. The default, set by New when freeze
// is nil, returns item unchanged, which is only safe for immutable
// item types.
type FreezeFunc func(item interface{}) interface{}

// entry is one slot in the underlying container/heap slice. A single
// logical item may have several entries alive at once; only the one
// reachable from LazyHeap.index is current.
type entry struct {
	data    interface{}
	deleted bool
}

// innerHeap adapts a []*entry to container/heap using gt to invert the
// library's min-heap convention into the max-heap LazyHeap exposes.
type innerHeap struct {
	entries []*entry
	gt      GreaterFunc
}

func (h innerHeap) Len() int { return len(h.entries) }

func (h innerHeap) Less(i, j int) bool {
	return h.gt(h.entries[i].data, h.entries[j].data)
}

func (h innerHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

func (h *innerHeap) Push(x interface{}) {
	h.entries = append(h.entries, x.(*entry))
}

func (h *innerHeap) Pop() interface{} {
	old := h.entries
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	h.entries = old[:n-1]
	return e
}

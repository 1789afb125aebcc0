package lazyheap

import (
	"container/heap"
	"fmt"
)

// LazyHeap is a max-heap keyed by IdentityFunc, ordered by GreaterFunc,
// supporting O(log n) updates via tombstoning. A zero LazyHeap is not
// usable; construct one with New.
type LazyHeap struct {
	inner    innerHeap
	id       IdentityFunc
	freeze   FreezeFunc
	index    map[string]*entry
	maxElems int
}

// New constructs an empty LazyHeap. maxElems <= 0 means unbounded. If
// freeze is nil, tombstoned entries keep referencing their live data
// unchanged — only safe when items are never mutated after Push.
func New(id IdentityFunc, gt GreaterFunc, freeze FreezeFunc, maxElems int) *LazyHeap {
	if freeze == nil {
		freeze = func(item interface{}) interface{} { return item }
	}
	return &LazyHeap{
		inner:    innerHeap{gt: gt},
		id:       id,
		freeze:   freeze,
		index:    make(map[string]*entry),
		maxElems: maxElems,
	}
}

// Len returns the number of live entries, not counting tombstones.
func (h *LazyHeap) Len() int { return len(h.index) }

// Push inserts item. If an entry with the same identity is already
// live, the old entry is tombstoned first, exactly as Update does —
// Push is Update's unconditional form.
//
// Complexity: O(log n), plus an O(n) prune in the rare case Push must
// make room under a capacity limit.
func (h *LazyHeap) Push(item interface{}) error {
	key := h.id(item)
	if old, ok := h.index[key]; ok {
		old.data = h.freeze(old.data)
		old.deleted = true
	}
	if h.maxElems > 0 && len(h.inner.entries) >= h.maxElems {
		h.prune()
		if len(h.inner.entries) >= h.maxElems {
			if old, ok := h.index[key]; ok && old.deleted {
				delete(h.index, key)
			}
			return fmt.Errorf("%w: %d entries", ErrCapacity, h.maxElems)
		}
	}
	e := &entry{data: item}
	heap.Push(&h.inner, e)
	h.index[key] = e
	return nil
}

// Update is an alias for Push: re-pushing an item under an identity
// already present tombstones the stale entry and inserts a fresh one.
// Kept as a distinct name because callers use it to express intent —
// "this item's ranking changed" rather than "this is new".
func (h *LazyHeap) Update(item interface{}) error {
	return h.Push(item)
}

// Pop removes and returns the highest-ranked live item, skipping any
// tombstoned entries it encounters along the way.
//
// Complexity: amortized O(log n); an individual call can cost
// O(m log m) if m tombstones sit above the next live entry.
func (h *LazyHeap) Pop() (interface{}, error) {
	for h.inner.Len() > 0 {
		e := heap.Pop(&h.inner).(*entry)
		if e.deleted {
			continue
		}
		delete(h.index, h.id(e.data))
		return e.data, nil
	}
	return nil, ErrEmpty
}

// Delete tombstones the live entry for key, if any. A no-op if key is
// not currently present. Unlike Pop, the underlying slot is not
// physically removed until it is popped or pruned.
func (h *LazyHeap) Delete(key string) {
	e, ok := h.index[key]
	if !ok {
		return
	}
	e.data = h.freeze(e.data)
	e.deleted = true
	delete(h.index, key)
}

// Has reports whether key currently names a live entry.
func (h *LazyHeap) Has(key string) bool {
	_, ok := h.index[key]
	return ok
}

// prune drops tombstoned entries and rebuilds the heap invariant over
// what remains. Called automatically by Push when at capacity.
//
// Complexity: O(n).
func (h *LazyHeap) prune() {
	live := h.inner.entries[:0]
	for _, e := range h.inner.entries {
		if !e.deleted {
			live = append(live, e)
		}
	}
	h.inner.entries = live
	heap.Init(&h.inner)
}

package lazyheap

import "errors"

var (
	// ErrEmpty indicates Pop was called on a heap with no live entries.
	ErrEmpty = errors.New("lazyheap: heap is empty")

	// ErrCapacity indicates Push was rejected because the heap is at
	// capacity and pruning tombstones did not free enough room.
	ErrCapacity = errors.New("lazyheap: at capacity")
)

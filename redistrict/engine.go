package redistrict

import (
	"fmt"
	"math"

	"github.com/nunomota/redistrict/earlystop"
	"github.com/nunomota/redistrict/entity"
	"github.com/nunomota/redistrict/holdout"
	"github.com/nunomota/redistrict/lazyheap"
	"github.com/nunomota/redistrict/lookup"
)

// heapKeyed is satisfied by both *entity.District and
// *entity.DistrictSnapshot, letting lazyheap's closures work whether
// they observe a live district or one frozen by an Update tombstone.
type heapKeyed interface {
	Ident() string
	FundingPerStudent() float64
}

// Run executes the greedy engine to convergence over eg and assignment
// (the initial school-to-district mapping), returning a Result
// summarizing the run. eg is mutated in place: on return, every
// district's membership reflects the moves the engine applied.
func Run(eg *entity.EntityGraph, assignment map[string]string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxSchoolsPerDistrict > 0 && o.MinSchoolsPerDistrict > o.MaxSchoolsPerDistrict {
		return nil, ErrInvalidBounds
	}
	if o.MinSchoolsPerDistrict <= 0 {
		return nil, ErrInvalidBounds
	}
	if len(eg.Districts()) == 0 {
		return nil, ErrNoDistricts
	}

	l, err := lookup.New(eg, assignment)
	if err != nil {
		return nil, err
	}

	initialInequality, err := Inequality(l)
	if err != nil {
		return nil, err
	}
	o.OnInit(initialInequality)

	stateMean, err := stateFundingPerStudent(l)
	if err != nil {
		return nil, err
	}

	gt := func(a, b interface{}) bool {
		ai, bi := a.(heapKeyed), b.(heapKeyed)
		return math.Abs(ai.FundingPerStudent()-stateMean) > math.Abs(bi.FundingPerStudent()-stateMean)
	}
	id := func(x interface{}) string { return x.(heapKeyed).Ident() }
	freeze := func(x interface{}) interface{} { return x.(*entity.District).Snapshot() }
	heap := lazyheap.New(id, gt, freeze, o.MaxHeapElems)

	for _, did := range l.Districts() {
		d, err := l.DistrictByID(did)
		if err != nil {
			return nil, err
		}
		if err := heap.Push(d); err != nil {
			return nil, err
		}
	}

	tag := func(item interface{}) int64 { return l.ChangeCounter(item.(string)) }
	valid := func(item interface{}, snapshot int64) bool { return l.ChangeCounter(item.(string)) > snapshot }
	holdoutQueue := holdout.New(tag, valid)

	stopper := earlystop.New(o.MaxStaleIterations, o.Tolerance)

	var allMoves []Move
	iteration := 0
	currentInequality := initialInequality

	for {
		if heap.Len() == 0 {
			refillHeapFromHoldout(heap, holdoutQueue, l)
			if heap.Len() == 0 && !holdoutQueue.Empty() {
				holdoutQueue.Recycle()
				refillHeapFromHoldout(heap, holdoutQueue, l)
			}
			if heap.Len() == 0 {
				break
			}
		}

		v, err := heap.Pop()
		if err != nil {
			break
		}
		did := v.(heapKeyed).Ident()

		moves, err := pickMoves(l, did, stateMean, o.MinSchoolsPerDistrict, o.MaxSchoolsPerDistrict)
		if err != nil {
			return nil, fmt.Errorf("redistrict: picking moves for %s: %w", did, err)
		}

		if len(moves) == 0 {
			holdoutQueue.Enqueue(did)
		} else {
			for _, m := range moves {
				if err := l.AssignSchool(m.SchoolID, m.From, m.To); err != nil {
					return nil, fmt.Errorf("redistrict: applying move %+v: %w", m, err)
				}
				o.OnMove(m)
				allMoves = append(allMoves, m)
			}
			// did itself always returns to the live heap since it just
			// received an improving batch and may have more to give.
			// Other touched districts (neighbors whose border or edge
			// counts shifted) are only refreshed if they are currently
			// live in the heap; a district sitting in the holdout queue
			// is left alone and picked back up through the normal
			// Recycle-then-valid flow once its change counter has moved.
			for _, touchedDid := range touchedDistricts(moves) {
				if touchedDid != did && !heap.Has(touchedDid) {
					continue
				}
				d, err := l.DistrictByID(touchedDid)
				if err != nil {
					return nil, err
				}
				if err := heap.Update(d); err != nil {
					return nil, err
				}
			}
		}

		iteration++
		currentInequality, err = Inequality(l)
		if err != nil {
			return nil, err
		}
		o.OnUpdate(iteration, currentInequality)

		if stopper.Update(currentInequality) {
			break
		}
	}

	o.OnEnd(currentInequality, iteration)

	return &Result{
		InitialInequality: initialInequality,
		FinalInequality:   currentInequality,
		Iterations:        iteration,
		Moves:             allMoves,
	}, nil
}

// refillHeapFromHoldout drains every currently-valid district out of the
// holdout queue's primary side and pushes it back onto the live heap.
// Districts still failing the holdout queue's validity check (nothing
// in their neighborhood has changed since they were set aside) are left
// behind in its leftover side.
func refillHeapFromHoldout(heap *lazyheap.LazyHeap, holdoutQueue *holdout.Queue, l *lookup.Lookup) {
	for {
		v, ok := holdoutQueue.Dequeue()
		if !ok {
			return
		}
		did := v.(string)
		d, err := l.DistrictByID(did)
		if err != nil {
			continue
		}
		_ = heap.Push(d)
	}
}

// touchedDistricts returns the distinct district IDs appearing as
// either endpoint of any move in moves.
func touchedDistricts(moves []Move) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range moves {
		for _, did := range [2]string{m.From, m.To} {
			if _, ok := seen[did]; !ok {
				seen[did] = struct{}{}
				out = append(out, did)
			}
		}
	}
	return out
}

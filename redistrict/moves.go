package redistrict

import (
	"math"

	"github.com/nunomota/redistrict/lookup"
)

// accumulator is a local, unapplied snapshot of a district's totals and
// membership count, mutated as pickMoves provisionally walks through a
// batch of candidate moves. Nothing here touches the Lookup until the
// caller applies the returned moves.
type accumulator struct {
	students int
	funding  float64
	count    int
}

func (a accumulator) fundingPerStudent() float64 {
	return a.funding / float64(a.students)
}

func (a accumulator) keyAgainst(stateMean float64) float64 {
	return math.Abs(a.fundingPerStudent() - stateMean)
}

// pickMoves greedily assembles a batch of single-school reassignments
// touching did — schools leaving did for a neighboring district, or
// schools entering did from a neighboring district's border — that
// each strictly reduce did's distance from stateMean at the moment
// they are considered, without taking either side of a move below
// minSchools or above maxSchools (maxSchools <= 0 means unbounded).
//
// Moves are evaluated against a running accumulator rather than the
// Lookup itself, so a district popped off the heap can be offered a
// whole improving batch atomically: either all of it is applied, or
// (if it turns out empty) the district is set aside in the holdout
// queue untouched.
//
// Complexity: O(deg(D) + Σ deg(neighbor)) — each border school (in did
// or in a neighboring district) is considered at most once per call.
func pickMoves(l *lookup.Lookup, did string, stateMean float64, minSchools, maxSchools int) ([]Move, error) {
	d, err := l.DistrictByID(did)
	if err != nil {
		return nil, err
	}
	acc := accumulator{students: d.TotalStudents(), funding: d.TotalFunding(), count: d.SchoolCount()}

	var moves []Move
	consideredOut := make(map[string]bool)
	consideredIn := make(map[string]bool)

	for {
		progressed, err := tryOutgoingMove(l, did, &acc, stateMean, minSchools, maxSchools, consideredOut, &moves)
		if err != nil {
			return nil, err
		}
		progressedIn, err := tryIncomingMove(l, did, &acc, stateMean, minSchools, maxSchools, consideredIn, &moves)
		if err != nil {
			return nil, err
		}
		if !progressed && !progressedIn {
			break
		}
	}

	return moves, nil
}

// tryOutgoingMove looks for one border school of did that, moved to one
// of its own neighboring districts, reduces did's distance from
// stateMean, applying the first one found to acc and returning true.
func tryOutgoingMove(l *lookup.Lookup, did string, acc *accumulator, stateMean float64, minSchools, maxSchools int, considered map[string]bool, moves *[]Move) (bool, error) {
	if acc.count <= minSchools {
		return false, nil
	}
	border, err := l.BorderSchools(did)
	if err != nil {
		return false, err
	}
	currentKey := acc.keyAgainst(stateMean)
	for _, sid := range border {
		if considered[sid] {
			continue
		}
		s, err := l.SchoolByID(sid)
		if err != nil {
			return false, err
		}
		targets, err := crossDistrictsOf(l, sid, did)
		if err != nil {
			return false, err
		}
		for _, toDid := range targets {
			toD, err := l.DistrictByID(toDid)
			if err != nil {
				return false, err
			}
			if maxSchools > 0 && toD.SchoolCount() >= maxSchools {
				continue
			}
			trial := accumulator{
				students: acc.students - s.TotalStudents,
				funding:  acc.funding - s.TotalFunding,
				count:    acc.count - 1,
			}
			if trial.students <= 0 {
				continue
			}
			if trial.keyAgainst(stateMean) < currentKey {
				*moves = append(*moves, Move{SchoolID: sid, From: did, To: toDid})
				*acc = trial
				considered[sid] = true
				return true, nil
			}
		}
		considered[sid] = true
	}
	return false, nil
}

// tryIncomingMove looks for one border school of a neighboring district
// that, moved into did, reduces did's distance from stateMean.
func tryIncomingMove(l *lookup.Lookup, did string, acc *accumulator, stateMean float64, minSchools, maxSchools int, considered map[string]bool, moves *[]Move) (bool, error) {
	if maxSchools > 0 && acc.count >= maxSchools {
		return false, nil
	}
	neighborDids, err := l.NeighborDistricts(did)
	if err != nil {
		return false, err
	}
	currentKey := acc.keyAgainst(stateMean)
	for _, fromDid := range neighborDids {
		fromD, err := l.DistrictByID(fromDid)
		if err != nil {
			return false, err
		}
		if fromD.SchoolCount() <= minSchools {
			continue
		}
		fromBorder, err := l.BorderSchools(fromDid)
		if err != nil {
			return false, err
		}
		for _, sid := range fromBorder {
			if considered[sid] {
				continue
			}
			isNeighbor, err := hasNeighborIn(l, sid, did)
			if err != nil {
				return false, err
			}
			if !isNeighbor {
				continue
			}
			s, err := l.SchoolByID(sid)
			if err != nil {
				return false, err
			}
			trial := accumulator{
				students: acc.students + s.TotalStudents,
				funding:  acc.funding + s.TotalFunding,
				count:    acc.count + 1,
			}
			if trial.keyAgainst(stateMean) < currentKey {
				*moves = append(*moves, Move{SchoolID: sid, From: fromDid, To: did})
				*acc = trial
				considered[sid] = true
				return true, nil
			}
			considered[sid] = true
		}
	}
	return false, nil
}

// crossDistrictsOf returns the distinct districts (other than exclude)
// that sid's neighbors currently belong to, sorted for determinism.
func crossDistrictsOf(l *lookup.Lookup, sid, exclude string) ([]string, error) {
	all, err := schoolNeighborDistricts(l, sid)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, did := range all {
		if did != exclude {
			out = append(out, did)
		}
	}
	return out, nil
}

func schoolNeighborDistricts(l *lookup.Lookup, sid string) ([]string, error) {
	did, err := l.DistrictOf(sid)
	if err != nil {
		return nil, err
	}
	neighbors, err := l.SchoolNeighbors(sid)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var out []string
	for _, t := range neighbors {
		tDid, err := l.DistrictOf(t)
		if err != nil {
			return nil, err
		}
		if tDid == did {
			continue
		}
		if _, ok := seen[tDid]; ok {
			continue
		}
		seen[tDid] = struct{}{}
		out = append(out, tDid)
	}
	return out, nil
}

func hasNeighborIn(l *lookup.Lookup, sid, did string) (bool, error) {
	neighbors, err := l.SchoolNeighbors(sid)
	if err != nil {
		return false, err
	}
	for _, t := range neighbors {
		tDid, err := l.DistrictOf(t)
		if err != nil {
			return false, err
		}
		if tDid == did {
			return true, nil
		}
	}
	return false, nil
}

package lookup

import (
	"fmt"
	"sort"

	"github.com/nunomota/redistrict/entity"
)

// Lookup indexes a fixed set of districts over a fixed entity graph: it
// does not add or remove schools or districts on its own, only
// reassigns a school from one existing district to another.
type Lookup struct {
	eg *entity.EntityGraph

	districtOf map[string]string            // school ID -> district ID
	border     map[string]map[string]struct{} // district ID -> border school IDs
	changes    map[string]int64             // district ID -> monotonic change counter
	edges      *edgeMatrix
}

// New builds a Lookup from assignment, a map of school ID to district
// ID. Every school in eg must appear in assignment exactly once, and
// every district named in assignment must already exist in eg.
//
// Complexity: O(V+E) over eg's schools and neighbor edges.
func New(eg *entity.EntityGraph, assignment map[string]string) (*Lookup, error) {
	districtOf := make(map[string]string, len(assignment))
	for _, s := range eg.Schools() {
		did, ok := assignment[s.ID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrSchoolNotAssigned, s.ID)
		}
		d, err := eg.District(did)
		if err != nil {
			return nil, err
		}
		d.AddSchool(s)
		districtOf[s.ID] = did
	}

	districtIDs := make([]string, 0, len(eg.Districts()))
	for _, d := range eg.Districts() {
		districtIDs = append(districtIDs, d.ID)
	}
	sort.Strings(districtIDs)

	l := &Lookup{
		eg:         eg,
		districtOf: districtOf,
		border:     make(map[string]map[string]struct{}, len(districtIDs)),
		changes:    make(map[string]int64, len(districtIDs)),
		edges:      newEdgeMatrix(districtIDs),
	}
	for _, did := range districtIDs {
		l.border[did] = make(map[string]struct{})
	}

	for _, s := range eg.Schools() {
		neighbors, err := eg.SchoolNeighbors(s.ID)
		if err != nil {
			return nil, err
		}
		myDid := districtOf[s.ID]
		for _, t := range neighbors {
			theirDid := districtOf[t]
			if theirDid != myDid {
				l.border[myDid][s.ID] = struct{}{}
				l.edges.data[l.edges.index[myDid]][l.edges.index[theirDid]]++
			}
		}
	}

	return l, nil
}

// SchoolByID is a thin pass-through to the underlying entity graph,
// kept here so callers driving the engine off a Lookup don't also need
// to thread the EntityGraph through separately.
func (l *Lookup) SchoolByID(sid string) (*entity.School, error) {
	return l.eg.School(sid)
}

// DistrictByID is a thin pass-through to the underlying entity graph.
func (l *Lookup) DistrictByID(did string) (*entity.District, error) {
	return l.eg.District(did)
}

// SchoolNeighbors is a thin pass-through to the underlying entity graph.
func (l *Lookup) SchoolNeighbors(sid string) ([]string, error) {
	return l.eg.SchoolNeighbors(sid)
}

// DistrictOf returns the district a school is currently assigned to.
func (l *Lookup) DistrictOf(sid string) (string, error) {
	did, ok := l.districtOf[sid]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrSchoolNotAssigned, sid)
	}
	return did, nil
}

// BorderSchools returns the IDs of schools in did with at least one
// neighbor assigned to a different district, sorted for determinism.
func (l *Lookup) BorderSchools(did string) ([]string, error) {
	set, ok := l.border[did]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDistrictNotFound, did)
	}
	out := make([]string, 0, len(set))
	for sid := range set {
		out = append(out, sid)
	}
	sort.Strings(out)
	return out, nil
}

// NeighborDistricts returns the IDs of districts sharing at least one
// edge with did, sorted for determinism.
func (l *Lookup) NeighborDistricts(did string) ([]string, error) {
	if _, ok := l.border[did]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrDistrictNotFound, did)
	}
	return l.edges.neighborsOf(did), nil
}

// EdgeCount returns the number of edges directly between districts a
// and b (0 if a == b or they share no edge).
func (l *Lookup) EdgeCount(a, b string) (int64, error) {
	if _, ok := l.border[a]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrDistrictNotFound, a)
	}
	if _, ok := l.border[b]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrDistrictNotFound, b)
	}
	if a == b {
		return 0, nil
	}
	return l.edges.get(a, b), nil
}

// ChangeCounter returns the number of times did's local neighborhood
// (its membership, border set, or edges to other districts) has
// changed since Lookup was constructed. Monotonically non-decreasing.
func (l *Lookup) ChangeCounter(did string) int64 {
	return l.changes[did]
}

// Districts returns every district ID tracked by this Lookup, sorted.
func (l *Lookup) Districts() []string {
	out := make([]string, len(l.edges.ids))
	copy(out, l.edges.ids)
	return out
}

func (l *Lookup) isBorder(did, sid string) bool {
	_, ok := l.border[did][sid]
	return ok
}

// recomputeBorder recomputes whether sid (a member of did) belongs in
// did's border set, given did's and sid's current neighbors.
func (l *Lookup) recomputeBorder(sid, did string) error {
	neighbors, err := l.eg.SchoolNeighbors(sid)
	if err != nil {
		return err
	}
	isBorder := false
	for _, t := range neighbors {
		if l.districtOf[t] != did {
			isBorder = true
			break
		}
	}
	if isBorder {
		l.border[did][sid] = struct{}{}
	} else {
		delete(l.border[did], sid)
	}
	return nil
}

// AssignSchool moves sid from its current district to toDid. sid must
// currently be assigned to a district other than toDid; callers are
// expected to have already confirmed sid belongs to fromDid's border
// (the only schools a greedy move ever considers moving), but AssignSchool
// itself checks against sid's actual current assignment rather than
// trusting the caller's fromDid, so a stale fromDid is reported as
// ErrNotInDistrict rather than silently corrupting the index.
//
// Complexity: O(deg(sid)).
func (l *Lookup) AssignSchool(sid, fromDid, toDid string) error {
	actualFrom, ok := l.districtOf[sid]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSchoolNotAssigned, sid)
	}
	if actualFrom != fromDid {
		return fmt.Errorf("%w: %s is in %s, not %s", ErrNotInDistrict, sid, actualFrom, fromDid)
	}
	if fromDid == toDid {
		return fmt.Errorf("%w: %s", ErrSameDistrict, fromDid)
	}
	if _, ok := l.border[toDid]; !ok {
		return fmt.Errorf("%w: %s", ErrDistrictNotFound, toDid)
	}

	school, err := l.eg.School(sid)
	if err != nil {
		return err
	}
	fromDistrict, err := l.eg.District(fromDid)
	if err != nil {
		return err
	}
	toDistrict, err := l.eg.District(toDid)
	if err != nil {
		return err
	}
	neighbors, err := l.eg.SchoolNeighbors(sid)
	if err != nil {
		return err
	}

	for _, t := range neighbors {
		tDid := l.districtOf[t]
		switch tDid {
		case fromDid:
			// Was internal to fromDid, becomes a fromDid-toDid cross edge.
			l.edges.add(toDid, fromDid, 1)
		case toDid:
			// Was a fromDid-toDid cross edge, becomes internal to toDid.
			l.edges.add(fromDid, toDid, -1)
		default:
			l.edges.add(fromDid, tDid, -1)
			l.edges.add(toDid, tDid, 1)
		}
	}

	// N = {fromDid, toDid} ∪ neighbors(fromDid) ∪ neighbors(toDid), read
	// from the edge matrix after the update above: every district directly
	// bordering either endpoint of the move, not only the subset reachable
	// through sid's own neighbor schools.
	touched := map[string]struct{}{fromDid: {}, toDid: {}}
	for _, d := range l.edges.neighborsOf(fromDid) {
		touched[d] = struct{}{}
	}
	for _, d := range l.edges.neighborsOf(toDid) {
		touched[d] = struct{}{}
	}

	fromDistrict.RemoveSchool(school)
	toDistrict.AddSchool(school)
	l.districtOf[sid] = toDid
	delete(l.border[fromDid], sid)

	if err := l.recomputeBorder(sid, toDid); err != nil {
		return err
	}
	for _, t := range neighbors {
		if err := l.recomputeBorder(t, l.districtOf[t]); err != nil {
			return err
		}
	}

	for did := range touched {
		l.changes[did]++
	}

	return nil
}

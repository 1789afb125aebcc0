package entity

import "fmt"

// School is an immutable fact record for a single school building.
//
// TotalStudents and TotalFunding are the school's own enrollment and
// funding figures, independent of whatever district currently claims
// it. Neighbor relationships are stored on EntityGraph, not here, so a
// School value can be freely copied and compared without aliasing a
// mutable adjacency set.
type School struct {
	ID            string
	TotalStudents int
	TotalFunding  float64
}

// NewSchool validates and constructs a School. Negative totals are the
// caller's mistake, not this package's to police — they are accepted
// as given, matching the input schema in SPEC_FULL.md.
func NewSchool(id string, totalStudents int, totalFunding float64) (*School, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return &School{ID: id, TotalStudents: totalStudents, TotalFunding: totalFunding}, nil
}

// FundingPerStudent returns TotalFunding / TotalStudents. Callers with
// a zero-enrollment school get +Inf or NaN, same as the original.
func (s *School) FundingPerStudent() float64 {
	return s.TotalFunding / float64(s.TotalStudents)
}

// District is a mutable aggregate over a set of member schools.
//
// TotalStudents and TotalFunding are maintained incrementally by
// AddSchool/RemoveSchool rather than recomputed from membership, so
// reading them is O(1) regardless of district size. Preconditions are
// the caller's responsibility: AddSchool assumes the school is not
// already a member, and violating that silently corrupts the running
// totals rather than erroring, to keep the hot path branchless.
// RemoveSchool is the one exception — removing a non-member is a
// silent no-op, matching the behavior Lookup depends on when retracting
// a border assignment that was never actually made.
type District struct {
	ID            string
	totalStudents int
	totalFunding  float64
	members       map[string]struct{}
}

// NewDistrict constructs an empty District.
func NewDistrict(id string) (*District, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return &District{ID: id, members: make(map[string]struct{})}, nil
}

// TotalStudents returns the sum of member schools' enrollment.
func (d *District) TotalStudents() int { return d.totalStudents }

// TotalFunding returns the sum of member schools' funding.
func (d *District) TotalFunding() float64 { return d.totalFunding }

// FundingPerStudent returns TotalFunding / TotalStudents.
func (d *District) FundingPerStudent() float64 {
	return d.totalFunding / float64(d.totalStudents)
}

// SchoolCount returns the number of member schools.
func (d *District) SchoolCount() int { return len(d.members) }

// HasSchool reports whether sid is currently a member.
func (d *District) HasSchool(sid string) bool {
	_, ok := d.members[sid]
	return ok
}

// Members returns the member school IDs. The returned slice is a copy;
// mutating it does not affect the district.
func (d *District) Members() []string {
	out := make([]string, 0, len(d.members))
	for sid := range d.members {
		out = append(out, sid)
	}
	return out
}

// AddSchool adds s to the district and folds its totals in. Does not
// check for an existing membership; see the type comment.
func (d *District) AddSchool(s *School) {
	d.members[s.ID] = struct{}{}
	d.totalStudents += s.TotalStudents
	d.totalFunding += s.TotalFunding
}

// RemoveSchool removes s from the district and backs its totals out.
// A no-op if s is not currently a member.
func (d *District) RemoveSchool(s *School) {
	if _, ok := d.members[s.ID]; !ok {
		return
	}
	delete(d.members, s.ID)
	d.totalStudents -= s.TotalStudents
	d.totalFunding -= s.TotalFunding
}

// Snapshot returns a frozen copy of the district's identity and totals,
// used by lazyheap when a live *District is tombstoned mid-update so
// the stale heap node's ordering key stops tracking further mutation.
func (d *District) Snapshot() *DistrictSnapshot {
	return &DistrictSnapshot{ID: d.ID, Students: d.totalStudents, Funding: d.totalFunding}
}

func (d *District) String() string {
	return fmt.Sprintf("District(%s, students=%d, funding=%.2f, schools=%d)", d.ID, d.totalStudents, d.totalFunding, len(d.members))
}

// DistrictSnapshot is an immutable, point-in-time view of a District's
// key totals. It implements the same Ident/FundingPerStudent surface as
// *District so lazyheap's ordering closures work unchanged whether they
// see a live district or a frozen one.
type DistrictSnapshot struct {
	ID       string
	Students int
	Funding  float64
}

// Ident returns the district ID.
func (s *DistrictSnapshot) Ident() string { return s.ID }

// FundingPerStudent returns Funding / Students.
func (s *DistrictSnapshot) FundingPerStudent() float64 {
	return s.Funding / float64(s.Students)
}

// Ident returns the district ID, satisfying the same interface as DistrictSnapshot.
func (d *District) Ident() string { return d.ID }

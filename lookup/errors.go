package lookup

import "errors"

var (
	// ErrSchoolNotAssigned indicates a school in the entity graph has no
	// entry in the initial assignment map, or a query named a school with
	// no district assignment.
	ErrSchoolNotAssigned = errors.New("lookup: school not assigned to any district")

	// ErrDistrictNotFound indicates a district ID not present in the index.
	ErrDistrictNotFound = errors.New("lookup: district not found")

	// ErrNotInDistrict indicates AssignSchool was asked to move a school
	// out of a district it is not currently a member of.
	ErrNotInDistrict = errors.New("lookup: school is not a member of the source district")

	// ErrSameDistrict indicates AssignSchool was asked to move a school
	// to the district it already belongs to.
	ErrSameDistrict = errors.New("lookup: source and destination district are the same")
)

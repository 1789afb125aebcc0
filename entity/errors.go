package entity

import "errors"

// Sentinel errors for entity operations. Wrapped with fmt.Errorf("%w: ...")
// at call sites and checked with errors.Is by callers.
var (
	// ErrEmptyID indicates a School or District was constructed with an empty identifier.
	ErrEmptyID = errors.New("entity: identifier is empty")

	// ErrSchoolExists indicates AddSchool was called with an ID already present in the graph.
	ErrSchoolExists = errors.New("entity: school already exists")

	// ErrSchoolNotFound indicates an operation referenced a school ID not present in the graph.
	ErrSchoolNotFound = errors.New("entity: school not found")

	// ErrDistrictExists indicates AddDistrict was called with an ID already present in the graph.
	ErrDistrictExists = errors.New("entity: district already exists")

	// ErrDistrictNotFound indicates an operation referenced a district ID not present in the graph.
	ErrDistrictNotFound = errors.New("entity: district not found")
)

package redistrict

import "errors"

var (
	// ErrNoDistricts indicates Run was called with an EntityGraph carrying no districts.
	ErrNoDistricts = errors.New("redistrict: no districts to optimize")

	// ErrInvalidBounds indicates MinSchoolsPerDistrict is non-positive, or
	// MinSchoolsPerDistrict > MaxSchoolsPerDistrict with a positive
	// MaxSchoolsPerDistrict (a non-positive maximum means unbounded).
	ErrInvalidBounds = errors.New("redistrict: invalid min/max schools per district")
)

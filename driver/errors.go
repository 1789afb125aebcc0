package driver

import "errors"

// ErrNoSchools is returned when BuildEntityGraph is given an empty
// school list.
var ErrNoSchools = errors.New("driver: no schools")

// ErrUnassignedSchool is returned when a school referenced by the
// input data has no entry in the assignment map.
var ErrUnassignedSchool = errors.New("driver: school has no district assignment")

// ErrUnknownDistrict is returned when an assignment references a
// district ID absent from the DistrictInfo list.
var ErrUnknownDistrict = errors.New("driver: assignment references unknown district")

// ErrInvalidRunCount is returned by ExpectableRun when n <= 0.
var ErrInvalidRunCount = errors.New("driver: n_runs must be positive")

// ErrInvalidGridDimensions is returned by SyntheticState when width,
// height, or numDistricts is not positive.
var ErrInvalidGridDimensions = errors.New("driver: grid dimensions must be positive")

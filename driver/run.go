package driver

import (
	"github.com/nunomota/redistrict/metrics"
	"github.com/nunomota/redistrict/redistrict"
)

// Run builds a fresh EntityGraph from the given inputs and executes a
// single greedy optimization pass over it via metrics.Record, returning
// the complete run record.
func Run(schools []SchoolInfo, districts []DistrictInfo, assignment Assignment, opts ...redistrict.Option) (*metrics.Metrics, error) {
	eg, initial, err := BuildEntityGraph(schools, districts, assignment)
	if err != nil {
		return nil, err
	}
	return metrics.Record(eg, initial, opts...)
}

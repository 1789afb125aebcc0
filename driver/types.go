package driver

import (
	"fmt"

	"github.com/nunomota/redistrict/entity"
)

// SchoolInfo is the external, data-layer shape of a single school
// record: its id, total enrollment, total funding, and the ids of its
// bordering schools. Pre-filtering (dropping zero-student or
// zero-funding schools, normalizing ids, pruning cross-state edges) is
// the data layer's responsibility; BuildEntityGraph assumes it already
// happened.
type SchoolInfo struct {
	ID            string
	TotalStudents int
	TotalFunding  float64
	NeighborIDs   []string
}

// DistrictInfo is the external shape of a district record. The core
// only needs the id; per-student revenue fields collaborators may
// carry alongside it are derived by the engine from its member
// schools, not read from here.
type DistrictInfo struct {
	ID string
}

// Assignment maps a school id to the id of the district it currently
// belongs to.
type Assignment map[string]string

// BuildEntityGraph assembles an entity.EntityGraph from the external
// input shapes: it registers every school and district, wires the
// declared neighbor relation, and assigns each school to its district
// per assignment. It returns the graph together with a school id to
// initial district id map ready to pass to redistrict.Run.
//
// BuildEntityGraph assumes every school referenced from any adjacency
// or assignment record is present in schools, per spec.md §6's
// pre-filtering contract; it does not attempt to recover from a
// dangling reference beyond reporting it.
func BuildEntityGraph(schools []SchoolInfo, districts []DistrictInfo, assignment Assignment) (*entity.EntityGraph, map[string]string, error) {
	if len(schools) == 0 {
		return nil, nil, ErrNoSchools
	}

	eg := entity.NewEntityGraph()

	for _, si := range schools {
		s, err := entity.NewSchool(si.ID, si.TotalStudents, si.TotalFunding)
		if err != nil {
			return nil, nil, fmt.Errorf("driver: school %s: %w", si.ID, err)
		}
		if err := eg.AddSchool(s); err != nil {
			return nil, nil, err
		}
	}

	for _, di := range districts {
		d, err := entity.NewDistrict(di.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("driver: district %s: %w", di.ID, err)
		}
		if err := eg.AddDistrict(d); err != nil {
			return nil, nil, err
		}
	}

	for _, si := range schools {
		for _, nid := range si.NeighborIDs {
			if err := eg.AddNeighbor(si.ID, nid); err != nil {
				return nil, nil, fmt.Errorf("driver: neighbor %s-%s: %w", si.ID, nid, err)
			}
		}
	}

	out := make(map[string]string, len(schools))
	for _, si := range schools {
		did, ok := assignment[si.ID]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnassignedSchool, si.ID)
		}
		d, err := eg.District(did)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownDistrict, did)
		}
		s, err := eg.School(si.ID)
		if err != nil {
			return nil, nil, err
		}
		d.AddSchool(s)
		out[si.ID] = did
	}

	return eg, out, nil
}

package entity

import (
	"errors"
	"fmt"

	"github.com/nunomota/redistrict/core"
)

// EntityGraph owns the school and district catalogs and the school
// neighbor relation. The neighbor relation is stored as a single
// undirected edge per pair in an internal *core.Graph, so declaring a
// neighbor relation from either school's side of the input data is
// enough for both to see it.
type EntityGraph struct {
	graph     *core.Graph
	schools   map[string]*School
	districts map[string]*District
}

// NewEntityGraph returns an empty EntityGraph.
func NewEntityGraph() *EntityGraph {
	return &EntityGraph{
		graph:     core.NewGraph(),
		schools:   make(map[string]*School),
		districts: make(map[string]*District),
	}
}

// AddSchool registers s and its vertex in the neighbor graph. Returns
// ErrSchoolExists if a school with this ID is already present.
func (eg *EntityGraph) AddSchool(s *School) error {
	if _, ok := eg.schools[s.ID]; ok {
		return fmt.Errorf("%w: %s", ErrSchoolExists, s.ID)
	}
	if err := eg.graph.AddVertex(s.ID); err != nil {
		return err
	}
	eg.schools[s.ID] = s
	return nil
}

// School returns the school registered under id.
func (eg *EntityGraph) School(id string) (*School, error) {
	s, ok := eg.schools[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSchoolNotFound, id)
	}
	return s, nil
}

// Schools returns every registered school, in no particular order.
func (eg *EntityGraph) Schools() []*School {
	out := make([]*School, 0, len(eg.schools))
	for _, s := range eg.schools {
		out = append(out, s)
	}
	return out
}

// AddNeighbor declares aID and bID as neighboring schools. Both IDs
// must already be registered via AddSchool. Declaring the same pair
// more than once, or from either direction, is a no-op after the
// first call.
func (eg *EntityGraph) AddNeighbor(aID, bID string) error {
	if _, ok := eg.schools[aID]; !ok {
		return fmt.Errorf("%w: %s", ErrSchoolNotFound, aID)
	}
	if _, ok := eg.schools[bID]; !ok {
		return fmt.Errorf("%w: %s", ErrSchoolNotFound, bID)
	}
	if eg.graph.HasEdge(aID, bID) {
		return nil
	}
	_, err := eg.graph.AddEdge(aID, bID, 0)
	if err != nil && !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		return err
	}
	return nil
}

// SchoolNeighbors returns the IDs of schools adjacent to sid.
func (eg *EntityGraph) SchoolNeighbors(sid string) ([]string, error) {
	if _, ok := eg.schools[sid]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrSchoolNotFound, sid)
	}
	return eg.graph.NeighborIDs(sid)
}

// AddDistrict registers an empty district. Returns ErrDistrictExists if
// a district with this ID is already present.
func (eg *EntityGraph) AddDistrict(d *District) error {
	if _, ok := eg.districts[d.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDistrictExists, d.ID)
	}
	eg.districts[d.ID] = d
	return nil
}

// District returns the district registered under id.
func (eg *EntityGraph) District(id string) (*District, error) {
	d, ok := eg.districts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDistrictNotFound, id)
	}
	return d, nil
}

// RemoveDistrict drops a district from the catalog, used once a
// district's last school has been reassigned away from it.
func (eg *EntityGraph) RemoveDistrict(id string) {
	delete(eg.districts, id)
}

// Districts returns every live district, in no particular order.
func (eg *EntityGraph) Districts() []*District {
	out := make([]*District, 0, len(eg.districts))
	for _, d := range eg.districts {
		out = append(out, d)
	}
	return out
}

// SchoolCount returns the number of registered schools.
func (eg *EntityGraph) SchoolCount() int { return len(eg.schools) }

// DistrictCount returns the number of live districts.
func (eg *EntityGraph) DistrictCount() int { return len(eg.districts) }

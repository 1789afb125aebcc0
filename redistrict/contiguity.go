package redistrict

import "github.com/nunomota/redistrict/lookup"

// CheckContiguity reports whether did's member schools form a single
// connected component under the school-neighbor graph. The engine
// never calls this itself — move-picking in this package has no notion
// of contiguity, matching the Non-goal that redistricting moves are
// not required to preserve it — but a caller who wants to inspect the
// result of a run for spatial coherence can call it per district.
//
// Complexity: O(V+E) restricted to did's induced subgraph.
func CheckContiguity(l *lookup.Lookup, did string) (bool, error) {
	d, err := l.DistrictByID(did)
	if err != nil {
		return false, err
	}
	members := d.Members()
	if len(members) <= 1 {
		return true, nil
	}

	inDistrict := make(map[string]struct{}, len(members))
	for _, sid := range members {
		inDistrict[sid] = struct{}{}
	}

	visited := make(map[string]struct{}, len(members))
	queue := []string{members[0]}
	visited[members[0]] = struct{}{}

	for len(queue) > 0 {
		sid := queue[0]
		queue = queue[1:]

		neighbors, err := l.SchoolNeighbors(sid)
		if err != nil {
			return false, err
		}
		for _, t := range neighbors {
			if _, ok := inDistrict[t]; !ok {
				continue
			}
			if _, ok := visited[t]; ok {
				continue
			}
			visited[t] = struct{}{}
			queue = append(queue, t)
		}
	}

	return len(visited) == len(members), nil
}

package lookup

import "sort"

// edgeMatrix is a small dense |D|x|D| int64 matrix indexed by district
// ID, used to track edge multiplicity between every pair of districts.
// Modeled on the Index-plus-Data shape the teacher's matrix package
// uses for its adjacency matrices, trimmed to the one fixed-size,
// symmetric, integer-valued case this package needs.
type edgeMatrix struct {
	index map[string]int
	ids   []string
	data  [][]int64
}

// newEdgeMatrix allocates a |ids|x|ids| zero matrix with a stable
// index assignment.
func newEdgeMatrix(ids []string) *edgeMatrix {
	idx := make(map[string]int, len(ids))
	data := make([][]int64, len(ids))
	for i, id := range ids {
		idx[id] = i
		data[i] = make([]int64, len(ids))
	}
	return &edgeMatrix{index: idx, ids: ids, data: data}
}

func (m *edgeMatrix) add(a, b string, delta int64) {
	i, j := m.index[a], m.index[b]
	m.data[i][j] += delta
	if i != j {
		m.data[j][i] += delta
	}
}

func (m *edgeMatrix) get(a, b string) int64 {
	return m.data[m.index[a]][m.index[b]]
}

// neighborsOf returns every district ID with nonzero edge count to did,
// sorted for determinism.
func (m *edgeMatrix) neighborsOf(did string) []string {
	i, ok := m.index[did]
	if !ok {
		return nil
	}
	var out []string
	for j, other := range m.ids {
		if j != i && m.data[i][j] > 0 {
			out = append(out, other)
		}
	}
	sort.Strings(out)
	return out
}

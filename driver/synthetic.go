package driver

import (
	"fmt"

	"github.com/nunomota/redistrict/entity"
	"github.com/nunomota/redistrict/gridgraph"
)

// SyntheticState builds a deterministic EntityGraph for demos,
// benchmarks, and property tests that need many schools without a
// real data source. It lays out schools on a width*height grid, one
// per land cell, with 4-connectivity neighbor edges from gridgraph, and
// assigns them to numDistricts districts in contiguous row bands.
//
// Funding and enrollment are a function of grid position only (no
// randomness, no seed parameter needed): a school at row y has
// TotalFunding = 1000*(y+1) and TotalStudents = 50, so row bands near
// the top of the grid are poorer than those near the bottom and the
// greedy engine has real inequality to work against.
//
// Grids at least 3 cells wide are carved with a full-height water column
// at x = width/2, splitting the land into two blocks. gridgraph.ConnectedComponents
// and gridgraph.ExpandIsland then find and bridge the minimal-cost path
// reconnecting them, so the layout exercises the same island-detection and
// bridging logic a real irregular service-area boundary would need, rather
// than handing the engine a trivially connected rectangle.
func SyntheticState(width, height, numDistricts int) (*entity.EntityGraph, map[string]string, error) {
	if width <= 0 || height <= 0 || numDistricts <= 0 {
		return nil, nil, ErrInvalidGridDimensions
	}

	opts := gridgraph.DefaultGridOptions()

	values := make([][]int, height)
	for y := 0; y < height; y++ {
		values[y] = make([]int, width)
		for x := 0; x < width; x++ {
			values[y][x] = 1
		}
	}
	if width >= 3 {
		gap := width / 2
		for y := 0; y < height; y++ {
			values[y][gap] = 0
		}
	}

	gg, err := gridgraph.NewGridGraph(values, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("driver: synthetic grid: %w", err)
	}

	components := gg.ConnectedComponents()[1]
	if len(components) >= 2 {
		path, _, err := gg.ExpandIsland(components[0], components[1])
		if err != nil {
			return nil, nil, fmt.Errorf("driver: bridging synthetic islands: %w", err)
		}
		for _, c := range path {
			values[c.Y][c.X] = 1
		}
		gg, err = gridgraph.NewGridGraph(values, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("driver: rebuilding bridged grid: %w", err)
		}
	}

	isLand := func(x, y int) bool { return values[y][x] >= opts.LandThreshold }

	cg := gg.ToCoreGraph()

	eg := entity.NewEntityGraph()
	for _, vid := range cg.Vertices() {
		var x, y int
		if _, err := fmt.Sscanf(vid, "%d,%d", &x, &y); err != nil {
			return nil, nil, fmt.Errorf("driver: synthetic vertex id %q: %w", vid, err)
		}
		if !isLand(x, y) {
			continue
		}
		s, err := entity.NewSchool(vid, 50, float64(1000*(y+1)))
		if err != nil {
			return nil, nil, err
		}
		if err := eg.AddSchool(s); err != nil {
			return nil, nil, err
		}
	}

	for _, e := range cg.Edges() {
		var fx, fy, tx, ty int
		if _, err := fmt.Sscanf(e.From, "%d,%d", &fx, &fy); err != nil {
			return nil, nil, fmt.Errorf("driver: synthetic edge endpoint %q: %w", e.From, err)
		}
		if _, err := fmt.Sscanf(e.To, "%d,%d", &tx, &ty); err != nil {
			return nil, nil, fmt.Errorf("driver: synthetic edge endpoint %q: %w", e.To, err)
		}
		if !isLand(fx, fy) || !isLand(tx, ty) {
			continue
		}
		if err := eg.AddNeighbor(e.From, e.To); err != nil {
			return nil, nil, err
		}
	}

	rowsPerDistrict := height / numDistricts
	if rowsPerDistrict == 0 {
		rowsPerDistrict = 1
	}

	districtOf := func(y int) string {
		band := y / rowsPerDistrict
		if band >= numDistricts {
			band = numDistricts - 1
		}
		return fmt.Sprintf("DIST_%d", band)
	}

	madeDistrict := make(map[string]bool, numDistricts)
	assignment := make(map[string]string, width*height)

	for y := 0; y < height; y++ {
		did := districtOf(y)
		for x := 0; x < width; x++ {
			if !isLand(x, y) {
				continue
			}
			if !madeDistrict[did] {
				d, err := entity.NewDistrict(did)
				if err != nil {
					return nil, nil, err
				}
				if err := eg.AddDistrict(d); err != nil {
					return nil, nil, err
				}
				madeDistrict[did] = true
			}
			d, err := eg.District(did)
			if err != nil {
				return nil, nil, err
			}
			sid := fmt.Sprintf("%d,%d", x, y)
			s, err := eg.School(sid)
			if err != nil {
				return nil, nil, err
			}
			d.AddSchool(s)
			assignment[sid] = did
		}
	}

	return eg, assignment, nil
}

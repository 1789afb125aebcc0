package redistrict

import (
	"math"

	"github.com/nunomota/redistrict/entity"
	"github.com/nunomota/redistrict/lookup"
)

// stateFundingPerStudent returns total funding / total students across
// every district Lookup tracks.
func stateFundingPerStudent(l *lookup.Lookup) (float64, error) {
	var students int
	var funding float64
	for _, did := range l.Districts() {
		d, err := l.DistrictByID(did)
		if err != nil {
			return 0, err
		}
		students += d.TotalStudents()
		funding += d.TotalFunding()
	}
	return funding / float64(students), nil
}

// Inequality computes the spatial inequality of the current assignment:
// for each district D, let N⁺(D) = neighbors(D) ∪ {D}; average D's
// absolute funding-per-student gap to every member of N⁺(D) (including
// itself, which always contributes 0), sum that average over every D,
// and normalize by the unweighted sum of every district's
// funding-per-student. A value of 0 means every district matches all
// of its immediate neighbors exactly; larger values mean funding is
// more unevenly distributed across district borders.
func Inequality(l *lookup.Lookup) (float64, error) {
	dids := l.Districts()
	districts := make(map[string]*entity.District, len(dids))
	var sumY float64
	for _, did := range dids {
		d, err := l.DistrictByID(did)
		if err != nil {
			return 0, err
		}
		districts[did] = d
		sumY += d.FundingPerStudent()
	}

	var total float64
	for _, did := range dids {
		y := districts[did].FundingPerStudent()

		neighbors, err := l.NeighborDistricts(did)
		if err != nil {
			return 0, err
		}

		var gapSum float64
		for _, nd := range neighbors {
			gapSum += math.Abs(y - districts[nd].FundingPerStudent())
		}
		// D itself is always in N⁺(D) and contributes |y(D)-y(D)| = 0.
		nPlusSize := float64(len(neighbors) + 1)

		total += gapSum / nPlusSize
	}

	return total / sumY, nil
}

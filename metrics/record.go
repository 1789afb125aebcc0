package metrics

import (
	"time"

	"github.com/nunomota/redistrict/entity"
	"github.com/nunomota/redistrict/redistrict"
)

// Record runs the engine exactly as redistrict.Run would, additionally
// capturing the move history and a final snapshot suitable for
// Metrics.ToJSON/WriteFile. Any OnInit/OnMove/OnEnd callbacks passed in
// opts still fire; Record's own bookkeeping hooks run alongside them.
func Record(eg *entity.EntityGraph, assignment map[string]string, opts ...redistrict.Option) (*Metrics, error) {
	var moveHistory []MoveRecord
	redistricted := make(map[string]struct{})

	userOpts := redistrict.DefaultOptions()
	for _, opt := range opts {
		opt(&userOpts)
	}
	userOnMove := userOpts.OnMove

	recordingOpts := append(append([]redistrict.Option{}, opts...),
		redistrict.WithOnMove(func(m redistrict.Move) {
			moveHistory = append(moveHistory, MoveRecord{
				SchoolID:       m.SchoolID,
				FromDistrictID: m.From,
				ToDistrictID:   m.To,
			})
			redistricted[m.SchoolID] = struct{}{}
			userOnMove(m)
		}),
	)

	start := time.Now()
	result, err := redistrict.Run(eg, assignment, recordingOpts...)
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}

	districtAssignment := make(map[string]string, len(assignment))
	fundingByDistrict := make(map[string]float64, len(eg.Districts()))
	var totalFunding float64
	var totalStudents int
	for _, d := range eg.Districts() {
		fundingByDistrict[d.ID] = d.FundingPerStudent()
		totalFunding += d.TotalFunding()
		totalStudents += d.TotalStudents()
		for _, sid := range d.Members() {
			districtAssignment[sid] = d.ID
		}
	}

	totalSchools := eg.SchoolCount()
	pct := 0.0
	if totalSchools > 0 {
		pct = float64(len(redistricted)) / float64(totalSchools) * 100
	}

	var stateFunding float64
	if totalStudents > 0 {
		stateFunding = totalFunding / float64(totalStudents)
	}

	return &Metrics{
		SpatialInequality:               result.FinalInequality,
		PercentageOfSchoolsRedistricted: pct,
		NumberOfDistricts:               len(eg.Districts()),
		MoveHistory:                     moveHistory,
		DistrictAssignmentBySchoolID:    districtAssignment,
		PerStudentFundingByDistrictID:   fundingByDistrict,
		TimeElapsedSeconds:              elapsed.Seconds(),
		PerStudentFundingWholeState:     stateFunding,
	}, nil
}

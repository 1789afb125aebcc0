package driver

import (
	"math"
	"sort"
	"sync"

	"github.com/nunomota/redistrict/metrics"
	"github.com/nunomota/redistrict/redistrict"
)

// ExpectableOption configures an ExpectableRun call.
type ExpectableOption func(*ExpectableOptions)

// ExpectableOptions holds ExpectableRun's tunables.
type ExpectableOptions struct {
	Concurrency int
	OnProgress  func(run, total int)
}

// DefaultExpectableOptions returns the baseline configuration: runs are
// executed one at a time and progress is not reported.
func DefaultExpectableOptions() ExpectableOptions {
	return ExpectableOptions{
		Concurrency: 1,
		OnProgress:  func(int, int) {},
	}
}

// WithConcurrency bounds how many of the n_runs independent runs may
// execute at once. n <= 0 is treated as 1.
func WithConcurrency(n int) ExpectableOption {
	return func(o *ExpectableOptions) {
		if n <= 0 {
			n = 1
		}
		o.Concurrency = n
	}
}

// WithOnProgress sets the callback fired after each of the n_runs
// completes, with the 1-based index of the run that just finished and
// the total run count.
func WithOnProgress(fn func(run, total int)) ExpectableOption {
	return func(o *ExpectableOptions) { o.OnProgress = fn }
}

// ExpectableResult is the outcome of ExpectableRun: the population
// mean and standard deviation of final inequality across all runs, and
// the metrics of the representative run.
type ExpectableResult struct {
	MeanInequality float64
	StdInequality  float64
	Representative *metrics.Metrics
}

// ExpectableRun executes n independent runs over structurally fresh
// EntityGraph instances (each run gets its own, since lookup.New
// assumes every district starts empty — see lookup/doc.go), then
// reports the mean and standard deviation of their final inequality
// values together with the "representative" run: the smallest final
// inequality that is still >= the mean. Runs execute across at most
// Concurrency goroutines; each run's EntityGraph, Lookup and heap are
// entirely independent, so no shared mutable state crosses goroutines.
func ExpectableRun(schools []SchoolInfo, districts []DistrictInfo, assignment Assignment, n int, runOpts []redistrict.Option, opts ...ExpectableOption) (*ExpectableResult, error) {
	if n <= 0 {
		return nil, ErrInvalidRunCount
	}

	o := DefaultExpectableOptions()
	for _, opt := range opts {
		opt(&o)
	}

	results := make([]*metrics.Metrics, n)
	errs := make([]error, n)

	sem := make(chan struct{}, o.Concurrency)
	var wg sync.WaitGroup
	var progressMu sync.Mutex
	completed := 0

	for i := 0; i < n; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			m, err := Run(schools, districts, assignment, runOpts...)
			results[idx] = m
			errs[idx] = err

			progressMu.Lock()
			completed++
			o.OnProgress(completed, n)
			progressMu.Unlock()
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	mean, std := meanStd(results)
	representative := pickRepresentative(results, mean)

	return &ExpectableResult{
		MeanInequality: mean,
		StdInequality:  std,
		Representative: representative,
	}, nil
}

func meanStd(runs []*metrics.Metrics) (mean, std float64) {
	n := float64(len(runs))
	var sum float64
	for _, m := range runs {
		sum += m.SpatialInequality
	}
	mean = sum / n

	var sqDiff float64
	for _, m := range runs {
		d := m.SpatialInequality - mean
		sqDiff += d * d
	}
	std = math.Sqrt(sqDiff / n)
	return mean, std
}

// pickRepresentative returns the run whose final inequality is the
// smallest value still >= mean: the first index in ascending-I order
// whose I >= mean. If every run's inequality falls below mean (owing
// to floating point slack at the boundary), the last one in ascending
// order is returned.
func pickRepresentative(runs []*metrics.Metrics, mean float64) *metrics.Metrics {
	sorted := make([]*metrics.Metrics, len(runs))
	copy(sorted, runs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].SpatialInequality < sorted[j].SpatialInequality
	})

	for _, m := range sorted {
		if m.SpatialInequality >= mean {
			return m
		}
	}
	return sorted[len(sorted)-1]
}

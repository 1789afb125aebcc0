package redistrict

// Move is a single school's reassignment from one district to another,
// as applied by the engine or reported to OnMove.
type Move struct {
	SchoolID string
	From     string
	To       string
}

// Option configures a Run call. See DefaultOptions for the defaults
// applied when an option is not supplied.
type Option func(*Options)

// Options holds every tunable the engine reads. Exported so callers in
// package driver can build one, pass it through functional options, and
// inspect it afterwards (e.g. to log the bounds a run used).
type Options struct {
	MinSchoolsPerDistrict int
	MaxSchoolsPerDistrict int
	MaxStaleIterations    int
	Tolerance             float64
	MaxHeapElems          int

	OnInit   func(initialInequality float64)
	OnUpdate func(iteration int, inequality float64)
	OnMove   func(m Move)
	OnEnd    func(finalInequality float64, iterations int)
}

// DefaultOptions returns the baseline configuration: districts may
// shrink to 1 school and grow without bound, the stopper tolerates 25
// stale iterations within a tolerance of 1e-6, and every callback is a
// no-op.
func DefaultOptions() Options {
	return Options{
		MinSchoolsPerDistrict: 1,
		MaxSchoolsPerDistrict: 0, // 0 means unbounded
		MaxStaleIterations:    25,
		Tolerance:             1e-6,
		MaxHeapElems:          0, // 0 means unbounded
		OnInit:                func(float64) {},
		OnUpdate:              func(int, float64) {},
		OnMove:                func(Move) {},
		OnEnd:                 func(float64, int) {},
	}
}

// WithSchoolBounds sets the minimum and maximum schools a district may
// hold after any move. max <= 0 means unbounded.
func WithSchoolBounds(min, max int) Option {
	return func(o *Options) {
		o.MinSchoolsPerDistrict = min
		o.MaxSchoolsPerDistrict = max
	}
}

// WithEarlyStop sets the stale-iteration and tolerance parameters fed
// to the internal earlystop.Stopper.
func WithEarlyStop(maxStaleIterations int, tolerance float64) Option {
	return func(o *Options) {
		o.MaxStaleIterations = maxStaleIterations
		o.Tolerance = tolerance
	}
}

// WithMaxHeapElems bounds the internal lazyheap's capacity. 0 means
// unbounded, the default.
func WithMaxHeapElems(n int) Option {
	return func(o *Options) { o.MaxHeapElems = n }
}

// WithOnInit sets the callback fired once, before the main loop starts,
// with the initial inequality value.
func WithOnInit(fn func(initialInequality float64)) Option {
	return func(o *Options) { o.OnInit = fn }
}

// WithOnUpdate sets the callback fired after every heap-pop iteration
// (whether or not it produced a move), with the iteration count and the
// inequality value recomputed after that iteration.
func WithOnUpdate(fn func(iteration int, inequality float64)) Option {
	return func(o *Options) { o.OnUpdate = fn }
}

// WithOnMove sets the callback fired once per school reassignment the
// engine actually applies.
func WithOnMove(fn func(m Move)) Option {
	return func(o *Options) { o.OnMove = fn }
}

// WithOnEnd sets the callback fired once, after the main loop
// terminates, with the final inequality value and total iteration count.
func WithOnEnd(fn func(finalInequality float64, iterations int)) Option {
	return func(o *Options) { o.OnEnd = fn }
}

// Result summarizes a completed Run.
type Result struct {
	InitialInequality float64
	FinalInequality   float64
	Iterations        int
	Moves             []Move
}

package domain

// Runtime is the per-run handle handed to every test function. It is
// implemented by the engine and gives tests access to the recursive
// walker, the assertion unwinder and the shared run parameters.
type Runtime interface {
	// ExecuteList walks a sub-list. Branch functions call this and
	// return its aggregated outcome.
	ExecuteList(list List) Outcome

	// Assert is a no-op when cond holds. Otherwise it records a
	// diagnostic line and abandons the current test with a Fail
	// outcome, resuming the walker at the enclosing list.
	Assert(cond bool)

	// Skipping reports whether the run is in Search or Skip mode.
	// Every leaf function must return Pass immediately, without side
	// effects, when Skipping is true. Branch functions do not need
	// the guard.
	Skipping() bool

	// Params returns the run parameters shared across the whole
	// recursive call chain.
	Params() *Params
}

// Func is a test function. Leaves perform assertions; branches invoke
// ExecuteList on a nested list. There is no intrinsic marker: the
// distinction is a contract on the function body.
type Func func(rt Runtime) Outcome

// Test binds a function to its immutable tag, the name segment it
// contributes to the accumulated path.
type Test struct {
	Func Func
	Tag  string
}

// List is an ordered sequence of tests. Declaration order is execution
// order.
type List []Test

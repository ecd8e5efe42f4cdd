package runtime

import (
	"fmt"
	"path/filepath"
	goruntime "runtime"

	"github.com/aretw0/arbor/pkg/domain"
)

// assertFailed is the non-local exit signal raised by a failed
// assertion. It is recovered by the nearest enclosing list iteration
// and translated into a Fail outcome for exactly one test.
type assertFailed struct{}

// runComplete is the non-local exit signal raised when the accumulated
// path equals the run target exactly. It propagates through every
// active list iteration to the top-level activation.
type runComplete struct {
	outcome domain.Outcome
}

// Assert is a no-op when cond holds. Otherwise it records a diagnostic
// line carrying the caller's location and the run's scratch code, then
// abandons the current test, resuming the walker at the enclosing list
// iteration.
func (e *Engine) Assert(cond bool) {
	if cond {
		return
	}

	_, file, line, ok := goruntime.Caller(1)
	if !ok {
		file, line = "unknown", 0
	}
	e.rep.info(fmt.Sprintf("Assert at line %d of %s == %d", line, filepath.Base(file), e.params.Code))

	panic(assertFailed{})
}

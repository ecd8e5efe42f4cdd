package runtime

import (
	"time"

	"github.com/aretw0/arbor/pkg/domain"
)

// Diagnostic payloads. "test path not found" and "DONE" are part of the
// wire contract.
const (
	msgTagOverflow  = "Error: tag path capacity exceeded"
	msgNestOverflow = "Error: max nesting depth exceeded"
	msgPathNotFound = "test path not found"
	msgDone         = "DONE"
)

// ExecuteList walks one test list. It is nestable: branch functions
// call it on their sub-list and return its aggregated outcome. For
// every entry it saves a context, enters (append tag, resolve mode),
// invokes the function and exits (report, truncate). A failed assertion
// unwinds back to this loop and is translated into a Fail outcome for
// that one entry; sibling iteration continues undisturbed.
func (e *Engine) ExecuteList(list domain.List) domain.Outcome {
	// Recursion limit: refuse the whole list, no partial execution.
	if e.nest >= e.maxDepth {
		e.rep.info(msgNestOverflow)
		return domain.Fail
	}

	savePause := e.rep.paused

	// The cursor saved here lets any unwind truncate the path back to
	// the exact state this activation started from.
	e.frames[e.nest].cursor = e.path.cursor()

	agg := domain.Pass
	for i := range list {
		if out := e.runTest(&list[i]); out != domain.Pass {
			agg = domain.Fail
		}
	}

	e.rep.paused = savePause
	return agg
}

// runTest executes a single entry and absorbs non-local exits raised
// below it. An assertion unwind stops at the nearest enclosing list
// iteration, this frame, while a run-complete unwind propagates until
// the top-level activation converts it into the terminal report.
func (e *Engine) runTest(test *domain.Test) (out domain.Outcome) {
	depth := e.nest

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch sig := r.(type) {
		case assertFailed:
			out = domain.Fail
			e.exit(test, out)
		case runComplete:
			if depth != 0 {
				panic(r)
			}
			// The completing test already reported its own result
			// line; the top-level exit only emits the terminator.
			out = sig.outcome
			e.exit(test, out)
		default:
			panic(r)
		}
	}()

	out = e.enter(test)
	e.exit(test, out)
	return out
}

// enter appends the entry's tag to the path, resolves the walker mode
// against the target and invokes the test function. A tag that does not
// fit aborts this one entry without incrementing the nesting depth.
func (e *Engine) enter(test *domain.Test) domain.Outcome {
	if err := e.path.append(test.Tag); err != nil {
		e.rep.info(msgTagOverflow)
		return domain.TagOverflow
	}
	e.nest++

	p := e.params
	if p.Mode != domain.ModeSearch {
		if !e.findTagToken() {
			// Outside the selected subtree: leaves will see Skip and
			// return immediately until a deeper match re-enables
			// execution.
			if p.Mode == domain.ModeExecute {
				p.Mode = domain.ModeSkip
			}
		} else {
			if p.Mode == domain.ModeSkip {
				p.Mode = domain.ModeExecute
			}
			e.frames[e.nest-1].start = e.clock.Now()
		}
	}

	e.logger.Debug("enter", "path", e.path.String(), "mode", p.Mode.String())
	e.fireTestEnter(test)

	return test.Func(e)
}

// exit reports the entry and restores the path to the parent's saved
// cursor. When the accumulated path equals the target exactly, the
// requested test has completed and the walker unwinds to the top level,
// which emits the terminator and flushes the report.
func (e *Engine) exit(test *domain.Test, out domain.Outcome) {
	if out == domain.TagOverflow {
		// No corresponding nesting increment: report and bail.
		e.rep.testLine(out, 0, e.path.String())
		return
	}

	p := e.params
	if e.findTagToken() {
		if p.Mode != domain.ModeSearch {
			elapsed := e.clock.Now() - e.frames[e.nest-1].start
			e.rep.testLine(out, elapsed, e.path.String())
			e.fireTestLeave(test, out, elapsed)
		} else {
			e.rep.searchLine(e.path.String())
		}
	}

	if e.path.String() == p.Target {
		e.removeTag(0)
		panic(runComplete{outcome: out})
	}

	if e.nest > 0 {
		e.removeTag(e.nest - 1)
	}

	if e.nest == 0 {
		if p.TagsFound == 0 && p.Target != e.rootTag {
			e.rep.infoNow(msgPathNotFound)
		} else {
			e.rep.lineFeed()
			e.rep.putString(msgDone)
			e.rep.send()
		}
	}
}

// removeTag truncates the path back to the cursor saved for the given
// nesting level and makes that level current.
func (e *Engine) removeTag(nest int) {
	if nest >= e.maxDepth {
		return
	}
	e.path.truncateTo(e.frames[nest].cursor)
	e.nest = nest
}

func (e *Engine) fireTestEnter(test *domain.Test) {
	if e.hooks.OnTestEnter == nil {
		return
	}
	e.hooks.OnTestEnter(e.ctx, &domain.TestEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTestEnter},
		Path:      e.path.String(),
		Tag:       test.Tag,
		Mode:      e.params.Mode.String(),
	})
}

func (e *Engine) fireTestLeave(test *domain.Test, out domain.Outcome, elapsed uint32) {
	if e.hooks.OnTestLeave == nil {
		return
	}
	e.hooks.OnTestLeave(e.ctx, &domain.TestEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTestLeave},
		Path:      e.path.String(),
		Tag:       test.Tag,
		Mode:      e.params.Mode.String(),
		Outcome:   out.Label(),
		Elapsed:   elapsed,
	})
}

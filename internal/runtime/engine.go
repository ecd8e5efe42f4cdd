// Package runtime implements the recursive test-selection engine: the
// tag path buffer, the per-depth context stack, the tree walker, the
// assertion unwinder and the line-oriented reporter.
//
// The engine walks a statically declared tree of test functions,
// building a textual path that identifies the current position, and
// executes or skips each function according to whether the run's target
// is a token of the accumulated path. All buffers are bounded; a run
// always terminates with a flushed report.
package runtime

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// frame is the saved context for one nesting level: the path-buffer
// cursor to restore on unwind and the start-time sample for elapsed
// time reporting. frames[d] is valid iff the current depth exceeds d.
type frame struct {
	cursor int
	start  uint32
}

// Engine is the core tree walker. It owns all run state (path buffer,
// context stack, report buffer), which is rebuilt on every Run. The
// engine is not re-entrant: exactly one run may be in flight.
type Engine struct {
	logger    *slog.Logger
	clock     ports.Clock
	transport ports.Transport
	hooks     domain.LifecycleHooks

	rootTag  string
	maxDepth int

	path   *tagPath
	frames []frame
	nest   int
	rep    *reporter

	params  *domain.Params
	ctx     context.Context
	running bool
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithLogger sets a structured logger. Defaults to a discard logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock sets the monotonic millisecond timer source.
func WithClock(clock ports.Clock) EngineOption {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithTransport sets the report sink.
func WithTransport(tr ports.Transport) EngineOption {
	return func(e *Engine) {
		if tr != nil {
			e.transport = tr
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithRootTag overrides the tag of the synthetic root entry.
func WithRootTag(tag string) EngineOption {
	return func(e *Engine) {
		if tag != "" {
			e.rootTag = tag
		}
	}
}

// WithMaxDepth bounds walker recursion. Entering a list at the limit
// yields an immediate diagnostic instead of partial execution.
func WithMaxDepth(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// WithPathCapacity bounds the tag path buffer.
func WithPathCapacity(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.path = newTagPath(n)
		}
	}
}

// WithReportCapacity bounds the report buffer.
func WithReportCapacity(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.rep.capacity = n
		}
	}
}

// NewEngine creates an engine with bounded buffers. The zero-option
// engine uses the default capacities from pkg/domain, a monotonic
// system clock and a transport that discards chunks.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:     ports.NewSystemClock(),
		transport: ports.TransportFunc(func(context.Context, []byte) error { return nil }),
		rootTag:   domain.RootTag,
		maxDepth:  domain.DefaultMaxDepth,
		path:      newTagPath(domain.DefaultPathCapacity),
	}
	e.rep = newReporter(e, domain.DefaultReportCapacity)

	for _, opt := range opts {
		opt(e)
	}

	e.frames = make([]frame, e.maxDepth)
	return e
}

// Run resets all engine state and walks the tree rooted at trunk,
// wrapped in a synthetic single-entry root list carrying the root tag.
// The report is delivered through the transport; the returned outcome
// is the aggregated result of the root list.
func (e *Engine) Run(ctx context.Context, mode domain.Mode, target string, trunk domain.Func) (domain.Outcome, error) {
	if e.running {
		return domain.Fail, domain.ErrRunActive
	}
	e.running = true
	defer func() { e.running = false }()

	e.ctx = ctx
	e.nest = 0
	e.path.reset()
	e.rep.reset()
	for i := range e.frames {
		e.frames[i] = frame{}
	}
	e.params = &domain.Params{Mode: mode, Target: target}

	e.logger.Debug("run start", "mode", mode.String(), "target", target)

	root := domain.List{{Func: trunk, Tag: e.rootTag}}
	out := e.ExecuteList(root)

	e.logger.Debug("run done", "outcome", out.Label(), "tags_found", e.params.TagsFound)
	return out, nil
}

// Params returns the run parameters shared across the call chain.
func (e *Engine) Params() *domain.Params { return e.params }

// Skipping reports whether the run is in Search or Skip mode. Leaf
// functions must return Pass immediately while it is true.
func (e *Engine) Skipping() bool { return e.params.Skipping() }

// Depth returns the current nesting depth. It is zero between runs.
func (e *Engine) Depth() int { return e.nest }

// Path returns the current accumulated tag path.
func (e *Engine) Path() string { return e.path.String() }

var _ domain.Runtime = (*Engine)(nil)

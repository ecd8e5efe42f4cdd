package arbor

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/arbor/internal/runtime"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// Engine is the high-level entry point for the Arbor library. It wraps
// the internal runtime and provides a simplified API for hosts.
type Engine struct {
	runtime *runtime.Engine
	logger  *slog.Logger
	opts    []runtime.EngineOption
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithClock injects a custom monotonic timer source.
func WithClock(clock ports.Clock) Option {
	return func(e *Engine) {
		e.opts = append(e.opts, runtime.WithClock(clock))
	}
}

// WithTransport injects the byte sink that receives report chunks.
func WithTransport(tr ports.Transport) Option {
	return func(e *Engine) {
		e.opts = append(e.opts, runtime.WithTransport(tr))
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.opts = append(e.opts, runtime.WithLifecycleHooks(hooks))
	}
}

// WithRootTag overrides the synthetic root tag (default "ROOT").
func WithRootTag(tag string) Option {
	return func(e *Engine) {
		e.opts = append(e.opts, runtime.WithRootTag(tag))
	}
}

// WithMaxDepth configures the walker recursion limit.
func WithMaxDepth(n int) Option {
	return func(e *Engine) {
		e.opts = append(e.opts, runtime.WithMaxDepth(n))
	}
}

// WithPathCapacity configures the tag path buffer capacity.
func WithPathCapacity(n int) Option {
	return func(e *Engine) {
		e.opts = append(e.opts, runtime.WithPathCapacity(n))
	}
}

// WithReportCapacity configures the report buffer capacity.
func WithReportCapacity(n int) Option {
	return func(e *Engine) {
		e.opts = append(e.opts, runtime.WithReportCapacity(n))
	}
}

// New initializes a new Arbor Engine. Defaults: capacities sized for
// constrained targets (see pkg/domain), a monotonic system clock and a
// transport that discards chunks.
func New(opts ...Option) *Engine {
	eng := &Engine{}

	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized so we don't pass nil to the runtime,
	// which would overwrite its default.
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	runtimeOpts := []runtime.EngineOption{runtime.WithLogger(eng.logger)}
	runtimeOpts = append(runtimeOpts, eng.opts...)

	eng.runtime = runtime.NewEngine(runtimeOpts...)
	return eng
}

// Run executes the subtree selected by target. The root tag selects the
// whole tree. The structured report is delivered through the configured
// transport; the returned outcome is the aggregated result of the root
// list.
func (e *Engine) Run(ctx context.Context, target string, trunk domain.Func) (domain.Outcome, error) {
	return e.runtime.Run(ctx, domain.ModeExecute, target, trunk)
}

// Search walks the subtree selected by target and reports which paths
// exist without executing any assertions.
func (e *Engine) Search(ctx context.Context, target string, trunk domain.Func) (domain.Outcome, error) {
	return e.runtime.Run(ctx, domain.ModeSearch, target, trunk)
}

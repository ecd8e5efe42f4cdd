package ports

import "context"

// Transport delivers a report chunk to the host-side viewer. Delivery
// is fire-and-forget from the engine's perspective: implementations
// should be synchronous and non-blocking, and errors are logged by the
// engine rather than surfaced to the run.
type Transport interface {
	Send(ctx context.Context, chunk []byte) error
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, chunk []byte) error

func (f TransportFunc) Send(ctx context.Context, chunk []byte) error {
	return f(ctx, chunk)
}

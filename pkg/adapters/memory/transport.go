// Package memory provides an in-memory report transport, the default
// for tests and for hosts that render the report after the run.
package memory

import (
	"context"
	"sync"
)

// Transport implements ports.Transport by capturing report chunks.
type Transport struct {
	mu     sync.Mutex
	chunks [][]byte
}

// New creates an empty in-memory transport.
func New() *Transport {
	return &Transport{}
}

// Send records a copy of the chunk. It never fails.
func (t *Transport) Send(_ context.Context, chunk []byte) error {
	cp := make([]byte, len(chunk))
	copy(cp, chunk)

	t.mu.Lock()
	t.chunks = append(t.chunks, cp)
	t.mu.Unlock()
	return nil
}

// Chunks returns the chunks received so far, in delivery order.
func (t *Transport) Chunks() [][]byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([][]byte, len(t.chunks))
	copy(out, t.chunks)
	return out
}

// Report returns the concatenated report body.
func (t *Transport) Report() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var n int
	for _, c := range t.chunks {
		n += len(c)
	}
	buf := make([]byte, 0, n)
	for _, c := range t.chunks {
		buf = append(buf, c...)
	}
	return string(buf)
}

// Reset discards captured chunks so the transport can serve a new run.
func (t *Transport) Reset() {
	t.mu.Lock()
	t.chunks = nil
	t.mu.Unlock()
}

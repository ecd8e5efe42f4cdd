// Package writer provides a report transport that streams chunks to an
// io.Writer, typically stdout or a serial console.
package writer

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Transport implements ports.Transport over an io.Writer.
type Transport struct {
	mu sync.Mutex
	w  io.Writer
}

// New creates a transport writing to w.
func New(w io.Writer) *Transport {
	return &Transport{w: w}
}

// Send writes the chunk. Short writes are reported as errors; the
// engine logs them and carries on.
func (t *Transport) Send(_ context.Context, chunk []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, err := t.w.Write(chunk)
	if err != nil {
		return fmt.Errorf("failed to write report chunk: %w", err)
	}
	if n != len(chunk) {
		return fmt.Errorf("short write: %d of %d bytes", n, len(chunk))
	}
	return nil
}

package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTransportContract runs a suite of tests to verify that a Transport
// implementation adheres to the interface contract. The received
// function must return the chunks delivered so far, in order.
//
// The engine reuses its report buffer between flushes, so transports
// must not retain the chunk slice beyond the Send call.
func RunTransportContract(t *testing.T, tr Transport, received func() [][]byte) {
	ctx := context.Background()

	t.Run("Delivers In Order", func(t *testing.T) {
		base := len(received())

		require.NoError(t, tr.Send(ctx, []byte("T,   0,PASS,     1,ROOT\n")))
		require.NoError(t, tr.Send(ctx, []byte("\nDONE")))

		chunks := received()
		require.Len(t, chunks, base+2)
		assert.Equal(t, "T,   0,PASS,     1,ROOT\n", string(chunks[base]))
		assert.Equal(t, "\nDONE", string(chunks[base+1]))
	})

	t.Run("Does Not Retain Caller Buffer", func(t *testing.T) {
		base := len(received())

		buf := []byte("I,   1,    ,      ,hello\n")
		require.NoError(t, tr.Send(ctx, buf))
		for i := range buf {
			buf[i] = 'x'
		}

		chunks := received()
		require.Len(t, chunks, base+1)
		assert.Equal(t, "I,   1,    ,      ,hello\n", string(chunks[base]))
	})

	t.Run("Empty Chunk", func(t *testing.T) {
		assert.NoError(t, tr.Send(ctx, nil))
	})
}

package writer_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/aretw0/arbor/pkg/adapters/writer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterTransport_Send(t *testing.T) {
	var buf bytes.Buffer
	tr := writer.New(&buf)

	require.NoError(t, tr.Send(context.Background(), []byte("T,   0,PASS,     3,ROOT\n")))
	require.NoError(t, tr.Send(context.Background(), []byte("\nDONE")))

	assert.Equal(t, "T,   0,PASS,     3,ROOT\n\nDONE", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriterTransport_Error(t *testing.T) {
	tr := writer.New(failingWriter{})
	err := tr.Send(context.Background(), []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

package runtime

import (
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagPath_AppendAndTruncate(t *testing.T) {
	p := newTagPath(32)

	require.NoError(t, p.append("ROOT"))
	assert.Equal(t, "ROOT", p.String())

	mark := p.cursor()
	require.NoError(t, p.append("g"))
	require.NoError(t, p.append("x"))
	assert.Equal(t, "ROOT@g@x", p.String())

	p.truncateTo(mark)
	assert.Equal(t, "ROOT", p.String())

	p.reset()
	assert.Equal(t, "", p.String())
	assert.Equal(t, 0, p.cursor())
}

func TestTagPath_OverflowLeavesBufferUnmodified(t *testing.T) {
	p := newTagPath(8)

	require.NoError(t, p.append("ROOT"))

	// "ROOT" + "@" + "long" = 9 > 8
	err := p.append("long")
	require.ErrorIs(t, err, domain.ErrTagOverflow)
	assert.Equal(t, "ROOT", p.String(), "failed append must not modify the buffer")

	// A shorter tag still fits afterwards.
	require.NoError(t, p.append("ok"))
	assert.Equal(t, "ROOT@ok", p.String())
}

func TestTagPath_ExactFit(t *testing.T) {
	p := newTagPath(6)

	require.NoError(t, p.append("ROOT"))
	require.NoError(t, p.append("g"))
	assert.Equal(t, "ROOT@g", p.String())

	require.ErrorIs(t, p.append("x"), domain.ErrTagOverflow)
}

func TestTagPath_TruncateIgnoresInvalidCursor(t *testing.T) {
	p := newTagPath(16)
	require.NoError(t, p.append("ROOT"))

	p.truncateTo(-1)
	assert.Equal(t, "ROOT", p.String())
	p.truncateTo(99)
	assert.Equal(t, "ROOT", p.String())
}

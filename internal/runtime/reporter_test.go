package runtime

import (
	"strings"
	"testing"

	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reporterEngine(opts ...EngineOption) (*Engine, *memory.Transport) {
	tr := memory.New()
	e := NewEngine(append([]EngineOption{WithTransport(tr)}, opts...)...)
	e.rep.reset()
	return e, tr
}

func TestReporter_InfoLineFormat(t *testing.T) {
	e, tr := reporterEngine()

	e.rep.infoNow("hello")

	assert.Equal(t, "I,   0,    ,      ,hello\n", tr.Report())
}

func TestReporter_TestLineFormat(t *testing.T) {
	e, tr := reporterEngine()

	e.rep.testLine(domain.Pass, 12, "ROOT@g@x")
	e.rep.testLine(domain.Fail, 345678, "ROOT@g@y")
	e.rep.testLine(domain.TagOverflow, 0, "ROOT")

	want := "T,   0,PASS,    12,ROOT@g@x\n" +
		"T,   1,FAIL,345678,ROOT@g@y\n" +
		"T,   2,TAG_ID,     0,ROOT\n"
	assert.Equal(t, want, tr.Report())
}

func TestReporter_SequenceNumbersAreShared(t *testing.T) {
	e, tr := reporterEngine()

	e.rep.infoNow("first")
	e.rep.testLine(domain.Pass, 0, "ROOT")
	e.rep.infoNow("third")

	lines := strings.Split(strings.TrimSuffix(tr.Report(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "I,   0,"))
	assert.True(t, strings.HasPrefix(lines[1], "T,   1,"))
	assert.True(t, strings.HasPrefix(lines[2], "I,   2,"))
}

func TestReporter_DeferredLinesAccumulateUntilFlush(t *testing.T) {
	e, tr := reporterEngine()

	e.rep.info("deferred one")
	e.rep.searchLine("ROOT@g")
	assert.Empty(t, tr.Chunks(), "deferred lines must not flush on line feed")

	// An unpaused line feed delivers everything buffered so far.
	e.rep.testLine(domain.Pass, 0, "ROOT")
	chunks := tr.Chunks()
	require.Len(t, chunks, 1)
	assert.Equal(t,
		"I,   0,    ,      ,deferred one\n"+
			"S,   1,    ,      ,ROOT@g\n"+
			"T,   2,PASS,     0,ROOT\n",
		string(chunks[0]))
}

func TestReporter_OverlongPayloadReplaced(t *testing.T) {
	e, tr := reporterEngine(WithPathCapacity(16))

	e.rep.infoNow(strings.Repeat("x", 17))

	assert.Equal(t, "I,   0,    ,      ,<string exceeds length limit>\n", tr.Report())
}

func TestReporter_ElapsedTruncatesHighDigits(t *testing.T) {
	e, tr := reporterEngine()

	// 1234567 does not fit the 6-digit column; high digits are not
	// emitted so columns stay aligned.
	e.rep.testLine(domain.Pass, 1234567, "ROOT")

	assert.Equal(t, "T,   0,PASS,234567,ROOT\n", tr.Report())
}

func TestReporter_OverflowSurfacedOnFlush(t *testing.T) {
	e, tr := reporterEngine(WithReportCapacity(64))

	e.rep.info(strings.Repeat("a", 128))
	assert.Positive(t, e.rep.dropped)

	e.rep.send()

	report := tr.Report()
	assert.Contains(t, report, "report buffer overflow, 84 bytes dropped")
}

func TestReporter_DoneTerminator(t *testing.T) {
	e, tr := reporterEngine()

	e.rep.testLine(domain.Pass, 0, "ROOT")
	e.rep.lineFeed()
	e.rep.putString("DONE")
	e.rep.send()

	assert.Equal(t, "T,   0,PASS,     0,ROOT\n\nDONE", tr.Report())
}

package selftest_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/selftest"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/domain"
)

func runSuite(t *testing.T, target string) string {
	t.Helper()
	tr := memory.New()
	engine := arbor.New(arbor.WithTransport(tr))

	_, err := engine.Run(context.Background(), target, selftest.Trunk)
	require.NoError(t, err)
	return tr.Report()
}

func TestSuite_FullRun(t *testing.T) {
	report := runSuite(t, domain.RootTag)

	assert.Contains(t, report, "PASS,")
	assert.Contains(t, report, "ROOT@CoreTests@Arithmetic")
	assert.Contains(t, report, "ROOT@NestingTests@Inner@Deep")
	assert.True(t, strings.HasSuffix(report, "\nDONE"))
}

// The Diagnostics branch contains the deliberate failure, so a full
// run always demonstrates the FAIL reporting path.
func TestSuite_DeliberateFailureReported(t *testing.T) {
	report := runSuite(t, "AlwaysFail")

	assert.Contains(t, report, "FAIL")
	assert.Contains(t, report, "ROOT@DiagnosticTests@AlwaysFail")
	assert.Contains(t, report, "== 42", "the scratch code must appear in the assert diagnostic")
}

func TestSuite_CoreSubtreePasses(t *testing.T) {
	report := runSuite(t, "CoreTests")

	assert.NotContains(t, report, "FAIL")
	assert.Contains(t, report, "ROOT@CoreTests@StrCompare")
	assert.NotContains(t, report, "NestingTests", "sibling branches stay out of the report")
}

func TestSuite_SearchEnumeratesEveryPath(t *testing.T) {
	tr := memory.New()
	engine := arbor.New(arbor.WithTransport(tr))

	_, err := engine.Search(context.Background(), domain.RootTag, selftest.Trunk)
	require.NoError(t, err)

	report := tr.Report()
	for _, path := range []string{
		"ROOT@CoreTests@Arithmetic",
		"ROOT@CoreTests@BitOps",
		"ROOT@CoreTests@StrCompare",
		"ROOT@NestingTests@Shallow",
		"ROOT@NestingTests@Inner@Deep",
		"ROOT@DiagnosticTests@AlwaysFail",
	} {
		assert.Contains(t, report, path)
	}
	assert.NotContains(t, report, "T,", "search must not execute tests")
}

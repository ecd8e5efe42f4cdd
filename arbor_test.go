package arbor_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/adapters/writer"
	"github.com/aretw0/arbor/pkg/domain"
)

func demoTrunk(executed *[]string) domain.Func {
	leaf := func(name string, cond bool) domain.Func {
		return func(rt domain.Runtime) domain.Outcome {
			if rt.Skipping() {
				return domain.Pass
			}
			*executed = append(*executed, name)
			rt.Assert(cond)
			return domain.Pass
		}
	}
	return func(rt domain.Runtime) domain.Outcome {
		return rt.ExecuteList(domain.List{
			{Func: func(rt domain.Runtime) domain.Outcome {
				return rt.ExecuteList(domain.List{
					{Func: leaf("add", true), Tag: "Add"},
					{Func: leaf("sub", false), Tag: "Sub"},
				})
			}, Tag: "Math"},
			{Func: leaf("io", true), Tag: "IO"},
		})
	}
}

func TestEngine_RunWholeTree(t *testing.T) {
	var executed []string
	tr := memory.New()
	engine := arbor.New(arbor.WithTransport(tr))

	out, err := engine.Run(context.Background(), domain.RootTag, demoTrunk(&executed))
	require.NoError(t, err)
	assert.Equal(t, domain.Fail, out, "the failing Sub leaf fails the run")
	assert.Equal(t, []string{"add", "sub", "io"}, executed)

	report := tr.Report()
	assert.Contains(t, report, "ROOT@Math@Add")
	assert.True(t, strings.HasSuffix(report, "\nDONE"))
}

func TestEngine_RunSubtree(t *testing.T) {
	var executed []string
	engine := arbor.New(arbor.WithTransport(memory.New()))

	out, err := engine.Run(context.Background(), "IO", demoTrunk(&executed))
	require.NoError(t, err)
	assert.Equal(t, domain.Pass, out)
	assert.Equal(t, []string{"io"}, executed)
}

func TestEngine_SearchWritesToWriterTransport(t *testing.T) {
	var executed []string
	var sb strings.Builder
	engine := arbor.New(arbor.WithTransport(writer.New(&sb)))

	_, err := engine.Search(context.Background(), domain.RootTag, demoTrunk(&executed))
	require.NoError(t, err)

	assert.Empty(t, executed)
	assert.Contains(t, sb.String(), "S,")
	assert.Contains(t, sb.String(), "ROOT@Math@Sub")
}

func TestEngine_DefaultTransportDiscards(t *testing.T) {
	var executed []string
	engine := arbor.New()

	out, err := engine.Run(context.Background(), domain.RootTag, demoTrunk(&executed))
	require.NoError(t, err)
	assert.Equal(t, domain.Fail, out)
	assert.Equal(t, []string{"add", "sub", "io"}, executed)
}

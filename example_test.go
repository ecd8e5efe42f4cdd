package arbor_test

import (
	"context"
	"fmt"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/domain"
)

// frozenClock keeps report timings deterministic for the example.
type frozenClock struct{}

func (frozenClock) Now() uint32 { return 0 }

// ExampleEngine_Run demonstrates running a small tree and reading the
// report from an in-memory transport. This is useful for testing or
// when the host wants to post-process the report itself.
func ExampleEngine_Run() {
	// 1. Define the tree. Branch functions execute a list; leaf
	// functions guard with Skipping and assert.
	checks := func(rt domain.Runtime) domain.Outcome {
		return rt.ExecuteList(domain.List{
			{Tag: "Add", Func: func(rt domain.Runtime) domain.Outcome {
				if rt.Skipping() {
					return domain.Pass
				}
				rt.Assert(1+1 == 2)
				return domain.Pass
			}},
		})
	}

	// 2. Initialize the engine with a capture transport.
	transport := memory.New()
	engine := arbor.New(
		arbor.WithTransport(transport),
		arbor.WithClock(frozenClock{}),
	)

	// 3. Run the whole tree.
	out, err := engine.Run(context.Background(), domain.RootTag, checks)
	if err != nil {
		panic(err)
	}

	fmt.Println(out.Label())
	fmt.Println(transport.Report())
	// Output:
	// PASS
	// T,   0,PASS,     0,ROOT@Add
	// T,   1,PASS,     0,ROOT
	//
	// DONE
}

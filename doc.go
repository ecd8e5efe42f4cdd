/*
Package arbor is a recursive test-selection and execution engine for
constrained-memory targets.

It walks a statically declared tree of test functions, builds a textual
path identifying the current position in the tree, and executes or
skips each function according to whether a target path is a token of
the accumulated path. Results are formatted as a line-oriented report
inside a fixed-size buffer and delivered through a pluggable transport.

# Concept

Tests are plain Go values: a Test binds a function to a tag, and a List
is an ordered sequence of tests. Branch functions recurse into
sub-lists through the Runtime handle; leaf functions perform assertions
and must honor the search/skip guard. The engine provides exception-like
control flow with bounded memory: a failed assertion abandons exactly
one test and the walk continues with its siblings.

# Usage

	package main

	import (
		"context"
		"os"

		"github.com/aretw0/arbor"
		"github.com/aretw0/arbor/pkg/adapters/writer"
		"github.com/aretw0/arbor/pkg/domain"
	)

	func leaf(rt domain.Runtime) domain.Outcome {
		if rt.Skipping() {
			return domain.Pass
		}
		rt.Assert(1+1 == 2)
		return domain.Pass
	}

	func trunk(rt domain.Runtime) domain.Outcome {
		return rt.ExecuteList(domain.List{
			{Func: leaf, Tag: "Arithmetic"},
		})
	}

	func main() {
		eng := arbor.New(arbor.WithTransport(writer.New(os.Stdout)))
		eng.Run(context.Background(), domain.RootTag, trunk)
	}

Running with a specific tag as target executes only the subtree whose
accumulated path contains that tag as a whole token. Search runs
enumerate the tree without executing it.
*/
package arbor

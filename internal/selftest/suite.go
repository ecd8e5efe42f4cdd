// Package selftest declares the built-in conformance tree run by the
// arbor CLI and HTTP hosts. It exercises the walker with a mix of
// branch and leaf nodes, including a deliberately failing leaf under
// the Diagnostics branch so report consumers can see a FAIL line.
package selftest

import "github.com/aretw0/arbor/pkg/domain"

// Trunk is the top-level branch function. Branch functions are not
// tests: they execute a list of tests.
func Trunk(rt domain.Runtime) domain.Outcome {
	return rt.ExecuteList(domain.List{
		{Func: coreTests, Tag: "CoreTests"},
		{Func: nestingTests, Tag: "NestingTests"},
		{Func: diagnosticTests, Tag: "DiagnosticTests"},
	})
}

func coreTests(rt domain.Runtime) domain.Outcome {
	return rt.ExecuteList(domain.List{
		{Func: arithmetic, Tag: "Arithmetic"},
		{Func: bitOps, Tag: "BitOps"},
		{Func: strCompare, Tag: "StrCompare"},
	})
}

// nestingTests contains both leaf and branch entries, like a tree that
// groups related checks under a sub-branch.
func nestingTests(rt domain.Runtime) domain.Outcome {
	return rt.ExecuteList(domain.List{
		{Func: shallowLeaf, Tag: "Shallow"},
		{Func: innerBranch, Tag: "Inner"},
	})
}

func innerBranch(rt domain.Runtime) domain.Outcome {
	return rt.ExecuteList(domain.List{
		{Func: deepLeaf, Tag: "Deep"},
	})
}

func diagnosticTests(rt domain.Runtime) domain.Outcome {
	return rt.ExecuteList(domain.List{
		{Func: alwaysFail, Tag: "AlwaysFail"},
	})
}

// Every leaf function must place the Skipping guard at the start of the
// function body. Branch functions do not need the guard.

func arithmetic(rt domain.Runtime) domain.Outcome {
	if rt.Skipping() {
		return domain.Pass
	}

	rt.Assert(2+2 == 4)
	rt.Assert(7*6 == 42)

	return domain.Pass
}

func bitOps(rt domain.Runtime) domain.Outcome {
	if rt.Skipping() {
		return domain.Pass
	}

	rt.Assert(0xF0&0x0F == 0)
	rt.Assert(1<<4 == 16)

	return domain.Pass
}

func strCompare(rt domain.Runtime) domain.Outcome {
	if rt.Skipping() {
		return domain.Pass
	}

	rt.Assert("arbor" < "trellis")

	return domain.Pass
}

func shallowLeaf(rt domain.Runtime) domain.Outcome {
	if rt.Skipping() {
		return domain.Pass
	}

	rt.Assert(len(domain.RootTag) > 0)

	return domain.Pass
}

func deepLeaf(rt domain.Runtime) domain.Outcome {
	if rt.Skipping() {
		return domain.Pass
	}

	rt.Assert(true)

	return domain.Pass
}

// alwaysFail records a scratch code and fails its assertion, so every
// full run demonstrates the FAIL report path.
func alwaysFail(rt domain.Runtime) domain.Outcome {
	if rt.Skipping() {
		return domain.Pass
	}

	rt.Params().Code = 42
	rt.Assert(false)

	return domain.Pass
}

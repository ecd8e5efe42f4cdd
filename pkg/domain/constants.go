package domain

const (
	// Delimiter separates tags inside an accumulated path.
	// It must never appear inside a tag.
	Delimiter = '@'

	// RootTag prefixes every node of the test tree. Running with the
	// root tag as target executes the entire tree.
	RootTag = "ROOT"
)

// Default engine capacities, sized for constrained targets. Hosts with
// more memory can raise them through the engine options.
const (
	DefaultReportCapacity = 4096
	DefaultPathCapacity   = 256
	DefaultMaxDepth       = 6
)

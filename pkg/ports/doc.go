// Package ports defines the narrow interfaces through which the engine
// talks to its external collaborators (the timer source and the report
// transport), plus contract test suites that adapter implementations
// must satisfy.
package ports

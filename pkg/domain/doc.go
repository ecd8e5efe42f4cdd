// Package domain holds the pure types shared by the Arbor engine and its
// adapters: test declarations, run parameters, outcomes and lifecycle
// events. It has no dependencies so hosts can declare test trees without
// pulling in the runtime.
package domain

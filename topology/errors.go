package topology

import "errors"

// Sentinel error kinds for composition failures. Callers match with errors.Is;
// every error returned by this package wraps one of these.
var (
	// ErrInvalidParameter reports malformed or contradictory topology input.
	// It is raised before any composition proceeds; no partial plan is emitted.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDependencyCycle reports a composition-order violation: a spec
	// references an entity that was never composed, or the resulting
	// resource graph is not acyclic. Not expected under the standard
	// composition sequence.
	ErrDependencyCycle = errors.New("dependency cycle")
)

package codemode

import "errors"

var (
	// ErrNilSpecProducer is returned by New when Config.Spec and
	// Config.SpecProducer are both unset.
	ErrNilSpecProducer = errors.New("codemode: no spec or spec producer configured")

	// ErrNilRequestHandler is returned by New when Config.Request is unset.
	ErrNilRequestHandler = errors.New("codemode: no request handler configured")

	errOrchestratorDisposed = errors.New("codemode: orchestrator has been disposed")
)

// InvalidNamespaceError reports a namespace that failed construction-time
// validation, either because it is not a valid JavaScript identifier or
// because it collides with a reserved name.
type InvalidNamespaceError struct {
	Namespace string
	Reason    string
}

func (e *InvalidNamespaceError) Error() string {
	return "codemode: invalid namespace \"" + e.Namespace + "\": " + e.Reason
}

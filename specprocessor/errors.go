package specprocessor

import "errors"

// ErrNilDocument is returned by ProcessSpec when handed a nil document.
var ErrNilDocument = errors.New("specprocessor: document is nil")

const (
	circularMarkerKey = "$circular"
	circularReasonKey = "$reason"
	refErrorKey       = "$error"
	refKey            = "$ref"

	maxDepthReason = "max depth exceeded"
	unsafeRefPath  = "unsafe ref path"
)

var unsafeSegments = map[string]bool{
	"__proto__":   true,
	"constructor": true,
	"prototype":   true,
}

type refError struct {
	msg string
}

func (e *refError) Error() string { return e.msg }

func errUnsafePath() error {
	return &refError{msg: unsafeRefPath}
}

func errRefNotFound(ref string) error {
	return &refError{msg: "ref not found: " + ref}
}

func errUnsupportedRef(ref string) error {
	return &refError{msg: "unsupported ref: " + ref}
}

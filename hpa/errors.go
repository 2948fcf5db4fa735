package hpa

import (
	"fmt"

	"github.com/agungprasetyosakti/ahastar/abstractgraph"
)

// ErrorKind tags every error plan() can report, including the surgeon's
// three validation kinds plus three query-engine-level kinds (CacheMiss
// is a fatal invariant violation; Unreachable is a normal result, not a
// defect; NotReady rejects a call made in the wrong construction state).
type ErrorKind int

const (
	NullEndpoint ErrorKind = iota
	NonZeroAbstractionLevel
	NonTraversableEndpoint
	CacheMiss
	Unreachable
	NotReady
)

func (k ErrorKind) String() string {
	switch k {
	case NullEndpoint:
		return "NullEndpoint"
	case NonZeroAbstractionLevel:
		return "NonZeroAbstractionLevel"
	case NonTraversableEndpoint:
		return "NonTraversableEndpoint"
	case CacheMiss:
		return "CacheMiss"
	case Unreachable:
		return "Unreachable"
	case NotReady:
		return "NotReady"
	default:
		return "Unknown"
	}
}

// Error is the query engine's error type. Kind == Unreachable is a
// normal-path outcome the caller is expected to check for, not a bug;
// every other kind indicates a rejected query or (CacheMiss) an
// internal invariant violation.
type Error struct {
	Kind ErrorKind
}

func (e *Error) Error() string {
	return fmt.Sprintf("hpa: %s", e.Kind)
}

// ErrUnreachable is the sentinel Plan returns when abstract A* finds no
// path under the query's (capability, clearance) — a normal result, not
// a defect. Callers can compare with errors.As against *Error and check
// Kind == Unreachable, or errors.Is(err, ErrUnreachable).
var ErrUnreachable error = &Error{Kind: Unreachable}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func fromSurgeonError(err error) error {
	se, ok := err.(*abstractgraph.Error)
	if !ok {
		return err
	}
	switch se.Kind {
	case abstractgraph.NullEndpoint:
		return &Error{Kind: NullEndpoint}
	case abstractgraph.NonZeroAbstractionLevel:
		return &Error{Kind: NonZeroAbstractionLevel}
	case abstractgraph.NonTraversableEndpoint:
		return &Error{Kind: NonTraversableEndpoint}
	default:
		return err
	}
}

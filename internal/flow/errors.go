package flow

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when a search is submitted while another one of the
// same flow has not resolved yet.
var ErrBusy = errors.New("flow: a search is already in flight")

var (
	// ErrNoResponse means the gateway call failed.
	ErrNoResponse = errors.New("no response from gateway")
	// ErrIdentityMismatch means the response belongs to another user.
	ErrIdentityMismatch = errors.New("response user does not match caller")
	// ErrUnauthenticated means no principal is signed in.
	ErrUnauthenticated = errors.New("not signed in")
	// ErrInvalidInput wraps every validation failure.
	ErrInvalidInput = errors.New("invalid input")
)

// Kind classifies a flow failure.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindTransport
	KindIdentityMismatch
	KindUnauthenticated
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindIdentityMismatch:
		return "identity_mismatch"
	case KindUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Error is a failed flow operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
	// Messages holds one user-facing line per problem found. The first one
	// is what the user is shown.
	Messages []string
}

func (e *Error) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Messages[0])
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Message returns the text shown to the user for this failure.
func (e *Error) Message() string {
	if len(e.Messages) > 0 {
		return e.Messages[0]
	}
	switch e.Kind {
	case KindUnauthenticated:
		return msgSignInRequired
	default:
		return msgSearchFailed
	}
}

// IsKind reports whether err is a flow Error of kind k.
func IsKind(err error, k Kind) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == k
}

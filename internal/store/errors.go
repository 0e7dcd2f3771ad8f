package store

import (
	"errors"
	"fmt"
)

// ErrNetworkUnavailable reports that the local connectivity check failed
// before any remote call was attempted.
var ErrNetworkUnavailable = errors.New("no internet connection available")

// Kind classifies a remote failure for error handling and user messaging.
type Kind int

const (
	KindUnknown Kind = iota
	KindPermissionDenied
	KindTimeout
	KindNotFound
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindPermissionDenied:
		return "permission-denied"
	case KindTimeout:
		return "timeout"
	case KindNotFound:
		return "not-found"
	case KindTransport:
		return "transport-failure"
	}
	return "unknown"
}

// RemoteError wraps a backend failure with the operation it happened in and a
// classified kind.
type RemoteError struct {
	Op         string
	Collection string
	Kind       Kind
	Err        error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Collection, e.Kind, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// KindOf extracts the classified kind from an error chain. Errors that did not
// come from a document store operation report KindUnknown.
func KindOf(err error) Kind {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}

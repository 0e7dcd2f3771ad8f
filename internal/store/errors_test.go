package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	inner := errors.New("denied")
	remote := &RemoteError{Op: "list", Collection: "giftBox", Kind: KindPermissionDenied, Err: inner}

	if got := KindOf(remote); got != KindPermissionDenied {
		t.Errorf("KindOf = %v", got)
	}
	// Wrapped once more, the kind still surfaces.
	if got := KindOf(fmt.Errorf("list winners: %w", remote)); got != KindPermissionDenied {
		t.Errorf("KindOf(wrapped) = %v", got)
	}
	if got := KindOf(inner); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v", got)
	}
	if got := KindOf(nil); got != KindUnknown {
		t.Errorf("KindOf(nil) = %v", got)
	}
}

func TestRemoteError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	remote := &RemoteError{Op: "add", Collection: "activity_log", Kind: KindTransport, Err: inner}

	if !errors.Is(remote, inner) {
		t.Error("expected the wrapped error to be reachable")
	}
	if msg := remote.Error(); msg != "add activity_log: transport-failure: boom" {
		t.Errorf("Error() = %q", msg)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindPermissionDenied, "permission-denied"},
		{KindTimeout, "timeout"},
		{KindNotFound, "not-found"},
		{KindTransport, "transport-failure"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

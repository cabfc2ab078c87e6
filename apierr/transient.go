package apierr

import (
	"context"
	"errors"
	"io"
	"syscall"
)

// IsTransient reports whether err looks like a passing fault: a transport
// timeout or reset, or an upstream 500. The client never acts on this itself;
// it is there for callers that want to decide on their own.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	// timeouts from net/http, tls, context deadlines
	var to interface{ Timeout() bool }
	if errors.As(err, &to) && to.Timeout() {
		return true
	}

	// short reads, resets
	if errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	return KindOf(err) == KindInternalServerError
}

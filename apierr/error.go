// Package apierr normalizes every failed BrasilAPI call into a single typed
// error. Upstream non-200 responses and transport failures both end up as an
// *APIError carrying the HTTP status (when one was received), a coarse Kind
// derived from that status, the raw diagnostic text, and an optional parsed
// upstream error payload.
package apierr

import (
	"errors"
	"net/http"
)

// APIError is the error returned by every resource call that did not succeed.
// It is built once by FromResponse, FromTransport or New and is not mutated
// afterwards.
type APIError struct {
	// Status is the HTTP status code. Zero means no response was received
	// (DNS failure, refused connection, timeout before headers).
	Status int

	// Kind is Classify(Status), kept alongside for switch statements.
	Kind Kind

	// Message is the raw response body on HTTP failures, or the transport
	// error text on transport failures. It is meaningful without Payload.
	Message string

	// Payload is the structured upstream error body, when the text parsed
	// as one. Nil otherwise.
	Payload *Payload

	// Cause is the underlying transport error, if any.
	Cause error
}

// New returns a locally synthesized error of the given kind. No status is
// attached because no upstream response produced it.
func New(kind Kind, message string) *APIError {
	return &APIError{Kind: kind, Message: message}
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if txt := http.StatusText(e.Status); txt != "" {
		return txt
	}
	return e.Kind.String()
}

func (e *APIError) Unwrap() error { return e.Cause }

// HasStatus reports whether an HTTP status was observed.
func (e *APIError) HasStatus() bool { return e.Status != 0 }

// DecodeError is returned when a 200 response body does not match the shape
// expected for the resource. It is not an upstream failure and therefore sits
// outside the Kind taxonomy.
type DecodeError struct {
	Resource string
	Err      error
}

func (e *DecodeError) Error() string {
	return "decode " + e.Resource + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// KindOf returns the Kind of the first *APIError in err's chain, or
// KindUnexpected when there is none.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnexpected
}

// IsNotFound is shorthand for KindOf(err) == KindNotFound.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

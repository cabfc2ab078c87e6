package apierr

import (
	"errors"
	"io"
	"net/http"
)

// statusCoder is implemented by transport errors that were detected after a
// status line was read.
type statusCoder interface {
	StatusCode() int
}

// FromTransport converts a failure returned by the HTTP transport (DNS,
// refused connection, timeout, reset) into an *APIError. The status is taken
// from the error chain when some error in it exposes StatusCode(), and is
// otherwise left absent.
func FromTransport(err error) *APIError {
	if err == nil {
		return nil
	}

	status := 0
	var sc statusCoder
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	msg := err.Error()
	return &APIError{
		Status:  status,
		Kind:    Classify(status),
		Message: msg,
		Payload: ParsePayload(msg),
		Cause:   err,
	}
}

// FromResponse passes a 200 response through untouched; its body is left for
// the caller to decode. Any other status is turned into an *APIError: the
// body is read to the end exactly once and closed, so callers must not read
// it again after an error.
func FromResponse(resp *http.Response) (*http.Response, error) {
	if resp == nil {
		return nil, New(KindUnexpected, "nil response")
	}
	if resp.StatusCode == http.StatusOK {
		return resp, nil
	}

	// A failed read keeps whatever arrived; an empty message falls back to
	// the status text in Error().
	var body []byte
	if resp.Body != nil {
		body, _ = io.ReadAll(resp.Body)
		_ = resp.Body.Close()
	}

	msg := string(body)
	return nil, &APIError{
		Status:  resp.StatusCode,
		Kind:    Classify(resp.StatusCode),
		Message: msg,
		Payload: ParsePayload(msg),
	}
}

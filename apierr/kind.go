package apierr

import "net/http"

// Kind is the coarse classification of a failed call.
type Kind int

// Kinds of failure. KindUnexpected is the zero value and covers absent
// statuses and every status without a dedicated kind.
const (
	KindUnexpected Kind = iota
	KindNotFound
	KindBadRequest
	KindInternalServerError
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindInternalServerError:
		return "internal_server_error"
	default:
		return "unexpected"
	}
}

// Classify maps an HTTP status to a Kind. A zero status (no response) and any
// status without a dedicated kind map to KindUnexpected.
func Classify(status int) Kind {
	switch status {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusInternalServerError:
		return KindInternalServerError
	case http.StatusBadRequest:
		return KindBadRequest
	default:
		return KindUnexpected
	}
}

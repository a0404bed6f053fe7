package api

import "fmt"

// Kind classifies a failed API call. Call sites normally only care
// about ApplicationError (show the message) versus everything else
// (show a generic notice). Auth failures on authenticated calls are
// handled centrally through the client's hook; the one that reaches a
// call site is a rejected login, which carries the backend's message.
type Kind int

const (
	// KindApplicationError is a well-formed error envelope from the
	// backend, with a user-presentable message.
	KindApplicationError Kind = iota
	// KindAuthFailure is a 401/403 transport status: the server
	// rejected the token.
	KindAuthFailure
	// KindTimeout is a request that exceeded the client timeout.
	KindTimeout
	// KindNetworkUnreachable is a transport-level failure before any
	// response arrived.
	KindNetworkUnreachable
	// KindUnknownFailure is a response that could not be decoded into
	// the expected envelope shape.
	KindUnknownFailure
)

func (k Kind) String() string {
	switch k {
	case KindApplicationError:
		return "application_error"
	case KindAuthFailure:
		return "auth_failure"
	case KindTimeout:
		return "timeout"
	case KindNetworkUnreachable:
		return "network_unreachable"
	default:
		return "unknown_failure"
	}
}

// APIError is a classified failure of a P2H API call.
type APIError struct {
	Kind       Kind
	StatusCode int    // HTTP status, 0 when no response arrived
	Message    string // backend message for application errors
	Err        error  // underlying transport/decode error, if any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *APIError) Unwrap() error { return e.Err }

// IsAuthFailure reports whether err is a classified auth failure.
func IsAuthFailure(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Kind == KindAuthFailure
}

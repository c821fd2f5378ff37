package homebox

import (
	"errors"
	"fmt"
)

// The client reports failures in two tiers. RequestError and
// StatusError cover everything between us and the API: connection
// failures and non-200 responses. DecodeError covers responses we got
// but could not make sense of. Callers branch on the tier with
// IsTransport and fold the tiers into their own messages.

// RequestError wraps a failure to build or perform the HTTP request.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// StatusError reports a non-200 response, body included verbatim.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Body)
}

// DecodeError wraps a failure to parse a response body.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsTransport reports whether err sits in the transport/HTTP tier
// (request failed or bad status) as opposed to the decode tier.
func IsTransport(err error) bool {
	var reqErr *RequestError
	var statusErr *StatusError
	return errors.As(err, &reqErr) || errors.As(err, &statusErr)
}

package centrapay

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingRequestID is returned when a create response has no requestId.
var ErrMissingRequestID = errors.New("response did not contain a requestId")

// HTTPError is returned for any response with a non-2xx status.
type HTTPError struct {
	Endpoint   string
	StatusCode int
	Status     string
	Body       []byte
	RetryAfter time.Duration
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s returned %s", e.Endpoint, e.Status)
	if e.RetryAfter > 0 {
		msg += fmt.Sprintf(" (retry after %v)", e.RetryAfter)
	}
	return msg
}

// TransportError wraps failures that produced no HTTP response at all.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("calling %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

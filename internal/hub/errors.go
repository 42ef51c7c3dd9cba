package hub

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportError reports a failed round trip to the hub: network error,
// timeout or a non-2xx status.
type TransportError struct {
	Op         string
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("hub %s: %s returned %d", e.Op, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("hub %s: %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// retryable reports whether repeating the call may succeed.
func (e *TransportError) retryable() bool {
	if e.StatusCode == 0 {
		return true
	}
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// MalformedResponseError reports a response that could not be understood:
// invalid JSON, an error status in the envelope, or missing fields.
type MalformedResponseError struct {
	Op  string
	URL string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("hub %s: malformed response from %s: %v", e.Op, e.URL, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// IsTransport reports whether err is or wraps a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsMalformed reports whether err is or wraps a MalformedResponseError.
func IsMalformed(err error) bool {
	var me *MalformedResponseError
	return errors.As(err, &me)
}

package aarch64

import "fmt"

// TransportError reports a request that never produced a usable API
// envelope: the console answered with a non-200 status.
type TransportError struct {
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("API returned HTTP %d", e.StatusCode)
}

// APIError reports a request the console accepted and rejected. Error()
// is exactly the message the console sent back.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// DecodeError reports a 200 response whose body could not be parsed as
// the standard response envelope.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse API response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

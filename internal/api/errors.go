package api

import "fmt"

// StatusError is returned when the server answered with a non-2xx
// status. Body carries the raw response bytes so callers can probe it
// for a {success, message} payload.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: server returned status %d", e.Code)
}

// DecodeError is returned when a 2xx response body does not match the
// declared response type. It is distinct from transport failures: a
// response was received, it just wasn't the shape we expect.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("api: decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

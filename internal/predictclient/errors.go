package predictclient

import "errors"

// TransportError signals that the request never produced a response:
// dial failure, reset connection, canceled context, unreadable body.
type TransportError struct{ Err error }

func (e *TransportError) Error() string { return "transport: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport reports whether err is a *TransportError.
func IsTransport(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}

// DecodeError signals a response whose body is not JSON.
type DecodeError struct {
	Status int
	Err    error
}

func (e *DecodeError) Error() string { return "decode response: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

// IsDecode reports whether err is a *DecodeError.
func IsDecode(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}

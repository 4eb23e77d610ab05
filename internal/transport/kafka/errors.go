package kafka

import "errors"

// permanentError marks a failure that redelivery cannot fix.
type permanentError struct{ err error }

func (e permanentError) Error() string {
	if e.err == nil {
		return "kafka: permanent failure"
	}
	return "kafka: permanent failure: " + e.err.Error()
}

func (e permanentError) Unwrap() error { return e.err }

// Permanent wraps err so the consumer commits the message instead of retrying it.
// Handlers use it for payloads that will never succeed.
func Permanent(err error) error {
	return permanentError{err: err}
}

// IsPermanent reports whether err was wrapped by Permanent.
func IsPermanent(err error) bool {
	var p permanentError
	return errors.As(err, &p)
}

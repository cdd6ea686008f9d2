package apierror

import "errors"

// PublicError is the single error shape handed to callers outside this
// client. StatusCode is set only when the upstream rejected the request
// with a specific HTTP status; Field and RetryAfter survive from
// validation and rate-limit failures respectively.
type PublicError struct {
	Message    string
	StatusCode int
	Field      string
	RetryAfter int
	cause      error
}

func (e *PublicError) Error() string { return e.Message }

func (e *PublicError) Unwrap() error { return e.cause }

// Convert maps any internal failure to a PublicError. Errors outside the
// taxonomy are stringified and wrapped so the caller still sees one shape.
func Convert(err error) *PublicError {
	if err == nil {
		return nil
	}

	var e *Error
	if !errors.As(err, &e) {
		return &PublicError{Message: err.Error(), cause: err}
	}

	p := &PublicError{Message: e.Message, cause: e.Cause}
	switch e.Kind {
	case KindAPI:
		p.StatusCode = e.StatusCode
	case KindValidation:
		p.Field = e.Field
	case KindRateLimit:
		p.RetryAfter = e.RetryAfter
	}
	return p
}

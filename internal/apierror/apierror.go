package apierror

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure reasons this client produces.
type Kind int

const (
	KindAPI Kind = iota
	KindNetwork
	KindValidation
	KindRateLimit
	KindPreconditionFailed
	KindConflict
	KindGone
)

func (k Kind) String() string {
	switch k {
	case KindAPI:
		return "api"
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindRateLimit:
		return "rate_limit"
	case KindPreconditionFailed:
		return "precondition_failed"
	case KindConflict:
		return "conflict"
	case KindGone:
		return "gone"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the internal tagged error. Only the fields matching the Kind
// are set: StatusCode for KindAPI, Field for KindValidation, RetryAfter
// for KindRateLimit.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Field      string
	RetryAfter int // seconds, 0 when the upstream gave no hint
	Cause      error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Cause }

func NewAPI(statusCode int, message string) *Error {
	return &Error{Kind: KindAPI, StatusCode: statusCode, Message: message}
}

func NewNetwork(message string, cause error) *Error {
	return &Error{Kind: KindNetwork, Message: message, Cause: cause}
}

func NewValidation(message, field string) *Error {
	return &Error{Kind: KindValidation, Message: message, Field: field}
}

func NewRateLimit(message string, retryAfter int) *Error {
	return &Error{Kind: KindRateLimit, Message: message, RetryAfter: retryAfter}
}

func NewPreconditionFailed(message string) *Error {
	return &Error{Kind: KindPreconditionFailed, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NewGone(message string) *Error {
	return &Error{Kind: KindGone, Message: message}
}

// FromStatus maps an HTTP status code to the matching error. Known codes
// get a canned message that names the likely root cause; anything else
// passes the upstream message through as an API error.
func FromStatus(statusCode int, message string) *Error {
	switch statusCode {
	case 400:
		return NewAPI(statusCode, "Bad Request: Invalid tournament parameters or item IDs")
	case 403:
		return NewAPI(statusCode, "Forbidden: Invalid Steam auth code - generate a new one at help.steampowered.com")
	case 404:
		return NewAPI(statusCode, "Not Found: Sticker item not owned by user or incorrect team/player ID")
	case 405:
		return NewAPI(statusCode, "Method Not Allowed: Endpoint not available for this tournament")
	case 409:
		return NewConflict("Predictions not allowed yet for this stage - wait for stage to unlock")
	case 410:
		return NewGone("Prediction window closed - matches have already started")
	case 412:
		return NewPreconditionFailed("Cannot place pick: conflicts with existing predictions from previous stages")
	case 429:
		return NewRateLimit("Too many requests - reduce API call frequency", 0)
	case 500:
		return NewAPI(statusCode, "Internal Server Error")
	case 503:
		return NewAPI(statusCode, "Service Unavailable - Steam servers may be down or under maintenance")
	case 504:
		return NewAPI(statusCode, "Gateway Timeout - request may complete later, check predictions status")
	default:
		return NewAPI(statusCode, message)
	}
}

// IsRateLimit reports whether err is (or wraps) a rate-limit error.
func IsRateLimit(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindRateLimit
}

// KindOf extracts the Kind from err, if err belongs to this taxonomy.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

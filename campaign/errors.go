package campaign

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Kind classifies a failure of the function.
type Kind int

const (
	// KindInternal is any unexpected failure. Its detail is never shown.
	KindInternal Kind = iota
	KindMethodNotAllowed
	KindConfiguration
	KindInvalidInput
	// KindUpstream means the generation API rejected or failed the call.
	KindUpstream
	// KindMalformedUpstreamResponse means the generation API answered but its
	// completion could not be understood. Reported to the caller as internal.
	KindMalformedUpstreamResponse
)

func (k Kind) String() string {
	switch k {
	case KindMethodNotAllowed:
		return "method_not_allowed"
	case KindConfiguration:
		return "configuration"
	case KindInvalidInput:
		return "invalid_input"
	case KindUpstream:
		return "upstream"
	case KindMalformedUpstreamResponse:
		return "malformed_upstream_response"
	default:
		return "internal"
	}
}

// Messages returned to the caller.
const (
	msgMethodNotAllowed = "Method Not Allowed"
	msgNotConfigured    = "API key not configured."
	msgSeedRequired     = "seedContent is required."
	msgInvalidBody      = "Request body must be a valid JSON object."
	msgUpstreamFailed   = "Gemini API failed: "
	msgInternal         = "An internal server error occurred."
)

// Error is a failure with the status and message it maps to.
type Error struct {
	Kind Kind
	// Status is the HTTP status of the response.
	Status int
	// Message is the caller-visible message for kinds that may expose one.
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}

	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PublicMessage is the message the caller may see. Internal and malformed
// upstream failures are flattened to a generic message.
func (e *Error) PublicMessage() string {
	switch e.Kind {
	case KindInternal, KindMalformedUpstreamResponse:
		return msgInternal
	}

	return e.Message
}

// StatusCode is the HTTP status the failure maps to.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindInternal, KindMalformedUpstreamResponse:
		return http.StatusInternalServerError
	}

	if e.Status == 0 {
		return http.StatusInternalServerError
	}

	return e.Status
}

func errMethodNotAllowed(method string) *Error {
	return &Error{
		Kind:    KindMethodNotAllowed,
		Status:  http.StatusMethodNotAllowed,
		Message: msgMethodNotAllowed,
		Err:     errors.Errorf("method %s not allowed", method),
	}
}

func errNotConfigured() *Error {
	return &Error{
		Kind:    KindConfiguration,
		Status:  http.StatusInternalServerError,
		Message: msgNotConfigured,
	}
}

func errInvalidInput(message string, err error) *Error {
	return &Error{
		Kind:    KindInvalidInput,
		Status:  http.StatusBadRequest,
		Message: message,
		Err:     err,
	}
}

func errUpstream(status int, body string, err error) *Error {
	return &Error{
		Kind:    KindUpstream,
		Status:  status,
		Message: msgUpstreamFailed + body,
		Err:     err,
	}
}

func errMalformedUpstream(err error) *Error {
	return &Error{
		Kind: KindMalformedUpstreamResponse,
		Err:  err,
	}
}

// AsError returns err as an *Error, wrapping anything unrecognised as
// KindInternal.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return &Error{Kind: KindInternal, Err: err}
}

package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags a failure so handlers can map it to a status code instead of
// collapsing every error into one response shape.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindUpstream
)

type Error struct {
	Kind Kind
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, code string, err error) *Error {
	return &Error{Kind: kind, Code: code, Err: err}
}

func NotFound(code string, err error) *Error   { return New(KindNotFound, code, err) }
func Validation(code string, err error) *Error { return New(KindValidation, code, err) }
func Upstream(code string, err error) *Error   { return New(KindUpstream, code, err) }
func Internal(code string, err error) *Error   { return New(KindInternal, code, err) }

func IsNotFound(err error) bool   { return kindOf(err) == KindNotFound }
func IsValidation(err error) bool { return kindOf(err) == KindValidation }
func IsUpstream(err error) bool   { return kindOf(err) == KindUpstream }

func kindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindInternal
}

// Status maps an error kind to its HTTP status. Upstream failures map to 502
// for the rare paths that surface them; AI endpoints swallow them with
// fallback content before they ever reach a handler.
func Status(err error) int {
	switch kindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func Statusf(kind Kind, code string, format string, args ...any) *Error {
	return New(kind, code, fmt.Errorf(format, args...))
}

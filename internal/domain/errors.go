package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure surfaced by the core services
type ErrorKind string

const (
	KindCloneFailed        ErrorKind = "CloneFailed"
	KindGitUnavailable     ErrorKind = "GitUnavailable"
	KindInvalidURL         ErrorKind = "InvalidUrl"
	KindPersistenceFailure ErrorKind = "PersistenceFailure"
	KindSessionExpired     ErrorKind = "SessionExpired"
	KindSessionNotFound    ErrorKind = "SessionNotFound"
	KindTimeout            ErrorKind = "Timeout"
	KindUpdateFailed       ErrorKind = "UpdateFailed"
)

// Error is a typed outcome carrying a kind and a human-readable detail.
// Two errors match with errors.Is when their kinds are equal and the target
// carries no detail, so the sentinels below can be used for classification.
type Error struct {
	Detail string
	Err    error
	Kind   ErrorKind
}

// Sentinels for errors.Is checks
var (
	ErrCloneFailed        = &Error{Kind: KindCloneFailed}
	ErrGitUnavailable     = &Error{Kind: KindGitUnavailable}
	ErrInvalidURL         = &Error{Kind: KindInvalidURL}
	ErrPersistenceFailure = &Error{Kind: KindPersistenceFailure}
	ErrSessionExpired     = &Error{Kind: KindSessionExpired}
	ErrSessionNotFound    = &Error{Kind: KindSessionNotFound}
	ErrTimeout            = &Error{Kind: KindTimeout}
	ErrUpdateFailed       = &Error{Kind: KindUpdateFailed}
)

// ErrMirrorNotFound is returned when an existing mirror is expected on disk but absent
var ErrMirrorNotFound = errors.New("repository mirror not found")

// NewError builds a typed error, optionally wrapping the underlying cause
func NewError(kind ErrorKind, detail string, cause error) *Error {
	return &Error{Detail: detail, Err: cause, Kind: kind}
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on kind when the target is a detail-free sentinel
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Detail == "" && t.Err == nil && t.Kind == e.Kind
}

// KindOf extracts the ErrorKind from an error chain
func KindOf(err error) (ErrorKind, bool) {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind, true
	}
	return "", false
}

package model

import (
	"errors"
	"fmt"
)

// Kind classifies a failure of the core.
type Kind int

const (
	// KindFilesystem covers directory creation and file write failures.
	KindFilesystem Kind = iota + 1
	// KindNetwork covers transport failures and non-success HTTP statuses.
	KindNetwork
	// KindParse covers invalid JSON and missing fields in the metadata document.
	KindParse
)

// String returns a human readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFilesystem:
		return "filesystem error"
	case KindNetwork:
		return "network error"
	case KindParse:
		return "parse error"
	default:
		return "unknown error"
	}
}

// Error is a failure detected by the resolver or the fetcher.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// Op is the operation that failed, e.g. "create directory" or "fetch metadata".
	Op string

	// Target is the path or URL the operation was working on.
	Target string

	// Err is the underlying cause. It may be nil for validation failures.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.String() + ": " + e.Op
	if e.Target != "" {
		msg += " " + fmt.Sprintf("%q", e.Target)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewFilesystemError wraps err as a KindFilesystem failure.
func NewFilesystemError(op, path string, err error) *Error {
	return &Error{Kind: KindFilesystem, Op: op, Target: path, Err: err}
}

// NewNetworkError wraps err as a KindNetwork failure.
func NewNetworkError(op, url string, err error) *Error {
	return &Error{Kind: KindNetwork, Op: op, Target: url, Err: err}
}

// NewParseError wraps err as a KindParse failure.
func NewParseError(op string, err error) *Error {
	return &Error{Kind: KindParse, Op: op, Err: err}
}

// IsKind reports whether any error in err's chain is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Package apperror classifies the failures of the sign-in screen.
// None of them is shown to the user; callers log them and keep their state.
package apperror

import (
	"errors"
	"fmt"
)

// Kind is the failure category
type Kind int

const (
	KindAuthCancelled Kind = iota + 1
	KindAuthFailed
	KindNetwork
	KindParse
	KindStorage
)

var (
	ErrAuthCancelled = errors.New("authorization cancelled")
	ErrAuthFailed    = errors.New("authorization failed")
	ErrNetwork       = errors.New("network error")
	ErrParse         = errors.New("parse error")
	ErrStorage       = errors.New("storage error")
)

func (k Kind) String() string {
	switch k {
	case KindAuthCancelled:
		return "auth_cancelled"
	case KindAuthFailed:
		return "auth_failed"
	case KindNetwork:
		return "network"
	case KindParse:
		return "parse"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindAuthCancelled:
		return ErrAuthCancelled
	case KindAuthFailed:
		return ErrAuthFailed
	case KindNetwork:
		return ErrNetwork
	case KindParse:
		return ErrParse
	case KindStorage:
		return ErrStorage
	default:
		return nil
	}
}

// Error carries the kind and the operation that failed
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind.sentinel())
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind, so errors.Is(err, ErrNetwork)
// works without unwrapping to the cause.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// New wraps err with a kind and an operation name
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func Cancelled(op string) *Error {
	return &Error{Kind: KindAuthCancelled, Op: op}
}

func AuthFailed(op string, err error) *Error {
	return New(KindAuthFailed, op, err)
}

func Network(op string, err error) *Error {
	return New(KindNetwork, op, err)
}

func Parse(op string, err error) *Error {
	return New(KindParse, op, err)
}

func Storage(op string, err error) *Error {
	return New(KindStorage, op, err)
}

// KindOf returns the kind of the first *Error in err's chain, or 0
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

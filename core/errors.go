package core

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline failures.
type Kind string

const (
	KindFetch      Kind = "fetch"
	KindParse      Kind = "parse"
	KindImageFetch Kind = "image fetch"
	KindFilesystem Kind = "filesystem"
)

// Sentinels for errors.Is checks against a Kind.
var (
	ErrFetch      = errors.New("fetch error")
	ErrParse      = errors.New("parse error")
	ErrImageFetch = errors.New("image fetch error")
	ErrFilesystem = errors.New("filesystem error")
)

// Error is a pipeline failure tagged with its Kind and the resource
// (URL or path) it concerns.
type Error struct {
	Kind     Kind
	Resource string
	Err      error
}

// Errorf builds an *Error of the given kind.
func Errorf(kind Kind, resource string, format string, args ...any) *Error {
	return &Error{Kind: kind, Resource: resource, Err: fmt.Errorf(format, args...)}
}

// Wrap tags err with kind. A nil err stays nil.
func Wrap(kind Kind, resource string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Resource: resource, Err: err}
}

func (e *Error) Error() string {
	if e.Resource == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Resource, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel matching e's Kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindFetch:
		return target == ErrFetch
	case KindParse:
		return target == ErrParse
	case KindImageFetch:
		return target == ErrImageFetch
	case KindFilesystem:
		return target == ErrFilesystem
	}
	return false
}

// ErrorKind returns the Kind of the first *Error in err's chain, or "".
func ErrorKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

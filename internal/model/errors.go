package model

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindUsage ErrorKind = iota + 1
	KindFileNotFound
	KindRead
	KindInvalidPattern
	KindNoMatch
)

var (
	ErrUsage          = errors.New("usage error")
	ErrFileNotFound   = errors.New("file not found")
	ErrRead           = errors.New("read error")
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrNoMatch        = errors.New("no keywords matched")
)

func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "UsageError"
	case KindFileNotFound:
		return "FileNotFound"
	case KindRead:
		return "ReadError"
	case KindInvalidPattern:
		return "InvalidPattern"
	case KindNoMatch:
		return "NoMatch"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindUsage:
		return ErrUsage
	case KindFileNotFound:
		return ErrFileNotFound
	case KindRead:
		return ErrRead
	case KindInvalidPattern:
		return ErrInvalidPattern
	case KindNoMatch:
		return ErrNoMatch
	default:
		return nil
	}
}

// ValidationError is a terminal failure of one validation run. Error() renders
// the diagnostic line printed to stderr.
type ValidationError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func NewError(kind ErrorKind, path string, err error) *ValidationError {
	return &ValidationError{Kind: kind, Path: path, Err: err}
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindUsage:
		return "Usage: validate-output <pattern> <output_file>"
	case KindFileNotFound:
		return fmt.Sprintf("Error: File not found: %s", e.Path)
	case KindRead:
		return fmt.Sprintf("Error reading file: %v", e.Err)
	case KindInvalidPattern:
		return fmt.Sprintf("Error: Invalid regex pattern: %v", e.Err)
	case KindNoMatch:
		return "Error: No keywords matched"
	default:
		return fmt.Sprintf("Error: %v", e.Err)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrNoMatch) and friends match on the kind.
func (e *ValidationError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && s == target
}

// KindOf returns the kind of a validation failure, 0 for foreign errors.
func KindOf(err error) ErrorKind {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Kind
	}
	return 0
}

// Package jpverrors centralizes the error taxonomy shared by the index
// builder and query engine, following the typed-error-struct pattern
// used throughout the donor's pkg/ingest (PoolError, BatchWriterError).
package jpverrors

import "fmt"

// Kind identifies which error taxonomy entry an IndexError represents.
type Kind uint8

const (
	// MagicMismatch: opening a buffer whose magic constant does not match.
	MagicMismatch Kind = iota
	// Outdated: opening a buffer whose version constant does not match.
	Outdated
	// Buffer: any lower-level zero-copy decoding failure.
	Buffer
	// Parse: XML input did not satisfy the expected schema.
	Parse
	// BadSequence: a sequence id referenced by the caller has no entry.
	BadSequence
	// Cancelled: the build cancel token was observed set.
	Cancelled
	// MissingEntry: a payload id's offset lies outside the buffer.
	MissingEntry
)

func (k Kind) String() string {
	switch k {
	case MagicMismatch:
		return "magic mismatch"
	case Outdated:
		return "outdated"
	case Buffer:
		return "buffer error"
	case Parse:
		return "parse error"
	case BadSequence:
		return "bad sequence"
	case Cancelled:
		return "cancelled"
	case MissingEntry:
		return "missing entry"
	default:
		return "unknown error"
	}
}

// IndexError is the single typed error returned by every fallible core
// operation. Kind lets callers distinguish open-time magic/version
// errors (spec.md §7, "returned as the first action") from the rest via
// errors.As.
type IndexError struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *IndexError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *IndexError) Unwrap() error { return e.Err }

func New(kind Kind, msg string) error {
	return &IndexError{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) error {
	return &IndexError{Kind: kind, Msg: msg, Err: err}
}

// Is reports whether err is an IndexError of the given kind.
func Is(err error, kind Kind) bool {
	ie, ok := err.(*IndexError)
	if !ok {
		return false
	}
	return ie.Kind == kind
}

// ErrCancelled is the sentinel returned by the builder when the cancel
// token is observed set between entries.
var ErrCancelled = New(Cancelled, "build cancelled")

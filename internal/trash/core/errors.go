package core

import (
	"errors"
	"fmt"
)

// Common errors that can be returned while moving entries in and out of trash
var (
	ErrNotFound          = errors.New("no such file or directory")
	ErrDestinationExists = errors.New("destination already exists")
)

// Op names a trash operation
type Op string

const (
	OpDelete  Op = "delete"
	OpTrash   Op = "trash"
	OpPurge   Op = "purge"
	OpRestore Op = "restore"
	OpEmpty   Op = "empty"
)

// ValidationError rejects a whole batch before anything is touched
type ValidationError struct {
	Op     Op
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cannot %s %q: %s", e.Op, e.Path, e.Reason)
}

// DecodeError is returned when a path claimed to be trashed does not match
// any known trash directory.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IOError wraps a filesystem failure of a single file in a batch
type IOError struct {
	Op   Op
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return string(e.Op) + ": " + e.Err.Error()
	}
	return string(e.Op) + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(op Op, path string, err error) error {
	return &IOError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// RestoreConflict is returned when the restore destination is occupied and
// overwriting is not allowed.
type RestoreConflict struct {
	Path        string
	Destination string
}

func (e *RestoreConflict) Error() string {
	return fmt.Sprintf("cannot restore %q: %q already exists", e.Path, e.Destination)
}

func (e *RestoreConflict) Unwrap() error {
	return ErrDestinationExists
}

// IsValidation returns true if err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound returns true if the error is ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDestinationExists returns true if the error is ErrDestinationExists
func IsDestinationExists(err error) bool {
	return errors.Is(err, ErrDestinationExists)
}

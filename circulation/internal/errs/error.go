package errs

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrPersistence   = errors.New("internal storage failure")
	ErrUnknownStatus = errors.New("status is not registered")
	// ErrStatusConfig is a configured status name missing from the taxonomy.
	ErrStatusConfig  = errors.New("configured status is not registered")
	ErrInvalidPage   = errors.New("page or size out of range")
)


// Package internalerr defines the sentinel errors shared by the sentenizer
// packages. Callers match them with errors.Is.
package internalerr

import "errors"

var (
	// ErrNotFound reports that a store holds no abbreviation tables.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput reports input the commands cannot read, such as an unknown format.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidConfig reports bad options, marker classes or table keys.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrStoreUnavailable wraps database failures.
	ErrStoreUnavailable = errors.New("store unavailable")
)

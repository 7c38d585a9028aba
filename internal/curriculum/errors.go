package curriculum

import (
	"errors"
	"fmt"
)

// ErrManifestMissing indicates no manifest exists in the curriculum directory.
var ErrManifestMissing = errors.New("curriculum manifest not found")

// ErrNotFound indicates a named exercise is absent from the curriculum.
var ErrNotFound = errors.New("no exercise found for your given name")

// ManifestError reports a manifest that is missing, unreadable or invalid.
type ManifestError struct {
	Path string // Manifest path (or directory searched when missing)
	Err  error  // Underlying error
}

// Error implements the error interface for ManifestError.
func (e *ManifestError) Error() string {
	return fmt.Sprintf("manifest %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *ManifestError) Unwrap() error {
	return e.Err
}

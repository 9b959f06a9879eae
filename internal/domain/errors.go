package domain

import "errors"

// Sentinel errors shared across repositories and services.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError is a client-visible validation failure. The message is safe
// to return verbatim in an error response body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation failures for event writes, in the order they are checked.
var (
	ErrMissingFields     = &ValidationError{Message: "missing required fields"}
	ErrImageURLTooLong   = &ValidationError{Message: "image link too long, use a regular URL instead of inline image data"}
	ErrInvalidDateFormat = &ValidationError{Message: "invalid date format"}
)

// Validation failures for uploads, in the order they are checked.
var (
	ErrNoFile               = &ValidationError{Message: "no file provided"}
	ErrFileTooLarge         = &ValidationError{Message: "file size must not exceed 5MB"}
	ErrNotAnImage           = &ValidationError{Message: "only image files can be uploaded"}
	ErrInvalidFileExtension = &ValidationError{Message: "invalid file extension, only .jpg, .jpeg, .png, .webp and .gif are allowed"}
)

package service

import "errors"

// Typed errors mapped to HTTP status codes in the delivery layer.
var (
	ErrAdminNotFound   = errors.New("Admin ID not found")
	ErrTeacherNotFound = errors.New("Teacher ID not found")
	ErrStudentNotFound = errors.New("Student not found")

	ErrIncorrectPassword    = errors.New("Incorrect password")
	ErrNoPasswordSet        = errors.New("Please set up your password first")
	ErrPasswordTooShort     = errors.New("Password must be at least 8 characters")
	ErrPasswordUpdateFailed = errors.New("Failed to update password")
)

// DuplicateKeyError carries the underlying constraint violation so its
// message can be reported to the caller verbatim.
type DuplicateKeyError struct {
	Err error
}

func (e *DuplicateKeyError) Error() string {
	return e.Err.Error()
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// MissingFieldError names the first required field absent from a request.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "Missing field: " + e.Field
}

// ValidationError is a plain bad-request failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

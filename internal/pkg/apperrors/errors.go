package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordMismatch = errors.New("password and confirmation password do not match")
	ErrIDMismatch       = errors.New("path ID does not match body ID")

	// Persistence errors
	ErrPersistence = errors.New("persistence failure")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Department Errors
var (
	ErrDepartmentNotFound = errors.New("department not found")
)

// Course Errors
var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrInvalidTeacher  = errors.New("assigned user is not a teacher")
)

// Grade Errors
var (
	ErrGradeNotFound   = errors.New("grade not found")
	ErrInvalidStudent  = errors.New("graded user is not a student")
	ErrGradeOutOfRange = errors.New("grade value must be between 0 and 100")
)

// Content Errors
var (
	ErrInvalidFormat = errors.New("invalid token format")
	ErrInvalidFile   = errors.New("invalid file type")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

package errors

import "fmt"

// ErrCode represents an error code
type ErrCode string

const (
	ErrCodeNotFound      ErrCode = "NOT_FOUND"
	ErrCodeUnauthorized  ErrCode = "UNAUTHORIZED"
	ErrCodeForbidden     ErrCode = "FORBIDDEN"
	ErrCodeBadRequest    ErrCode = "BAD_REQUEST"
	ErrCodeUnavailable   ErrCode = "UNAVAILABLE"
	ErrCodeCannotResolve ErrCode = "CANNOT_RESOLVE"
	ErrCodeInternal      ErrCode = "INTERNAL_ERROR"
)

// AppError represents an application error
type AppError struct {
	Code    ErrCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeUnauthorized,
		Message: message,
	}
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeForbidden,
		Message: message,
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
	}
}

// NewUnavailableError creates an error for an upstream call that failed
func NewUnavailableError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeUnavailable,
		Message: message,
		Err:     err,
	}
}

// NewCannotResolveError creates an error for a repository URL that does not
// parse into an owner/name pair
func NewCannotResolveError(url string) *AppError {
	return &AppError{
		Code:    ErrCodeCannotResolve,
		Message: fmt.Sprintf("cannot resolve repository URL %q", url),
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsForbidden checks if the error is a forbidden error
func IsForbidden(err error) bool {
	return hasCode(err, ErrCodeForbidden)
}

// IsUnavailable checks if the error is an upstream availability error
func IsUnavailable(err error) bool {
	return hasCode(err, ErrCodeUnavailable)
}

// IsCannotResolve checks if the error is a URL resolution error
func IsCannotResolve(err error) bool {
	return hasCode(err, ErrCodeCannotResolve)
}

func hasCode(err error, code ErrCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

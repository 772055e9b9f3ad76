package cserr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeFormatFailed       = "FORMAT_FAILED"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a snippet is absent from the store.
	// The id was well-formed; the referent simply does not exist.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "snippet not found with given id")

	// ErrInvalidReq is returned when a request fails validation.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrFormatFailed is returned when the formatting engine rejected the input.
	ErrFormatFailed = New(fiber.StatusInternalServerError, CodeFormatFailed, "failed to format code")

	// ErrStorage is returned when the persistence layer could not complete an operation.
	ErrStorage = New(fiber.StatusInternalServerError, CodeStorageUnavailable, "storage layer could not complete the operation")

	// ErrInternalError is returned when an unexpected error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]interface{}

type CodeShareError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *CodeShareError {
	return &CodeShareError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// Msg returns a copy of the error with its message replaced.
// The sentinel errors above stay untouched.
func (e CodeShareError) Msg(format string, parts ...interface{}) *CodeShareError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e CodeShareError) WithExtras(extras Extras) *CodeShareError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *CodeShareError {
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *CodeShareError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

// Package apperror defines the coded errors surfaced by the workflow core.
package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindInvalidInput     Kind = "invalid_input"
	KindGenerationFailed Kind = "generation_failed"
	KindRenderFailed     Kind = "render_failed"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func GenerationFailed(err error, format string, args ...any) *Error {
	return &Error{Kind: KindGenerationFailed, Message: fmt.Sprintf(format, args...), Err: err}
}

func RenderFailed(err error, format string, args ...any) *Error {
	return &Error{Kind: KindRenderFailed, Message: fmt.Sprintf(format, args...), Err: err}
}

// Is reports whether err carries the given kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// Message returns the app-level message of err, or err.Error() for plain errors.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// HTTPStatus maps an error to the status code the API responds with.
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindInvalidInput:
		return fiber.StatusBadRequest
	case KindGenerationFailed:
		return fiber.StatusBadGateway
	case KindRenderFailed:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

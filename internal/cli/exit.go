package cli

import (
	"errors"

	"github.com/specialistvlad/shaderkit/internal/compiler"
	"github.com/specialistvlad/shaderkit/internal/config"
	"github.com/specialistvlad/shaderkit/internal/shader"
	"github.com/specialistvlad/shaderkit/internal/swizzle"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// ToExitError maps an error returned by a command to the process exit code:
// the compiler's own status for compiler failures, 2 for configuration and
// usage errors, 1 for everything else.
func ToExitError(err error) *ExitError {
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	var toolErr *compiler.ExternalToolError
	if errors.As(err, &toolErr) {
		code := toolErr.Code
		if code <= 0 {
			code = 1
		}
		return &ExitError{Code: code, Message: err.Error()}
	}

	switch {
	case errors.Is(err, shader.ErrUnknownStage),
		errors.Is(err, shader.ErrUnknownOutputMode),
		errors.Is(err, config.ErrInvalidProject),
		errors.Is(err, swizzle.ErrEmptyAlphabet),
		errors.Is(err, swizzle.ErrInvalidLength):
		return &ExitError{Code: 2, Message: err.Error()}
	}

	return &ExitError{Code: 1, Message: err.Error()}
}

package compiler

import (
	"fmt"
	"strings"
)

// ExternalToolError reports a compiler process that exited with a non-zero status.
type ExternalToolError struct {
	Tool string
	Args []string
	Code int
}

// Error implements the error interface for ExternalToolError.
func (e *ExternalToolError) Error() string {
	return fmt.Sprintf("%s %s exited with status %d", e.Tool, strings.Join(e.Args, " "), e.Code)
}

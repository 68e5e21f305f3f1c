package compiler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Runner executes an external program and blocks until it exits.
type Runner interface {
	Run(ctx context.Context, name string, args []string) error
}

// ExecRunner runs programs with os/exec. The program's output is forwarded
// to Stdout and Stderr.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements the Runner interface for ExecRunner.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExternalToolError{Tool: name, Args: args, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}

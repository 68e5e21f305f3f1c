package testutil

import (
	"context"
	"sync"

	"github.com/specialistvlad/shaderkit/internal/compiler"
)

// Invocation is one recorded call to RecordingRunner.Run.
type Invocation struct {
	Name string
	Args []string
}

// RecordingRunner is a compiler.Runner that records invocations instead of
// starting processes. When FailOn returns a non-zero code for an invocation,
// Run reports it as a compiler failure with that exit code.
type RecordingRunner struct {
	FailOn func(inv Invocation) int

	mu    sync.Mutex
	calls []Invocation
}

// Run implements the compiler.Runner interface for RecordingRunner.
func (r *RecordingRunner) Run(_ context.Context, name string, args []string) error {
	inv := Invocation{Name: name, Args: append([]string(nil), args...)}

	r.mu.Lock()
	r.calls = append(r.calls, inv)
	r.mu.Unlock()

	if r.FailOn != nil {
		if code := r.FailOn(inv); code != 0 {
			return &compiler.ExternalToolError{Tool: name, Args: inv.Args, Code: code}
		}
	}
	return nil
}

// Calls returns a copy of the recorded invocations.
func (r *RecordingRunner) Calls() []Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Invocation(nil), r.calls...)
}

// Arg returns the value following flag in the invocation, or "".
func (inv Invocation) Arg(flag string) string {
	for i := 0; i < len(inv.Args)-1; i++ {
		if inv.Args[i] == flag {
			return inv.Args[i+1]
		}
	}
	return ""
}

// Has reports whether flag appears anywhere in the invocation.
func (inv Invocation) Has(flag string) bool {
	for _, a := range inv.Args {
		if a == flag {
			return true
		}
	}
	return false
}

// Source returns the trailing positional argument of the invocation.
func (inv Invocation) Source() string {
	if len(inv.Args) == 0 {
		return ""
	}
	return inv.Args[len(inv.Args)-1]
}

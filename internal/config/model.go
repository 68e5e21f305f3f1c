package config

import "errors"

// ErrInvalidProject marks a project file that parsed but holds values the
// driver cannot use.
var ErrInvalidProject = errors.New("invalid project file")

// Project is the unified, format-agnostic representation of a project file.
type Project struct {
	// FilePath is where the project was loaded from; empty for defaults.
	FilePath string

	// OutputMode is the keyword of the default output mode, or empty.
	OutputMode string

	// Exclude holds slash-separated glob patterns, relative to the shader
	// root, of sources the driver must skip.
	Exclude []string

	Compiler Compiler
}

// Compiler configures the external compiler executable.
type Compiler struct {
	Path      string
	ExtraArgs string
}

// Default returns the project used when no project file exists.
func Default() *Project {
	return &Project{}
}

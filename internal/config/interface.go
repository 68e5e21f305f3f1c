package config

import "context"

// DefaultFileName is the project file looked up in the shader root when no
// explicit path is given.
const DefaultFileName = "shaderc.hcl"

// Loader is the interface for a format-specific project file loader.
type Loader interface {
	// Load reads the project file at path and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Project, error)
}

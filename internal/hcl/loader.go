package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/shaderkit/internal/config"
	"github.com/specialistvlad/shaderkit/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// Environ supplies the variables exposed as `env`. Nil means os.Environ.
	Environ func() []string
}

// NewLoader creates a new HCL loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the project file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Project, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading project file.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var parsed projectFile
	diags = gohcl.DecodeBody(hclFile.Body, l.evalContext(), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	project := translateProject(&parsed)
	project.FilePath = path
	logger.Debug("Project file loaded.", "output_mode", project.OutputMode, "exclude", project.Exclude, "compiler", project.Compiler.Path)
	return project, nil
}

// evalContext exposes the environment as the `env` object so a project can
// write `path = env.DXC_PATH`.
func (l *Loader) evalContext() *hcl.EvalContext {
	environ := os.Environ
	if l.Environ != nil {
		environ = l.Environ
	}

	vars := make(map[string]cty.Value)
	for _, e := range environ() {
		name, value, ok := strings.Cut(e, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

// translateProject converts the HCL-specific schema into the agnostic model.
func translateProject(p *projectFile) *config.Project {
	project := &config.Project{
		OutputMode: p.OutputMode,
		Exclude:    p.Exclude,
	}
	if p.Compiler != nil {
		project.Compiler = config.Compiler{
			Path:      p.Compiler.Path,
			ExtraArgs: p.Compiler.ExtraArgs,
		}
	}
	return project
}

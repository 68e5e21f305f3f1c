// Package manifest records the artifacts produced by a compiler run in an HCL
// file the engine reads at startup. Each compiled stage becomes one `shader`
// block carrying its entry point, profile, output path and the resource
// counts declared by its directive, so the runtime does not have to re-scan
// the sources.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/shaderkit/internal/shader"
	"github.com/zclconf/go-cty/cty"
)

// Manifest collects compiled targets. Paths are written relative to Root.
type Manifest struct {
	Root    string
	targets []*shader.Target
}

// New returns an empty manifest for sources below root.
func New(root string) *Manifest {
	return &Manifest{Root: root}
}

// Add records a compiled target. A target with the same output path as an
// earlier one replaces it, so rebuilding a source keeps one entry per stage.
func (m *Manifest) Add(t *shader.Target) {
	for i, existing := range m.targets {
		if existing.OutputPath == t.OutputPath {
			m.targets[i] = t
			return
		}
	}
	m.targets = append(m.targets, t)
}

// ReplaceSource drops every target recorded for source and records targets
// in their place. A stage whose directive was removed from the source loses
// its entry.
func (m *Manifest) ReplaceSource(source string, targets []*shader.Target) {
	kept := m.targets[:0]
	for _, existing := range m.targets {
		if existing.Source != source {
			kept = append(kept, existing)
		}
	}
	m.targets = kept
	for _, t := range targets {
		m.Add(t)
	}
}

// Len returns the number of recorded targets.
func (m *Manifest) Len() int {
	return len(m.targets)
}

// Bytes renders the manifest as HCL.
func (m *Manifest) Bytes() []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for i, t := range m.targets {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("shader", []string{shader.Stem(t.Source), t.Stage.String()})
		b := block.Body()
		b.SetAttributeValue("source", cty.StringVal(m.rel(t.Source)))
		b.SetAttributeValue("entry_point", cty.StringVal(t.EntryPoint))
		b.SetAttributeValue("profile", cty.StringVal(t.Profile))
		b.SetAttributeValue("format", cty.StringVal(t.Mode.String()))
		b.SetAttributeValue("output", cty.StringVal(m.rel(t.OutputPath)))
		b.SetAttributeValue("uniform_buffers", cty.NumberUIntVal(uint64(t.UniformBuffers)))
		b.SetAttributeValue("samplers", cty.NumberUIntVal(uint64(t.Samplers)))
	}

	return f.Bytes()
}

// WriteFile renders the manifest to path.
func (m *Manifest) WriteFile(path string) error {
	if err := os.WriteFile(path, m.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}

func (m *Manifest) rel(path string) string {
	if m.Root == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(m.Root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

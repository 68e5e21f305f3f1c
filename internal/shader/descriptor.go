// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package shader

import (
	"path/filepath"
	"strings"
)

// Entry is a single stage declaration found in a source file.
type Entry struct {
	EntryPoint string

	// Resource counts are optional directive arguments. They are zero when
	// the directive does not carry them.
	UniformBuffers uint32
	Samplers       uint32
}

// Descriptor is what one .hlsl source file declares about itself.
type Descriptor struct {
	Path   string
	Stem   string
	Vertex *Entry
	Pixel  *Entry
}

// NewDescriptor returns a Descriptor for path with no stages declared.
func NewDescriptor(path string) *Descriptor {
	return &Descriptor{
		Path: path,
		Stem: Stem(path),
	}
}

// Stem returns the file name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Entry returns the declaration for stage, or nil if the file does not
// declare it.
func (d *Descriptor) Entry(stage Stage) *Entry {
	switch stage {
	case StageVertex:
		return d.Vertex
	case StagePixel:
		return d.Pixel
	default:
		return nil
	}
}

func (d *Descriptor) setEntry(stage Stage, e *Entry) {
	switch stage {
	case StageVertex:
		d.Vertex = e
	case StagePixel:
		d.Pixel = e
	}
}

// Stages returns the declared stages in compilation order.
func (d *Descriptor) Stages() []Stage {
	var stages []Stage
	for _, s := range Stages {
		if d.Entry(s) != nil {
			stages = append(stages, s)
		}
	}
	return stages
}

// Targets builds one compilation target per declared stage.
func (d *Descriptor) Targets(mode OutputMode) ([]*Target, error) {
	var targets []*Target
	for _, s := range d.Stages() {
		e := d.Entry(s)
		t, err := NewTarget(d.Path, s, e.EntryPoint, mode)
		if err != nil {
			return nil, err
		}
		t.UniformBuffers = e.UniformBuffers
		t.Samplers = e.Samplers
		targets = append(targets, t)
	}
	return targets, nil
}

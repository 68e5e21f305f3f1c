// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package shader

import "path/filepath"

// Target is one stage of one source file, ready to be compiled.
type Target struct {
	Source     string
	Stage      Stage
	EntryPoint string
	Profile    string
	Mode       OutputMode
	OutputPath string

	UniformBuffers uint32
	Samplers       uint32
}

// NewTarget resolves the profile and the output path for compiling stage of
// source. The artifact is written next to the source as
// <stem><stage suffix><mode extension>.
func NewTarget(source string, stage Stage, entryPoint string, mode OutputMode) (*Target, error) {
	profile, err := stage.Profile()
	if err != nil {
		return nil, err
	}
	suffix, err := stage.Suffix()
	if err != nil {
		return nil, err
	}
	ext, err := mode.Extension()
	if err != nil {
		return nil, err
	}

	return &Target{
		Source:     source,
		Stage:      stage,
		EntryPoint: entryPoint,
		Profile:    profile,
		Mode:       mode,
		OutputPath: filepath.Join(filepath.Dir(source), Stem(source)+suffix+ext),
	}, nil
}

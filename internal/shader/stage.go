// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package shader

import (
	"errors"
	"fmt"
)

// ErrUnknownStage is returned for any stage outside the supported set.
var ErrUnknownStage = errors.New("unknown shader stage")

// Stage is a shader pipeline stage the driver can compile.
type Stage int

const (
	StageVertex Stage = iota + 1
	StagePixel
)

// Stages lists every supported stage in compilation order.
var Stages = []Stage{StageVertex, StagePixel}

// ParseStage maps a directive keyword to a Stage.
func ParseStage(keyword string) (Stage, error) {
	switch keyword {
	case "vertex":
		return StageVertex, nil
	case "pixel":
		return StagePixel, nil
	default:
		return 0, fmt.Errorf("%w '%s'", ErrUnknownStage, keyword)
	}
}

// String returns the directive keyword of the stage.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StagePixel:
		return "pixel"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Profile returns the shader model 6.0 profile the compiler expects for the stage.
func (s Stage) Profile() (string, error) {
	switch s {
	case StageVertex:
		return "vs_6_0", nil
	case StagePixel:
		return "ps_6_0", nil
	default:
		return "", fmt.Errorf("%w '%s'", ErrUnknownStage, s)
	}
}

// Suffix returns the file name suffix appended to the source stem.
func (s Stage) Suffix() (string, error) {
	switch s {
	case StageVertex:
		return "_v", nil
	case StagePixel:
		return "_p", nil
	default:
		return "", fmt.Errorf("%w '%s'", ErrUnknownStage, s)
	}
}

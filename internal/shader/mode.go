// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package shader

import (
	"errors"
	"fmt"
)

// ErrUnknownOutputMode is returned for any output mode other than spirv or dxil.
var ErrUnknownOutputMode = errors.New("unknown output mode")

// OutputMode selects the binary format produced by the compiler. The zero
// value is OutputModeSPIRV.
type OutputMode int

const (
	OutputModeSPIRV OutputMode = iota
	OutputModeDXIL
)

// DefaultOutputMode is used when the caller does not ask for a format.
const DefaultOutputMode = OutputModeSPIRV

// ParseOutputMode maps a user supplied keyword to an OutputMode.
func ParseOutputMode(keyword string) (OutputMode, error) {
	switch keyword {
	case "spirv":
		return OutputModeSPIRV, nil
	case "dxil":
		return OutputModeDXIL, nil
	default:
		return 0, fmt.Errorf("%w '%s', expected 'spirv' or 'dxil'", ErrUnknownOutputMode, keyword)
	}
}

func (m OutputMode) String() string {
	switch m {
	case OutputModeSPIRV:
		return "spirv"
	case OutputModeDXIL:
		return "dxil"
	default:
		return fmt.Sprintf("OutputMode(%d)", int(m))
	}
}

// Extension returns the artifact file extension, including the dot.
func (m OutputMode) Extension() (string, error) {
	switch m {
	case OutputModeSPIRV:
		return ".spv", nil
	case OutputModeDXIL:
		return ".dxil", nil
	default:
		return "", fmt.Errorf("%w '%s', expected 'spirv' or 'dxil'", ErrUnknownOutputMode, m)
	}
}

// CompilerFlags returns the extra compiler flags the mode needs.
func (m OutputMode) CompilerFlags() ([]string, error) {
	switch m {
	case OutputModeSPIRV:
		return []string{"-spirv"}, nil
	case OutputModeDXIL:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w '%s', expected 'spirv' or 'dxil'", ErrUnknownOutputMode, m)
	}
}

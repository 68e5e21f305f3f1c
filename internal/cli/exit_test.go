package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/specialistvlad/shaderkit/internal/compiler"
	"github.com/specialistvlad/shaderkit/internal/config"
	"github.com/specialistvlad/shaderkit/internal/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToExitError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"compiler exit code", fmt.Errorf("failed to compile: %w", &compiler.ExternalToolError{Tool: "dxc", Code: 5}), 5},
		{"compiler without exit code", &compiler.ExternalToolError{Tool: "dxc", Code: -1}, 1},
		{"unknown stage", fmt.Errorf("bad target: %w", shader.ErrUnknownStage), 2},
		{"unknown output mode", shader.ErrUnknownOutputMode, 2},
		{"invalid project", fmt.Errorf("%w: broken", config.ErrInvalidProject), 2},
		{"existing exit error", &ExitError{Code: 3, Message: "three"}, 3},
		{"anything else", errors.New("disk on fire"), 1},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			exitErr := ToExitError(tc.err)

			require.NotNil(t, exitErr)
			assert.Equal(t, tc.wantCode, exitErr.Code)
			assert.Equal(t, tc.err.Error(), exitErr.Message)
		})
	}
}

func TestToExitError_Nil(t *testing.T) {
	t.Parallel()
	assert.Nil(t, ToExitError(nil))
}

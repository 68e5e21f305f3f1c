package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/shaderkit/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv(CompilerEnv, "")
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, &app.Config{
		Root:      ".",
		LogFormat: "text",
		LogLevel:  "info",
	}, cfg)
}

func TestParse_AllFlags(t *testing.T) {
	t.Setenv(CompilerEnv, "/from/env/dxc")

	// --- Arrange ---
	args := []string{
		"-root", "assets/shaders",
		"-config", "build/shaderc.hcl",
		"-dxc", "/opt/dxc/bin/dxc",
		"-manifest", "shaders.hcl",
		"-dry-run",
		"-log-level", "DEBUG",
		"-log-format", "JSON",
		"dxil",
	}

	// --- Act ---
	cfg, shouldExit, err := Parse(args, &bytes.Buffer{})

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, &app.Config{
		Root:         "assets/shaders",
		ConfigPath:   "build/shaderc.hcl",
		OutputMode:   "dxil",
		CompilerPath: "/opt/dxc/bin/dxc",
		ManifestPath: "shaders.hcl",
		DryRun:       true,
		LogFormat:    "json",
		LogLevel:     "debug",
	}, cfg)
}

func TestParse_CompilerFromEnvironment(t *testing.T) {
	t.Setenv(CompilerEnv, "/from/env/dxc")

	cfg, _, err := Parse([]string{"spirv"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "/from/env/dxc", cfg.CompilerPath)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "#pragma vertex")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"-nope"}, "flag provided but not defined"},
		{"unknown mode", []string{"metal"}, "unknown output mode"},
		{"too many arguments", []string{"spirv", "dxil"}, "unexpected arguments: dxil"},
		{"bad log level", []string{"-log-level", "loud"}, "invalid log-level"},
		{"bad log format", []string{"-log-format", "xml"}, "invalid log-format"},
		{"empty root", []string{"-root", ""}, "Root is a required"},
		{"watch with dry run", []string{"-watch", "-dry-run"}, "cannot be combined"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			require.Nil(t, cfg)
			require.False(t, shouldExit)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestParseSwizzle(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := ParseSwizzle([]string{"-letters", "XYZW", "-max", "4", "-o", "Swizzles.cs"}, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, &SwizzleConfig{
		Letters:    "XYZW",
		MaxLength:  4,
		OutputPath: "Swizzles.cs",
		LogLevel:   "warn",
	}, cfg)
}

func TestParseSwizzle_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
	}{
		{"negative max", []string{"-max", "-1"}},
		{"positional argument", []string{"ABC"}},
		{"non-numeric max", []string{"-max", "three"}},
		{"bad log level", []string{"-log-level", "loud"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := ParseSwizzle(tc.args, &bytes.Buffer{})

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/shaderkit/internal/config"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeProject(t, `
output_mode = "dxil"
exclude     = ["vendor/**", "*.test.hlsl"]

compiler {
  path       = "${env.VULKAN_SDK}/bin/dxc"
  extra_args = "-O3 -Zi"
}
`)
	loader := &Loader{Environ: func() []string {
		return []string{"VULKAN_SDK=/opt/vulkan", "HOME=/home/dev"}
	}}

	// --- Act ---
	project, err := loader.Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	want := &config.Project{
		FilePath:   path,
		OutputMode: "dxil",
		Exclude:    []string{"vendor/**", "*.test.hlsl"},
		Compiler: config.Compiler{
			Path:      "/opt/vulkan/bin/dxc",
			ExtraArgs: "-O3 -Zi",
		},
	}
	if diff := cmp.Diff(want, project); diff != "" {
		t.Errorf("project mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_Load_Empty(t *testing.T) {
	t.Parallel()

	path := writeProject(t, "# nothing configured\n")

	project, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Empty(t, project.OutputMode)
	require.Empty(t, project.Exclude)
	require.Equal(t, config.Compiler{}, project.Compiler)
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		errPart string
	}{
		{
			name:    "syntax error",
			content: "compiler {\n  path = \"dxc\"\n",
			errPart: "failed to parse",
		},
		{
			name:    "unknown argument",
			content: "parallelism = 4\n",
			errPart: "failed to decode",
		},
		{
			name:    "duplicate compiler block",
			content: "compiler {}\ncompiler {}\n",
			errPart: "failed to decode",
		},
		{
			name:    "missing environment variable",
			content: "compiler {\n  path = env.NOT_SET_ANYWHERE\n}\n",
			errPart: "failed to decode",
		},
		{
			name:    "wrong type",
			content: "exclude = \"vendor/**\"\n",
			errPart: "failed to decode",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeProject(t, tc.content)
			loader := &Loader{Environ: func() []string { return nil }}

			_, err := loader.Load(context.Background(), path)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errPart)
		})
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
}

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/specialistvlad/shaderkit/internal/compiler"
	"github.com/specialistvlad/shaderkit/internal/config"
	"github.com/specialistvlad/shaderkit/internal/ctxlog"
	"github.com/specialistvlad/shaderkit/internal/fsutil"
	"github.com/specialistvlad/shaderkit/internal/manifest"
	"github.com/specialistvlad/shaderkit/internal/shader"
)

// SourceExtension is the extension of shader sources the driver compiles.
const SourceExtension = ".hlsl"

// App encapsulates the driver's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	project  *config.Project
	mode     shader.OutputMode
	exclude  *fsutil.Matcher
	invoker  *compiler.Invoker
	manifest *manifest.Manifest
}

// NewApp is the constructor for the driver. Progress lines go to outW, logs
// to logW. The project file, if any, is read with loader, and compiler
// processes are started with runner.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, runner compiler.Runner) (*App, error) {
	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	project, err := loadProject(ctx, cfg, loader)
	if err != nil {
		return nil, err
	}

	mode, err := resolveMode(cfg, project)
	if err != nil {
		return nil, err
	}

	exclude, err := fsutil.NewMatcher(cfg.Root, project.Exclude)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidProject, err)
	}

	opts := compiler.Options{
		Path:   project.Compiler.Path,
		DryRun: cfg.DryRun,
	}
	if cfg.CompilerPath != "" {
		opts.Path = cfg.CompilerPath
	}
	if project.Compiler.ExtraArgs != "" {
		opts.ExtraArgs, err = compiler.ParseExtraArgs(project.Compiler.ExtraArgs)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", config.ErrInvalidProject, err)
		}
	}
	logger.Debug("Compiler configured.", "path", opts.Path, "extra_args", opts.ExtraArgs, "mode", mode.String())

	a := &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		project: project,
		mode:    mode,
		exclude: exclude,
		invoker: compiler.New(outW, runner, opts),
	}
	switch {
	case cfg.ManifestPath != "" && cfg.DryRun:
		logger.Warn("Dry run, manifest will not be written.", "path", cfg.ManifestPath)
	case cfg.ManifestPath != "":
		a.manifest = manifest.New(cfg.Root)
	}
	return a, nil
}

// Mode returns the resolved output mode.
func (a *App) Mode() shader.OutputMode {
	return a.mode
}

// Project returns the loaded project file model. This is primarily for testing.
func (a *App) Project() *config.Project {
	return a.project
}

func loadProject(ctx context.Context, cfg *Config, loader config.Loader) (*config.Project, error) {
	logger := ctxlog.FromContext(ctx)

	path := cfg.ConfigPath
	if path == "" {
		path = filepath.Join(cfg.Root, config.DefaultFileName)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			logger.Debug("No project file found, using defaults.", "path", path)
			return config.Default(), nil
		}
	}

	project, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidProject, err)
	}
	logger.Debug("Project file loaded.", "path", path)
	return project, nil
}

// resolveMode picks the output mode: flag, then project file, then default.
func resolveMode(cfg *Config, project *config.Project) (shader.OutputMode, error) {
	switch {
	case cfg.OutputMode != "":
		return shader.ParseOutputMode(cfg.OutputMode)
	case project.OutputMode != "":
		mode, err := shader.ParseOutputMode(project.OutputMode)
		if err != nil {
			return 0, fmt.Errorf("%w %s: %w", config.ErrInvalidProject, project.FilePath, err)
		}
		return mode, nil
	default:
		return shader.DefaultOutputMode, nil
	}
}

package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/shaderkit/internal/ctxlog"
	"github.com/specialistvlad/shaderkit/internal/fsutil"
	"github.com/specialistvlad/shaderkit/internal/shader"
	"github.com/specialistvlad/shaderkit/internal/watch"
)

// Run compiles every declared stage of every source under the root. The
// first failure aborts the run. With Watch set it then keeps recompiling
// changed sources until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	fmt.Fprintf(a.outW, "Compiling %s shaders.\n", a.mode)

	files, err := a.Sources()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		a.logger.Warn("No shader sources found.", "root", a.config.Root)
	}

	compiled := 0
	for _, file := range files {
		n, err := a.CompileFile(ctx, file)
		if err != nil {
			return err
		}
		compiled += n
	}
	a.logger.Info("Shader build finished.", "sources", len(files), "targets", compiled)

	if err := a.writeManifest(); err != nil {
		return err
	}

	if a.config.Watch {
		return a.watch(ctx)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// Sources returns the shader sources under the root, sorted, without the
// excluded ones.
func (a *App) Sources() ([]string, error) {
	files, err := fsutil.FindFilesByExtension(a.config.Root, SourceExtension)
	if err != nil {
		return nil, fmt.Errorf("failed to find shader sources in %s: %w", a.config.Root, err)
	}
	kept := a.exclude.Filter(files)
	if skipped := len(files) - len(kept); skipped > 0 {
		a.logger.Debug("Excluded shader sources.", "count", skipped)
	}
	return kept, nil
}

// CompileFile scans path and compiles each stage it declares, vertex first.
// It returns the number of stages compiled.
func (a *App) CompileFile(ctx context.Context, path string) (int, error) {
	logger := ctxlog.FromContext(ctx)

	desc, err := shader.ScanFile(path)
	if err != nil {
		return 0, err
	}

	targets, err := desc.Targets(a.mode)
	if err != nil {
		return 0, err
	}
	if len(targets) == 0 {
		logger.Debug("No stage directives found, skipping.", "path", path)
	}

	for _, t := range targets {
		if err := a.invoker.Compile(ctx, t); err != nil {
			return 0, err
		}
	}
	if a.manifest != nil {
		a.manifest.ReplaceSource(path, targets)
	}
	return len(targets), nil
}

func (a *App) writeManifest() error {
	if a.manifest == nil {
		return nil
	}
	if err := a.manifest.WriteFile(a.config.ManifestPath); err != nil {
		return err
	}
	a.logger.Info("Manifest written.", "path", a.config.ManifestPath, "targets", a.manifest.Len())
	return nil
}

func (a *App) watch(ctx context.Context) error {
	w := watch.New(a.config.Root, SourceExtension)
	w.Skip = a.exclude.Match

	return w.Run(ctx, func(ctx context.Context, path string) error {
		if _, err := a.CompileFile(ctx, path); err != nil {
			return err
		}
		return a.writeManifest()
	})
}

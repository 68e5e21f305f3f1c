package compiler

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/specialistvlad/shaderkit/internal/ctxlog"
	"github.com/specialistvlad/shaderkit/internal/shader"
)

// DefaultPath is the compiler executable looked up on PATH.
const DefaultPath = "dxc"

// Options configures how the compiler is invoked.
type Options struct {
	// Path is the compiler executable. Empty means DefaultPath.
	Path string
	// ExtraArgs are appended to every invocation before the source path.
	ExtraArgs []string
	// DryRun prints the invocations without running them.
	DryRun bool
}

// Invoker turns compilation targets into compiler processes.
type Invoker struct {
	opts     Options
	runner   Runner
	progress io.Writer
}

// New returns an Invoker that reports progress to progress and starts
// processes with runner.
func New(progress io.Writer, runner Runner, opts Options) *Invoker {
	if opts.Path == "" {
		opts.Path = DefaultPath
	}
	return &Invoker{
		opts:     opts,
		runner:   runner,
		progress: progress,
	}
}

// ParseExtraArgs splits a shell-style argument string.
func ParseExtraArgs(s string) ([]string, error) {
	args, err := shellwords.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid compiler arguments %q: %w", s, err)
	}
	return args, nil
}

// Args returns the compiler arguments for t, without the executable.
func (inv *Invoker) Args(t *shader.Target) ([]string, error) {
	flags, err := t.Mode.CompilerFlags()
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, len(flags)+len(inv.opts.ExtraArgs)+7)
	args = append(args, flags...)
	args = append(args, "-T", t.Profile, "-E", t.EntryPoint, "-Fo", t.OutputPath)
	args = append(args, inv.opts.ExtraArgs...)
	args = append(args, t.Source)
	return args, nil
}

// CompileStage builds the target for one stage of source and compiles it.
func (inv *Invoker) CompileStage(ctx context.Context, source string, stage shader.Stage, entryPoint string, mode shader.OutputMode) (*shader.Target, error) {
	t, err := shader.NewTarget(source, stage, entryPoint, mode)
	if err != nil {
		return nil, err
	}
	if err := inv.Compile(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Compile prints the source and destination of t and runs the compiler.
// It blocks until the compiler exits.
func (inv *Invoker) Compile(ctx context.Context, t *shader.Target) error {
	logger := ctxlog.FromContext(ctx)

	args, err := inv.Args(t)
	if err != nil {
		return err
	}

	src, err := filepath.Abs(t.Source)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", t.Source, err)
	}
	dst, err := filepath.Abs(t.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", t.OutputPath, err)
	}
	fmt.Fprintf(inv.progress, "%s -> %s\n", src, dst)

	if inv.opts.DryRun {
		fmt.Fprintf(inv.progress, "  %s %s\n", inv.opts.Path, strings.Join(args, " "))
		return nil
	}

	logger.Debug("Invoking shader compiler.", "compiler", inv.opts.Path, "args", args)
	if err := inv.runner.Run(ctx, inv.opts.Path, args); err != nil {
		return fmt.Errorf("failed to compile %s stage of %s: %w", t.Stage, t.Source, err)
	}
	logger.Debug("Shader stage compiled.", "stage", t.Stage.String(), "output", t.OutputPath)
	return nil
}

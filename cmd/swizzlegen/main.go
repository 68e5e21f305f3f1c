package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/shaderkit/internal/cli"
	"github.com/specialistvlad/shaderkit/internal/ctxlog"
	"github.com/specialistvlad/shaderkit/internal/swizzle"
)

// main is the entrypoint for the swizzle accessor generator.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if exitErr := cli.ToExitError(run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:])); exitErr != nil {
		fmt.Fprintln(os.Stderr, exitErr.Message)
		os.Exit(exitErr.Code)
	}
}

// run asks for any missing input on outW and writes the declarations to
// outW or, with -o, to a file.
func run(in io.Reader, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.ParseSwizzle(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	logger := ctxlog.New(cfg.LogLevel, "text", logW)

	renderer, err := swizzle.NewRenderer(cfg.Template)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	input := swizzle.Input{Letters: cfg.Letters, MaxLength: cfg.MaxLength}
	if err := swizzle.Prompt(in, outW, &input); err != nil {
		return err
	}

	seqs, err := swizzle.Generate(input.Letters, input.MaxLength)
	if err != nil {
		return err
	}
	logger.Debug("Permutations generated.", "letters", input.Letters, "max", input.MaxLength, "count", len(seqs))

	if cfg.OutputPath == "" {
		return renderer.Render(outW, seqs)
	}

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", cfg.OutputPath, err)
	}
	if err := renderer.Render(f, seqs); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.OutputPath, err)
	}
	logger.Info("Declarations written.", "path", cfg.OutputPath)
	return nil
}

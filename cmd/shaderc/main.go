package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/specialistvlad/shaderkit/internal/app"
	"github.com/specialistvlad/shaderkit/internal/cli"
	"github.com/specialistvlad/shaderkit/internal/compiler"
	"github.com/specialistvlad/shaderkit/internal/hcl"
)

// main is the entrypoint for the shader compiler driver.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := &compiler.ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
	if exitErr := cli.ToExitError(run(ctx, os.Stdout, os.Stderr, os.Args[1:], runner)); exitErr != nil {
		fmt.Fprintln(os.Stderr, exitErr.Message)
		stop()
		os.Exit(exitErr.Code)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, logW io.Writer, args []string, runner compiler.Runner) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hcl.NewLoader()
	shadercApp, err := app.NewApp(outW, logW, appConfig, loader, runner)
	if err != nil {
		return err
	}

	return shadercApp.Run(ctx)
}

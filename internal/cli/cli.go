package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/shaderkit/internal/app"
)

// CompilerEnv names the environment variable consulted when -dxc is not set.
const CompilerEnv = "SHADERKIT_DXC"

// Parse processes shaderc command-line arguments. It returns a populated
// Config, a boolean indicating if the program should exit cleanly, or an
// ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("shaderc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
shaderc - compiles annotated HLSL sources with dxc.

Usage:
  shaderc [options] [MODE]

Arguments:
  MODE
    Output format: 'spirv' (default) or 'dxil'.

Sources declare their stages in a leading block of directives:
  #pragma vertex <entry point> [uniform buffers] [samplers]
  #pragma pixel  <entry point> [uniform buffers] [samplers]

Options:
`)
		flagSet.PrintDefaults()
	}

	rootFlag := flagSet.String("root", ".", "Directory searched recursively for .hlsl sources.")
	configFlag := flagSet.String("config", "", "Path to the project file. Defaults to shaderc.hcl in the root, if present.")
	dxcFlag := flagSet.String("dxc", "", "Compiler executable. Falls back to $"+CompilerEnv+", then the project file, then 'dxc'.")
	manifestFlag := flagSet.String("manifest", "", "Write an HCL manifest of the compiled shaders to this file. Ignored with -dry-run.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Print the compiler invocations without running them.")
	watchFlag := flagSet.Bool("watch", false, "Keep running and recompile sources when they change.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args()[1:], " "))}
	}
	mode := flagSet.Arg(0)
	slog.Debug("Output mode determined.", "mode", mode)

	logFormat, logLevel, err := parseLogFlags(*logFormatFlag, *logLevelFlag)
	if err != nil {
		return nil, false, err
	}

	dxc := *dxcFlag
	if dxc == "" {
		dxc = os.Getenv(CompilerEnv)
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Root:         *rootFlag,
		ConfigPath:   *configFlag,
		OutputMode:   mode,
		CompilerPath: dxc,
		ManifestPath: *manifestFlag,
		DryRun:       *dryRunFlag,
		Watch:        *watchFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func parseLogFlags(formatFlag, levelFlag string) (string, string, error) {
	logFormat := strings.ToLower(formatFlag)
	if logFormat != "text" && logFormat != "json" {
		return "", "", &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(levelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return "", "", &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	return logFormat, logLevel, nil
}

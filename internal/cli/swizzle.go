package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
)

// SwizzleConfig holds the swizzlegen options. Zero Letters or MaxLength
// means the value is asked for interactively.
type SwizzleConfig struct {
	Letters    string
	MaxLength  int
	Template   string
	OutputPath string
	LogLevel   string
}

// ParseSwizzle processes swizzlegen command-line arguments.
func ParseSwizzle(args []string, output io.Writer) (*SwizzleConfig, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("swizzlegen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
swizzlegen - generates vector swizzle accessors.

Usage:
  swizzlegen [options]

Letters and the maximum length are asked for on stdin unless given as flags.

Options:
`)
		flagSet.PrintDefaults()
	}

	lettersFlag := flagSet.String("letters", "", "Component letters to swizzle, e.g. XYZW.")
	maxFlag := flagSet.Int("max", 0, "Maximum permutation length.")
	templateFlag := flagSet.String("template", "", "text/template for one declaration. Fields: .Name .Arity .Components .Args")
	outFlag := flagSet.String("o", "", "Write declarations to this file instead of stdout.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: "swizzlegen takes no positional arguments"}
	}
	if *maxFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid max: must be at least 1"}
	}

	_, logLevel, err := parseLogFlags("text", *logLevelFlag)
	if err != nil {
		return nil, false, err
	}

	return &SwizzleConfig{
		Letters:    *lettersFlag,
		MaxLength:  *maxFlag,
		Template:   *templateFlag,
		OutputPath: *outFlag,
		LogLevel:   logLevel,
	}, false, nil
}

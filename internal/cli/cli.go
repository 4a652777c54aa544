package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/geoflowgo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("geoflow", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
GeoFlow - a batch interpreter for GIS workflow scripts.

Usage:
  geoflow [options] [SCRIPT_PATH]

Arguments:
  SCRIPT_PATH
    Path to a single workflow script or a directory containing `+app.ScriptExtension+` scripts.

Options:
`)
		flagSet.PrintDefaults()
	}

	scriptFlag := flagSet.String("script", "", "Path to the script file or directory.")
	sFlag := flagSet.String("s", "", "Path to the script file or directory (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an optional HCL settings file.")
	workingDirFlag := flagSet.String("working-dir", "", "Directory relative script paths resolve against. Defaults to the script's directory.")
	tempDirFlag := flagSet.String("temp-dir", "", "Directory for session temp files. Defaults to the OS temp directory.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'. Defaults to 'text'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. Defaults to 'info'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *scriptFlag != "" {
		path = *scriptFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Script path determined.", "path", path)

	if path == "" {
		slog.Debug("No script path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	// Empty flag values stay empty here so the settings file can supply
	// log_level/log_format; NewConfig validates the merged result.
	config, err := app.NewConfig(app.Config{
		ScriptPath: path,
		ConfigFile: *configFlag,
		WorkingDir: *workingDirFlag,
		TempDir:    *tempDirFlag,
		LogFormat:  *logFormatFlag,
		LogLevel:   *logLevelFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}

package lint

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/mkprof/makelint/pkg/shared/config"
	"github.com/mkprof/makelint/pkg/shared/files"
)

// applyConfigDefaults fills options the user did not set explicitly from the
// YAML configuration. Flags take precedence over config values.
func applyConfigDefaults(options *RunOptionsLint, cfg *config.Config, flags *pflag.FlagSet) {
	if cfg == nil {
		return
	}
	if !flags.Changed("makefile") && cfg.Linter.Makefile != "" {
		options.Makefile = cfg.Linter.Makefile
	}
	if !flags.Changed("root-dir") && cfg.Linter.RootDir != "" {
		options.RootDir = cfg.Linter.RootDir
	}
}

// validateLintArgs validates the arguments provided to the lint command. A
// single positional argument may name the Makefile instead of the flag.
func validateLintArgs(options *RunOptionsLint, args []string, flags *pflag.FlagSet) error {
	if len(args) > 1 {
		return fmt.Errorf("at most one Makefile path may be given, got: %v", args)
	}
	if len(args) == 1 {
		if flags.Changed("makefile") {
			return fmt.Errorf("you cannot use the 'makefile' flag and a positional path at the same time")
		}
		options.Makefile = args[0]
	}

	if err := files.ValidatePath(options.Makefile); err != nil {
		return fmt.Errorf("the 'makefile' flag must point to a readable file: %w", err)
	}

	if options.RootDir != "" {
		info, err := os.Stat(options.RootDir)
		if err != nil {
			return fmt.Errorf("the 'root-dir' path does not exist: %v", options.RootDir)
		}
		if !info.IsDir() {
			return fmt.Errorf("the 'root-dir' path is not a directory: %v", options.RootDir)
		}
	}

	if options.Format != formatSarif && options.Format != formatJSON {
		return fmt.Errorf("the 'format' flag must be one of: %s, %s", formatSarif, formatJSON)
	}

	return nil
}

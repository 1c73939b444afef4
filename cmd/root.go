package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkprof/makelint/cmd/lint"
	"github.com/mkprof/makelint/cmd/version"
	"github.com/mkprof/makelint/pkg/shared/config"
	sharederrors "github.com/mkprof/makelint/pkg/shared/errors"
)

const defaultConfigFile = ".makelint.yml"

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "makelint [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "Makelint statically checks a Makefile for style and correctness defects.",
		Long: `Makelint statically analyzes a Makefile and reports style and correctness
defects without executing any build rule: undocumented targets, orphan targets,
dependencies with no backing rule or file, parallel-unsafe multi-target rules,
whitespace violations, and directory dependencies that are not order-only.

Run without a subcommand, makelint lints the Makefile in the current directory.
`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is %s)", defaultConfigFile))
	// Bare "makelint" lints with defaults instead of printing help.
	rootCmd.RunE = lint.LintCmd.RunE
	rootCmd.AddCommand(lint.LintCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and maps the outcome to a process exit code:
// 0 on success, 1 when validation produced findings, 2 on I/O, parse, or
// usage errors.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		var validationErr *sharederrors.ValidationError
		if errors.As(err, &validationErr) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 2
	}
	return 0
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = defaultConfigFile
	}

	var err error
	AppConfig, err = config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(2)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	lint.Init(AppConfig)
}

package lint

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkprof/makelint/internal/linter"
	"github.com/mkprof/makelint/internal/makefile"
	"github.com/mkprof/makelint/internal/sarif"
	"github.com/mkprof/makelint/pkg/shared/config"
	sharederrors "github.com/mkprof/makelint/pkg/shared/errors"
	"github.com/mkprof/makelint/pkg/shared/files"
	"github.com/mkprof/makelint/pkg/shared/logger"
)

const (
	defaultMakefile = "Makefile"

	formatSarif = "sarif"
	formatJSON  = "json"
)

// RunOptionsLint holds the arguments for the lint command.
type RunOptionsLint struct {
	Makefile string
	RootDir  string
	Report   string
	Format   string
}

// Global variables for configuration and command arguments
var (
	AppConfig        *config.Config
	lintOptions      RunOptionsLint
	exampleLintUsage = `  # Lint the Makefile in the current directory
  makelint lint

  # Lint a specific file, probing filesystem dependencies under its directory
  makelint lint --makefile build/Makefile --root-dir build

  # The Makefile may also be given as a positional path
  makelint lint deploy/Makefile

  # Lint and export the findings as SARIF
  makelint lint --report findings.sarif --format sarif`
)

// LintCmd represents the lint command.
var LintCmd = &cobra.Command{
	Use:                   "lint [--root-dir/-r PATH] [--report/-o PATH [--format sarif|json]] {--makefile/-f PATH | PATH}",
	SilenceUsage:          true,
	SilenceErrors:         true,
	DisableFlagsInUseLine: true,
	Example:               exampleLintUsage,
	Short:                 "Runs every Makefile check and reports the findings",
	RunE:                  runLintCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runLintCommand executes the lint command. The whole pass is stateless: the
// file is read once, both the raw-line view and the parser view derive from
// that single buffer.
func runLintCommand(cmd *cobra.Command, args []string) error {
	logger := logger.NewLogger(AppConfig, "core-lint")

	applyConfigDefaults(&lintOptions, AppConfig, cmd.Flags())
	if err := validateLintArgs(&lintOptions, args, cmd.Flags()); err != nil {
		logger.Error("invalid lint arguments", "error", err)
		return err
	}

	lines, err := files.ReadLines(lintOptions.Makefile)
	if err != nil {
		logger.Error("failed to read makefile", "error", err)
		return err
	}

	tokens := makefile.ParseLines(lines)
	model := linter.BuildModel(tokens, lines)

	runner := linter.NewRunner(lintOptions.RootDir, logger)
	valid, findings := runner.Validate(lines, model)

	if lintOptions.Report != "" {
		if err := writeReport(findings, &lintOptions); err != nil {
			logger.Error("failed to write report", "error", err)
			return err
		}
		logger.Info("findings report saved", "path", lintOptions.Report, "format", lintOptions.Format)
	}

	if !valid {
		summary := linter.Summarize(findings)
		fmt.Fprintf(os.Stderr, "Makefile validation failed: %s\n", summary)
		return sharederrors.NewValidationError(summary)
	}

	logger.Info("lint command completed successfully", "makefile", lintOptions.Makefile)
	return nil
}

// writeReport exports the findings in the requested format.
func writeReport(findings []linter.Finding, options *RunOptionsLint) error {
	switch options.Format {
	case formatSarif:
		return sarif.WriteReport(findings, options.Makefile, options.Report)
	case formatJSON:
		data, err := json.MarshalIndent(findings, "", "    ")
		if err != nil {
			return fmt.Errorf("failed to marshal findings: %w", err)
		}
		if err := os.WriteFile(options.Report, data, 0644); err != nil {
			return fmt.Errorf("failed to write findings: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported report format %q", options.Format)
	}
}

// Initialize flags for the lint command.
func init() {
	LintCmd.Flags().StringVarP(&lintOptions.Makefile, "makefile", "f", defaultMakefile, "Path to the Makefile to lint.")
	LintCmd.Flags().StringVarP(&lintOptions.RootDir, "root-dir", "r", "", "Directory that filesystem dependency probes are resolved against. Defaults to the current working directory.")
	LintCmd.Flags().StringVarP(&lintOptions.Report, "report", "o", "", "Path to write a findings report to.")
	LintCmd.Flags().StringVar(&lintOptions.Format, "format", formatSarif, "Format for the findings report (sarif or json).")
	LintCmd.Flags().BoolP("help", "h", false, "Show help for the lint command.")
}

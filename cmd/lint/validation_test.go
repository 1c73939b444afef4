package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkprof/makelint/pkg/shared/config"
)

func newLintFlags(t *testing.T, options *RunOptionsLint) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("lint", pflag.ContinueOnError)
	flags.StringVarP(&options.Makefile, "makefile", "f", defaultMakefile, "")
	flags.StringVarP(&options.RootDir, "root-dir", "r", "", "")
	flags.StringVarP(&options.Report, "report", "o", "", "")
	flags.StringVar(&options.Format, "format", formatSarif, "")
	return flags
}

func writeTempMakefile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Makefile")
	require.NoError(t, os.WriteFile(path, []byte("all: ## [FINAL] doc\n\t@echo hi\n"), 0644))
	return path
}

func TestValidateLintArgs(t *testing.T) {
	mkfile := writeTempMakefile(t)
	rootDir := t.TempDir()

	tests := []struct {
		name     string
		cliArgs  []string
		args     []string
		wantErr  string
		wantFile string
	}{
		{
			// valid: makelint lint -f /tmp/x/Makefile
			name:     "makefile flag",
			cliArgs:  []string{"--makefile", mkfile},
			wantFile: mkfile,
		},
		{
			// valid: makelint lint /tmp/x/Makefile
			name:     "positional path",
			args:     []string{mkfile},
			wantFile: mkfile,
		},
		{
			name:    "flag and positional conflict",
			cliArgs: []string{"--makefile", mkfile},
			args:    []string{mkfile},
			wantErr: "at the same time",
		},
		{
			name:    "too many positionals",
			args:    []string{mkfile, mkfile},
			wantErr: "at most one Makefile path",
		},
		{
			name:    "missing makefile",
			cliArgs: []string{"--makefile", filepath.Join(rootDir, "missing")},
			wantErr: "must point to a readable file",
		},
		{
			name:    "root dir not a directory",
			cliArgs: []string{"--makefile", mkfile, "--root-dir", mkfile},
			wantErr: "not a directory",
		},
		{
			name:    "root dir missing",
			cliArgs: []string{"--makefile", mkfile, "--root-dir", filepath.Join(rootDir, "void")},
			wantErr: "does not exist",
		},
		{
			name:    "unknown format",
			cliArgs: []string{"--makefile", mkfile, "--format", "xml"},
			wantErr: "'format' flag must be one of",
		},
		{
			// valid: makelint lint -f ... -r ... --format json
			name:     "json format with root dir",
			cliArgs:  []string{"--makefile", mkfile, "--root-dir", rootDir, "--format", "json"},
			wantFile: mkfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var options RunOptionsLint
			flags := newLintFlags(t, &options)
			require.NoError(t, flags.Parse(tt.cliArgs))

			err := validateLintArgs(&options, tt.args, flags)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFile, options.Makefile)
		})
	}
}

func TestApplyConfigDefaults(t *testing.T) {
	mkfile := writeTempMakefile(t)

	tests := []struct {
		name     string
		cliArgs  []string
		cfg      *config.Config
		wantFile string
		wantRoot string
	}{
		{
			name:     "nil config keeps flag defaults",
			cfg:      nil,
			wantFile: defaultMakefile,
			wantRoot: "",
		},
		{
			name:     "config fills unset options",
			cfg:      &config.Config{Linter: config.Linter{Makefile: "cfg/Makefile", RootDir: "cfg"}},
			wantFile: "cfg/Makefile",
			wantRoot: "cfg",
		},
		{
			name:     "explicit flags win over config",
			cliArgs:  []string{"--makefile", mkfile, "--root-dir", "flagdir"},
			cfg:      &config.Config{Linter: config.Linter{Makefile: "cfg/Makefile", RootDir: "cfg"}},
			wantFile: mkfile,
			wantRoot: "flagdir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var options RunOptionsLint
			flags := newLintFlags(t, &options)
			require.NoError(t, flags.Parse(tt.cliArgs))

			applyConfigDefaults(&options, tt.cfg, flags)
			assert.Equal(t, tt.wantFile, options.Makefile)
			assert.Equal(t, tt.wantRoot, options.RootDir)
		})
	}
}

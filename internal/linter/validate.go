package linter

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// Runner executes the full validator pipeline over one Makefile snapshot.
// A Runner holds no state between runs; every Validate call is a fresh pass.
type Runner struct {
	rootDir string
	logger  hclog.Logger
}

// NewRunner returns a Runner probing the filesystem under rootDir. An empty
// rootDir means the current working directory. The logger receives each
// finding as it is produced; pass nil to discard that telemetry.
func NewRunner(rootDir string, logger hclog.Logger) *Runner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Runner{rootDir: rootDir, logger: logger}
}

// Validate runs the text-level checks, then the target-level checks, then
// the directory-dependency check, in a fixed order. Every check always runs;
// the verdict is true only when no check produced a finding. Findings are
// returned in validator-execution order without deduplication.
func (r *Runner) Validate(lines []string, m *Model) (bool, []Finding) {
	rootDir := r.rootDir
	if rootDir == "" {
		if wd, err := os.Getwd(); err == nil {
			rootDir = wd
		}
	}

	var all []Finding
	collect := func(findings []Finding) {
		for _, f := range findings {
			if f.Line != nil {
				r.logger.Warn(f.Message, "category", f.Category, "line", *f.Line)
			} else {
				r.logger.Warn(f.Message, "category", f.Category)
			}
		}
		all = append(all, findings...)
	}

	collect(checkSpaces(lines))
	collect(checkOrphanTargets(m))
	collect(checkTargetComments(m))
	collect(checkMissingRules(m, rootDir))
	collect(checkMultipleTargetsColon(m))
	collect(checkDirectoryDeps(m, rootDir))

	return len(all) == 0, all
}

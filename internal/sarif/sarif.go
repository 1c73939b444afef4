// Package sarif renders lint findings as a SARIF 2.1.0 report so CI systems
// can ingest them alongside other scanner output.
package sarif

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/mkprof/makelint/internal/linter"
)

const (
	toolName       = "makelint"
	informationURI = "https://github.com/mkprof/makelint"
)

// NewReport converts findings into a single-run SARIF report. One rule is
// registered per finding category; result order follows finding order, and
// zero-based line indexes are mapped to one-based SARIF lines.
func NewReport(findings []linter.Finding, makefilePath string) (*sarif.Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, informationURI)
	run.AutomationDetails = sarif.NewRunAutomationDetails().WithGUID(uuid.New().String())

	registered := make(map[linter.Category]bool)
	for _, finding := range findings {
		id := ruleID(finding.Category)
		if !registered[finding.Category] {
			run.AddRule(id).
				WithDescription(string(finding.Category)).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: "warning"})
			registered[finding.Category] = true
		}

		result := sarif.NewRuleResult(id).
			WithMessage(sarif.NewTextMessage(finding.Message)).
			WithLevel("warning")
		if finding.Line != nil {
			location := sarif.NewLocation().WithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewArtifactLocation().WithUri(makefilePath)).
					WithRegion(sarif.NewRegion().WithStartLine(*finding.Line + 1)),
			)
			result.WithLocations([]*sarif.Location{location})
		}
		run.AddResult(result)
	}

	report.AddRun(run)
	return report, nil
}

// WriteReport writes the findings to path as a pretty-printed SARIF file.
func WriteReport(findings []linter.Finding, makefilePath, path string) error {
	report, err := NewReport(findings, makefilePath)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error writing SARIF report: %w", err)
	}
	defer func() { _ = file.Close() }()

	return report.PrettyWrite(file)
}

// ruleID derives a stable SARIF rule identifier from a finding category.
func ruleID(category linter.Category) string {
	return toolName + "/" + strings.ReplaceAll(string(category), " ", "-")
}

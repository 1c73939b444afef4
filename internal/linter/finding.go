package linter

// Category classifies a finding into the fixed lint taxonomy. The string
// values are part of the tool's output contract and appear verbatim in
// summaries and reports.
type Category string

const (
	CategoryOrphanTarget      Category = "orphan target"
	CategoryNoComments        Category = "target without comments"
	CategoryMissingRule       Category = "missing rule"
	CategoryMultipleTargets   Category = "multiple targets with colon"
	CategoryTrailingSpaces    Category = "trailing spaces"
	CategorySpaceInsteadOfTab Category = "space instead of tab"
	CategoryDirectoryDep      Category = "directory dependency not order-only"
)

// Finding is a machine-readable lint result with enough context to locate it.
// Line and LineText are nil when the offending declaration could not be
// traced back to a source line.
type Finding struct {
	Category Category `json:"category"`
	Message  string   `json:"message"`
	Line     *int     `json:"line_number,omitempty"`
	LineText *string  `json:"line_text,omitempty"`
}

// newTargetFinding builds a finding located at a target's declaring line.
func newTargetFinding(category Category, message string, t *Target) Finding {
	return Finding{
		Category: category,
		Message:  message,
		Line:     t.Line,
		LineText: t.LineText,
	}
}

// newLineFinding builds a finding located at a raw source line.
func newLineFinding(category Category, message string, line int, text string) Finding {
	return Finding{
		Category: category,
		Message:  message,
		Line:     &line,
		LineText: &text,
	}
}

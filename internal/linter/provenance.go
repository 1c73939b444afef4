package linter

import "strings"

// provenance records where a target name was first declared.
type provenance struct {
	Line int
	Text string
}

// indexTargetLines scans the raw source lines and maps each declared target
// name to the first rule header that mentions it. Names redeclared later keep
// their original provenance. Lines beginning with "##" are doc comments and
// stay candidates for header detection; plain comments, blank lines and
// tab-indented recipe lines are skipped. Continuation lines of a header are
// consumed so they are not rescanned as headers themselves.
func indexTargetLines(lines []string) map[string]provenance {
	index := make(map[string]provenance)

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		stripped := strings.TrimSpace(line)

		if stripped == "" {
			continue
		}
		if stripped[0] == '#' && !strings.HasPrefix(line, "##") {
			continue
		}
		if strings.HasPrefix(line, "\t") {
			continue
		}

		if strings.Contains(line, ":") && !strings.Contains(line, "=") {
			if head, ok := splitRuleHeader(line); ok {
				for _, name := range strings.Fields(head) {
					if _, seen := index[name]; !seen {
						index[name] = provenance{Line: i, Text: line}
					}
				}
			}
			// Skip over backslash-continued lines of this header. A file
			// ending mid-continuation yields what was collected so far.
			for strings.HasSuffix(stripped, `\`) {
				i++
				if i >= len(lines) {
					return index
				}
				stripped = strings.TrimSpace(lines[i])
			}
		}
	}

	return index
}

// splitRuleHeader returns the target-name portion of a rule header: everything
// before the first "&:" or the first plain ":", whichever occurs first. The
// second return value is false when the line holds no colon at all.
func splitRuleHeader(line string) (string, bool) {
	cut := strings.Index(line, ":")
	if cut < 0 {
		return "", false
	}
	if amp := strings.Index(line, "&:"); amp >= 0 && amp < cut {
		cut = amp
	}
	return line[:cut], true
}

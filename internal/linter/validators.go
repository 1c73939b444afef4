package linter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// finalMarker in a target's doc comment declares it a terminal build goal
// that nothing else needs to depend on.
const finalMarker = "[FINAL]"

// makeMetaChars are wildcard/variable metacharacters; a dependency containing
// any of them cannot be resolved against the filesystem literally.
const makeMetaChars = "$*?[]%()"

// checkSpaces flags trailing whitespace on any line and a leading space on
// any line that is not the continuation of a backslash-terminated one.
func checkSpaces(lines []string) []Finding {
	var findings []Finding
	prev := ""

	for i, line := range lines {
		if strings.TrimRightFunc(line, unicode.IsSpace) != line {
			msg := fmt.Sprintf("Trailing spaces (%d): %s", i, line)
			findings = append(findings, newLineFinding(CategoryTrailingSpaces, msg, i, line))
		}

		// A line after a backslash-terminated one is expected to be
		// space-indented; only the trailing-whitespace rule applies to it.
		if strings.HasSuffix(strings.TrimRightFunc(prev, unicode.IsSpace), `\`) {
			prev = line
			continue
		}

		if strings.HasPrefix(line, " ") {
			msg := fmt.Sprintf("Space instead of tab (%d): %s", i, line)
			findings = append(findings, newLineFinding(CategorySpaceInsteadOfTab, msg, i, line))
		}

		prev = line
	}

	return findings
}

// checkOrphanTargets flags targets nothing depends on, unless their doc
// comment carries the [FINAL] marker.
func checkOrphanTargets(m *Model) []Finding {
	var findings []Finding

	for i := range m.Targets {
		t := &m.Targets[i]
		if _, used := m.Deps[t.Name]; used || strings.Contains(t.Doc, finalMarker) {
			continue
		}
		msg := fmt.Sprintf("%s, is orphan - not marked as %s and no other target depends on it", t.Name, finalMarker)
		findings = append(findings, newTargetFinding(CategoryOrphanTarget, msg, t))
	}

	return findings
}

// checkTargetComments flags targets declared without documentation.
func checkTargetComments(m *Model) []Finding {
	var findings []Finding

	for i := range m.Targets {
		t := &m.Targets[i]
		if t.Doc != "" {
			continue
		}
		msg := fmt.Sprintf("Target without comments: %s", t.Name)
		findings = append(findings, newTargetFinding(CategoryNoComments, msg, t))
	}

	return findings
}

// checkMissingRules flags prerequisites backed by neither a declared target
// nor an existing filesystem path under rootDir. One finding is emitted per
// requesting target, attributed to the requester's declaring line.
func checkMissingRules(m *Model, rootDir string) []Finding {
	var findings []Finding

	targetMap := make(map[string]*Target, len(m.Targets))
	for i := range m.Targets {
		t := &m.Targets[i]
		if _, seen := targetMap[t.Name]; !seen {
			targetMap[t.Name] = t
		}
	}

	for _, dep := range sortedKeys(m.Deps) {
		if _, declared := targetMap[dep]; declared {
			continue
		}
		if pathExists(resolveFilesystemPath(dep, rootDir)) {
			continue
		}
		for _, parent := range sortedKeys(m.DepsMap[dep]) {
			msg := fmt.Sprintf("No rule to make target '%s', needed by '%s'", dep, parent)
			if t, ok := targetMap[parent]; ok {
				findings = append(findings, newTargetFinding(CategoryMissingRule, msg, t))
			} else {
				findings = append(findings, Finding{Category: CategoryMissingRule, Message: msg})
			}
		}
	}

	return findings
}

// checkMultipleTargetsColon flags rule headers that declare several targets
// with a plain ":". Without "&:" grouping Make may run the recipe once per
// name, racing under parallel builds.
func checkMultipleTargetsColon(m *Model) []Finding {
	var findings []Finding

	for i := range m.Targets {
		t := &m.Targets[i]
		if t.Grouped || t.LineText == nil {
			continue
		}
		head, ok := splitRuleHeader(*t.LineText)
		if !ok || len(strings.Fields(head)) < 2 {
			continue
		}
		msg := fmt.Sprintf("Multiple targets defined with ':' may run several times in parallel: %s. Use '&:' to group them", head)
		findings = append(findings, newTargetFinding(CategoryMultipleTargets, msg, t))
	}

	return findings
}

// checkDirectoryDeps flags directories listed as normal prerequisites. A
// directory's mtime changes whenever its contents do, so it must be
// order-only to avoid spurious rebuilds.
func checkDirectoryDeps(m *Model, rootDir string) []Finding {
	var findings []Finding

	for i := range m.Targets {
		t := &m.Targets[i]
		orderOnly := make(map[string]struct{}, len(t.OrderOnlyDeps))
		for _, dep := range t.OrderOnlyDeps {
			orderOnly[dep] = struct{}{}
		}

		for _, dep := range t.Deps {
			if _, ok := orderOnly[dep]; ok {
				continue
			}
			if !looksLikeDirectory(dep, rootDir) {
				continue
			}
			msg := fmt.Sprintf("Directory dependency '%s' on target '%s' must be order-only (list it after '|').", dep, t.Name)
			findings = append(findings, newTargetFinding(CategoryDirectoryDep, msg, t))
		}
	}

	return findings
}

// resolveFilesystemPath makes a dependency path absolute for probing.
// Absolute paths are used as-is; everything else is resolved against rootDir.
func resolveFilesystemPath(path, rootDir string) string {
	if rootDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rootDir, path)
}

// pathExists probes the filesystem once; any stat error counts as absent.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// looksLikeDirectory reports whether a dependency plausibly names an actual
// directory on disk. Names holding Make metacharacters are never probed.
func looksLikeDirectory(path, rootDir string) bool {
	if path == "" || strings.ContainsAny(path, makeMetaChars) {
		return false
	}
	info, err := os.Stat(resolveFilesystemPath(path, rootDir))
	return err == nil && info.IsDir()
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

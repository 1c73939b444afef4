package linter

import (
	"github.com/mkprof/makelint/internal/makefile"
)

// Target is one declared build target. Multiple names sharing a rule header
// each get their own Target carrying a copy of the shared dependency lists.
type Target struct {
	Name          string
	Doc           string
	Line          *int
	LineText      *string
	Grouped       bool
	Deps          []string
	OrderOnlyDeps []string
}

// Model is the read-only view the validators consume: the target list, the
// set of every referenced prerequisite name, and a reverse index from a
// prerequisite to the targets that require it.
type Model struct {
	Targets []Target
	Deps    map[string]struct{}
	DepsMap map[string]map[string]struct{}
}

// BuildModel correlates the parser's token stream with the raw source lines.
// Provenance is looked up per name; a name never declared as a header keeps
// nil line information. A grouped rule's dependencies apply identically to
// every name it produces.
func BuildModel(tokens []makefile.Token, lines []string) *Model {
	index := indexTargetLines(lines)
	m := &Model{
		Deps:    make(map[string]struct{}),
		DepsMap: make(map[string]map[string]struct{}),
	}

	for _, tok := range tokens {
		if tok.Kind != makefile.KindTarget {
			continue
		}
		rule := tok.Rule

		names := rule.AllTargets
		if len(names) == 0 {
			names = []string{rule.Target}
		}

		for _, name := range names {
			t := Target{
				Name:          name,
				Doc:           rule.Docs,
				Grouped:       rule.Grouped,
				Deps:          append([]string(nil), rule.Deps...),
				OrderOnlyDeps: append([]string(nil), rule.OrderOnlyDeps...),
			}
			if prov, ok := index[name]; ok {
				line, text := prov.Line, prov.Text
				t.Line, t.LineText = &line, &text
			}
			m.Targets = append(m.Targets, t)
		}

		for _, depList := range [][]string{rule.Deps, rule.OrderOnlyDeps} {
			for _, dep := range depList {
				m.Deps[dep] = struct{}{}
				if m.DepsMap[dep] == nil {
					m.DepsMap[dep] = make(map[string]struct{})
				}
				for _, name := range names {
					m.DepsMap[dep][name] = struct{}{}
				}
			}
		}
	}

	return m
}

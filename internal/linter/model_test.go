package linter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkprof/makelint/internal/makefile"
)

func TestBuildModelCoDeclaredNamesGetOwnRecords(t *testing.T) {
	lines := []string{"foo bar &: dep ## builds both"}
	tokens := makefile.ParseLines(lines)

	model := BuildModel(tokens, lines)

	require.Len(t, model.Targets, 2)
	foo, bar := model.Targets[0], model.Targets[1]
	assert.Equal(t, "foo", foo.Name)
	assert.Equal(t, "bar", bar.Name)
	// Both records share the header's dependency data and doc.
	assert.Equal(t, []string{"dep"}, foo.Deps)
	assert.Equal(t, []string{"dep"}, bar.Deps)
	assert.Equal(t, "builds both", foo.Doc)
	assert.Equal(t, "builds both", bar.Doc)
	assert.True(t, foo.Grouped)
	assert.True(t, bar.Grouped)
	require.NotNil(t, foo.Line)
	require.NotNil(t, bar.Line)
	assert.Equal(t, 0, *foo.Line)
	assert.Equal(t, 0, *bar.Line)
}

func TestBuildModelDependencyListsAreCopies(t *testing.T) {
	lines := []string{"foo bar: dep"}
	tokens := makefile.ParseLines(lines)

	model := BuildModel(tokens, lines)

	require.Len(t, model.Targets, 2)
	model.Targets[0].Deps[0] = "mutated"
	assert.Equal(t, []string{"dep"}, model.Targets[1].Deps)
}

func TestBuildModelDepsAndReverseIndex(t *testing.T) {
	lines := []string{
		"all: foo bar ## [FINAL]",
		"other: foo | dir ## doc",
	}
	tokens := makefile.ParseLines(lines)

	model := BuildModel(tokens, lines)

	assert.Contains(t, model.Deps, "foo")
	assert.Contains(t, model.Deps, "bar")
	assert.Contains(t, model.Deps, "dir", "order-only deps land in the global set too")

	require.Contains(t, model.DepsMap, "foo")
	assert.Contains(t, model.DepsMap["foo"], "all")
	assert.Contains(t, model.DepsMap["foo"], "other")
	assert.Len(t, model.DepsMap["foo"], 2)
	require.Contains(t, model.DepsMap["bar"], "all")
	assert.Len(t, model.DepsMap["bar"], 1)
}

func TestBuildModelSkipsExpressionTokens(t *testing.T) {
	lines := []string{
		"CC = gcc",
		"all: main.o ## [FINAL]",
	}
	tokens := makefile.ParseLines(lines)

	model := BuildModel(tokens, lines)

	require.Len(t, model.Targets, 1)
	assert.Equal(t, "all", model.Targets[0].Name)
}

func TestBuildModelMissingProvenanceYieldsNilLine(t *testing.T) {
	// Token stream and raw lines disagree; the record survives with nil
	// provenance instead of failing.
	tokens := []makefile.Token{{
		Kind: makefile.KindTarget,
		Rule: &makefile.Rule{Target: "phantom", AllTargets: []string{"phantom"}, Docs: "doc"},
	}}

	model := BuildModel(tokens, []string{"unrelated content"})

	require.Len(t, model.Targets, 1)
	assert.Nil(t, model.Targets[0].Line)
	assert.Nil(t, model.Targets[0].LineText)
}

func TestBuildModelOrderOnlyTracking(t *testing.T) {
	lines := []string{"sync: src | logs ## doc"}
	tokens := makefile.ParseLines(lines)

	model := BuildModel(tokens, lines)

	require.Len(t, model.Targets, 1)
	assert.Equal(t, []string{"src"}, model.Targets[0].Deps)
	assert.Equal(t, []string{"logs"}, model.Targets[0].OrderOnlyDeps)
}

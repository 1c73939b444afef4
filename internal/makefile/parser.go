// Package makefile turns raw Makefile text into the tagged token stream the
// linter consumes. It is deliberately shallow: rule headers, their
// dependency lists and "##" doc comments are extracted, everything else
// (assignments, directives, recipes) is passed through as opaque expression
// tokens. Variable expansion, conditionals and includes are not modeled.
package makefile

import (
	"fmt"
	"io"
	"strings"
)

// Kind tags a token in the parse stream.
type Kind string

const (
	KindTarget     Kind = "target"
	KindExpression Kind = "expression"
)

// Rule carries the data of one parsed rule header. AllTargets holds every
// name declared on the header; Target is the first of them. Deps and
// OrderOnlyDeps are the prerequisites before and after the "|" separator.
type Rule struct {
	Target        string
	AllTargets    []string
	Docs          string
	Grouped       bool
	Deps          []string
	OrderOnlyDeps []string
}

// Token is one tagged record in the parse stream. Rule is set only for
// KindTarget tokens; Text holds the raw line for everything else.
type Token struct {
	Kind Kind
	Rule *Rule
	Text string
}

// Parse reads a whole Makefile and returns its token stream.
func Parse(r io.Reader) ([]Token, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading makefile: %w", err)
	}
	return ParseLines(strings.Split(string(data), "\n")), nil
}

// ParseLines tokenizes an already line-split Makefile. Continuation lines are
// joined before classification, so a rule header spread over several physical
// lines yields a single target token.
func ParseLines(lines []string) []Token {
	var tokens []Token

	for _, line := range joinContinuations(lines) {
		stripped := strings.TrimSpace(line)

		if stripped == "" {
			continue
		}
		// Recipe bodies belong to the rule above them and carry no
		// target/dependency information.
		if strings.HasPrefix(line, "\t") {
			continue
		}
		if stripped[0] == '#' && !strings.HasPrefix(line, "##") {
			continue
		}

		if strings.Contains(line, ":") && !strings.Contains(line, "=") {
			if rule, ok := parseRuleHeader(line); ok {
				tokens = append(tokens, Token{Kind: KindTarget, Rule: rule})
				continue
			}
		}

		tokens = append(tokens, Token{Kind: KindExpression, Text: line})
	}

	return tokens
}

// joinContinuations merges physical lines ending in a backslash into one
// logical line. A file ending mid-continuation simply yields the joined
// prefix collected so far.
func joinContinuations(lines []string) []string {
	var out []string

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		for {
			trimmed := strings.TrimRight(line, " \t")
			if !strings.HasSuffix(trimmed, `\`) {
				break
			}
			line = trimmed[:len(trimmed)-1] + " "
			i++
			if i >= len(lines) {
				break
			}
			line += lines[i]
		}
		out = append(out, line)
	}

	return out
}

// parseRuleHeader extracts a Rule from a logical header line. It returns
// false when the line turns out not to declare any target, for example when
// its only colon sits inside the trailing doc comment.
func parseRuleHeader(line string) (*Rule, bool) {
	head := line
	docs := ""
	if idx := strings.Index(head, "##"); idx >= 0 {
		docs = strings.TrimSpace(head[idx+2:])
		head = head[:idx]
	}

	colon := strings.Index(head, ":")
	if colon < 0 {
		return nil, false
	}

	grouped := false
	namesPart := head[:colon]
	if colon > 0 && head[colon-1] == '&' {
		grouped = true
		namesPart = head[:colon-1]
	}
	depsPart := head[colon+1:]

	names := strings.Fields(namesPart)
	if len(names) == 0 {
		return nil, false
	}

	normal := depsPart
	orderOnly := ""
	if bar := strings.Index(depsPart, "|"); bar >= 0 {
		normal, orderOnly = depsPart[:bar], depsPart[bar+1:]
	}

	return &Rule{
		Target:        names[0],
		AllTargets:    names,
		Docs:          docs,
		Grouped:       grouped,
		Deps:          strings.Fields(normal),
		OrderOnlyDeps: strings.Fields(orderOnly),
	}, true
}

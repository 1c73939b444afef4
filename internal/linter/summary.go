package linter

import (
	"fmt"
	"sort"
	"strings"
)

// Summarize reduces a findings sequence to "<category>: <count>" pairs joined
// by ", ". Categories are ordered by the line number of their first located
// finding; categories whose findings all lack line numbers sort last, keeping
// their first-appearance order among themselves.
func Summarize(findings []Finding) string {
	counts := make(map[Category]int)
	firstSeen := make(map[Category]int)
	var order []Category

	for _, f := range findings {
		if counts[f.Category] == 0 {
			order = append(order, f.Category)
		}
		counts[f.Category]++
		if _, ok := firstSeen[f.Category]; !ok && f.Line != nil {
			firstSeen[f.Category] = *f.Line
		}
	}

	rank := func(cat Category) int {
		if line, ok := firstSeen[cat]; ok {
			return line
		}
		return int(^uint(0) >> 1)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return rank(order[i]) < rank(order[j])
	})

	parts := make([]string, 0, len(order))
	for _, cat := range order {
		parts = append(parts, fmt.Sprintf("%s: %d", cat, counts[cat]))
	}
	return strings.Join(parts, ", ")
}

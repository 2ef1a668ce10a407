// Package normalize canonicalizes free-text names and keyword sets for
// comparison across the dedup and data-quality paths.
package normalize

import (
	"regexp"
	"strings"
)

// parentheticalAnnotation matches trailing cost/volume annotations such as
// "(424.39₽)" or "(12 kg)" that sources tack onto names.
var parentheticalAnnotation = regexp.MustCompile(`\s*\([^)]*\d[^)]*\)`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Name canonicalizes a free-text name: annotation stripping, lowercasing,
// whitespace collapsing, trailing punctuation removal. Idempotent.
func Name(name string) string {
	n := parentheticalAnnotation.ReplaceAllString(name, " ")
	n = strings.ToLower(n)
	n = whitespaceRun.ReplaceAllString(n, " ")
	n = strings.TrimSpace(n)
	n = strings.TrimRight(n, ".,;:!?-")
	return strings.TrimSpace(n)
}

// KeywordJaccard computes the Jaccard similarity of two keyword sets,
// case-insensitively. Empty sets have zero similarity.
func KeywordJaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := make(map[string]struct{}, len(a))
	for _, k := range a {
		setA[strings.ToLower(strings.TrimSpace(k))] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, k := range b {
		setB[strings.ToLower(strings.TrimSpace(k))] = struct{}{}
	}

	intersection := 0
	for k := range setA {
		if _, ok := setB[k]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// LevenshteinRatio converts an edit distance into a similarity in [0,1]
// relative to the longer input.
func LevenshteinRatio(a, b string, distance int) float64 {
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(distance)/float64(longest)
}

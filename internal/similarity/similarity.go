// Package similarity scores token overlap between two code snippets.
package similarity

import (
	"math"
	"regexp"
)

// ReferenceSnippet is the fixed snippet submissions are compared against.
const ReferenceSnippet = "for i in range(n): total += nums[i]"

var nonWord = regexp.MustCompile(`\W+`)

// Tokenize splits s on runs of non-word characters and returns the distinct tokens.
func Tokenize(s string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, tok := range nonWord.Split(s, -1) {
		if tok == "" {
			continue
		}
		set[tok] = struct{}{}
	}
	return set
}

// Percent returns the Jaccard overlap of the token sets of a and b, rounded to a whole percent.
func Percent(a, b string) int {
	setA := Tokenize(a)
	setB := Tokenize(b)
	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		union = 1
	}
	return int(math.Floor(float64(intersection)/float64(union)*100 + 0.5))
}

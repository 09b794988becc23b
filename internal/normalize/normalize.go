// Package normalize cleans raw transaction labels into merchant names and
// provides the n-gram primitives used for fuzzy pattern matching.
//
// All functions are pure: no state, no side effects. Empty or garbage input
// yields an empty merchant, which callers must treat as "no pattern match
// possible".
package normalize

import (
	"regexp"
	"strings"
)

var (
	// Date-like substrings: 12/03, 12/03/24, 12/03/2024.
	dateRe = regexp.MustCompile(`\b\d{1,2}/\d{1,2}(?:/\d{2,4})?\b`)
	// Amount-like substrings: 15,99 or 15.99.
	amountRe = regexp.MustCompile(`\d+[.,]\d+`)
	// Bank card tokens like "cb*1234" or "carte 4512". Checked before the
	// generic reference strip so the cb/carte prefix goes with the digits.
	cardRe = regexp.MustCompile(`\b(?:cb|carte)[\s*]*\d{2,}\b`)
	// Card and reference tokens: #REF123, *4512.
	refRe   = regexp.MustCompile(`[#*]\S+`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// CleanLabel lowercases a raw transaction label and strips date, amount and
// card-reference noise, collapsing the remaining whitespace.
func CleanLabel(label string) string {
	s := strings.ToLower(label)
	s = dateRe.ReplaceAllString(s, " ")
	s = cardRe.ReplaceAllString(s, " ")
	s = refRe.ReplaceAllString(s, " ")
	s = amountRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Merchant extracts a merchant candidate from a cleaned label. It scans the
// first one to three whitespace-delimited tokens and prefers the shortest
// prefix the known predicate recognizes; otherwise it falls back to the first
// token. known may be nil.
func Merchant(clean string, known func(string) bool) string {
	tokens := strings.Fields(clean)
	if len(tokens) == 0 {
		return ""
	}

	limit := len(tokens)
	if limit > 3 {
		limit = 3
	}
	if known != nil {
		for n := 1; n <= limit; n++ {
			candidate := strings.Join(tokens[:n], " ")
			if known(candidate) {
				return candidate
			}
		}
	}

	return tokens[0]
}

// NGrams returns the set of character n-grams of the given sizes. Sizes 2 and
// 3 are used throughout the matcher; other sizes are accepted for tests.
func NGrams(text string, sizes ...int) map[string]struct{} {
	if len(sizes) == 0 {
		sizes = []int{2, 3}
	}

	grams := make(map[string]struct{})
	runes := []rune(text)
	for _, size := range sizes {
		if size <= 0 {
			continue
		}
		for i := 0; i+size <= len(runes); i++ {
			grams[string(runes[i:i+size])] = struct{}{}
		}
	}
	return grams
}

// NGramOverlap reports how many of pattern's n-grams occur in the target set.
func NGramOverlap(pattern map[string]struct{}, target map[string]struct{}) int {
	count := 0
	for g := range pattern {
		if _, ok := target[g]; ok {
			count++
		}
	}
	return count
}

// Similarity computes a simple positional character match ratio between two
// strings, used as the last-resort fuzzy fallback in pattern lookup.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}
	matches := 0
	for i := 0; i < n; i++ {
		if ra[i] == rb[i] {
			matches++
		}
	}
	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}
	return float64(matches) / float64(longer)
}

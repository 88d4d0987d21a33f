package match

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// tokenDiscount keeps a verbatim match ahead of a reordered or partial one
// when both would otherwise score equally.
const tokenDiscount = 95

// Score returns a similarity in the closed range [0, 100] between two
// already-normalized strings. It is the maximum of a plain edit-distance
// ratio, a token-sort ratio and a token-set ratio, the latter two weighted
// down slightly, which keeps the score robust to word reordering and
// partial containment while still rewarding exact agreement most.
func Score(a, b string) int {
	if a == b {
		if a == "" {
			return 0
		}
		return 100
	}

	best := ratio(a, b)
	if s := tokenSortRatio(a, b) * tokenDiscount / 100; s > best {
		best = s
	}
	if s := tokenSetRatio(a, b) * tokenDiscount / 100; s > best {
		best = s
	}
	return best
}

// ratio converts Levenshtein distance to a 0-100 similarity.
func ratio(a, b string) int {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	d := fuzzy.LevenshteinDistance(a, b)
	// round((longest-d)/longest * 100)
	return (200*(longest-d) + longest) / (2 * longest)
}

// tokenSortRatio compares the two strings with their words sorted, so
// "returns superman" and "superman returns" score as equals.
func tokenSortRatio(a, b string) int {
	return ratio(sortTokens(a), sortTokens(b))
}

// tokenSetRatio compares around the shared word set, which scores a query
// contained in a longer title highly ("superman" vs "superman returns").
func tokenSetRatio(a, b string) int {
	ta, tb := tokenSet(a), tokenSet(b)

	var common, onlyA, onlyB []string
	for t := range ta {
		if _, ok := tb[t]; ok {
			common = append(common, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range tb {
		if _, ok := ta[t]; !ok {
			onlyB = append(onlyB, t)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(common, " ")
	withA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	withB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	best := ratio(base, withA)
	if s := ratio(base, withB); s > best {
		best = s
	}
	if s := ratio(withA, withB); s > best {
		best = s
	}
	return best
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range strings.Fields(s) {
		set[t] = struct{}{}
	}
	return set
}

package match

import (
	"cmp"
	"slices"
	"strings"
)

// DefaultThreshold is the minimum similarity for a suggestion.
const DefaultThreshold = 0.6

// NormalizeName lower-cases a class name and drops underscores, so that
// "order_item", "OrderItem" and "orderitem" compare equal. PHP class names
// are case-insensitive.
func NormalizeName(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", "")
}

// Suggestion is a candidate name with its similarity score.
type Suggestion struct {
	Name  string
	Score float64
}

// Suggest returns candidates whose normalized similarity to name is at
// least threshold, best first. Ties keep candidate order. At most limit
// suggestions are returned; limit <= 0 means no limit.
func Suggest(name string, candidates []string, threshold float64, limit int) []Suggestion {
	norm := NormalizeName(name)

	var out []Suggestion

	seen := make(map[string]bool, len(candidates))

	for _, c := range candidates {
		if seen[c] {
			continue
		}

		seen[c] = true

		score := Similarity(norm, NormalizeName(c))
		if score >= threshold {
			out = append(out, Suggestion{Name: c, Score: score})
		}
	}

	slices.SortStableFunc(out, func(a, b Suggestion) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

// Names returns the names of suggestions in order.
func Names(suggestions []Suggestion) []string {
	names := make([]string, len(suggestions))
	for i, s := range suggestions {
		names[i] = s.Name
	}

	return names
}

package suggest

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	DefaultMaxDistance = 2
	DefaultLimit       = 3
)

// Options bounds how far and how many suggestions are returned.
type Options struct {
	MaxDistance int
	Limit       int
}

func DefaultOptions() Options {
	return Options{MaxDistance: DefaultMaxDistance, Limit: DefaultLimit}
}

// Distance is the edit distance between a and b, ignoring case.
func Distance(a, b string) int {
	return fuzzy.LevenshteinDistance(strings.ToLower(a), strings.ToLower(b))
}

type suggestion struct {
	name     string
	distance int
}

// Suggest returns the candidates within maxDistance of query, closest
// first, ties broken alphabetically, truncated to limit.
func Suggest(query string, candidates []string, maxDistance, limit int) []string {
	if limit <= 0 || maxDistance < 0 {
		return nil
	}

	seen := make(map[string]bool, len(candidates))
	var suggestions []suggestion
	for _, name := range candidates {
		if seen[name] {
			continue
		}
		seen[name] = true

		if dist := Distance(query, name); dist <= maxDistance {
			suggestions = append(suggestions, suggestion{name: name, distance: dist})
		}
	}

	// Sort by distance (ascending), then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}

// Suggest runs Suggest using the bounds in opts.
func (o Options) Suggest(query string, candidates []string) []string {
	return Suggest(query, candidates, o.MaxDistance, o.Limit)
}

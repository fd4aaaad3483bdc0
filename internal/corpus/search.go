package corpus

import (
	"slices"
	"strings"
)

// SearchOptions filters search results.
type SearchOptions struct {
	// RepoName restricts results to one repository. Empty matches all.
	RepoName string
}

// Search finds entries matching the query. Matching is case-insensitive
// against Name and Description; an empty query returns everything that
// passes the filters. Results are ordered by match quality and then name.
func Search(entries []Entry, query string, opts SearchOptions) []Entry {
	query = strings.ToLower(query)

	var results []Entry
	for _, e := range entries {
		if opts.RepoName != "" && e.RepoName != opts.RepoName {
			continue
		}
		if query == "" || matchesQuery(e, query) {
			results = append(results, e)
		}
	}

	slices.SortFunc(results, func(a, b Entry) int {
		if d := scoreMatch(b, query) - scoreMatch(a, query); d != 0 {
			return d
		}
		return strings.Compare(a.Name, b.Name)
	})

	return results
}

func matchesQuery(e Entry, query string) bool {
	return strings.Contains(strings.ToLower(e.Name), query) ||
		strings.Contains(strings.ToLower(e.Description), query)
}

// scoreMatch ranks match quality: exact name 100, name prefix 75, name
// substring 50, description-only 25.
func scoreMatch(e Entry, query string) int {
	if query == "" {
		return 0
	}

	name := strings.ToLower(e.Name)
	switch {
	case name == query:
		return 100
	case strings.HasPrefix(name, query):
		return 75
	case strings.Contains(name, query):
		return 50
	case strings.Contains(strings.ToLower(e.Description), query):
		return 25
	}
	return 0
}

// FindByName returns the entries whose name matches exactly.
func FindByName(entries []Entry, name string) []Entry {
	var matches []Entry
	for _, e := range entries {
		if e.Name == name {
			matches = append(matches, e)
		}
	}
	return matches
}

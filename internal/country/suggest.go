package country

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Closest returns the entry whose name is the fewest edits away from query.
// Ties go to the earlier entry. It reports false for an empty query or list.
func Closest(all []Entry, query string) (Entry, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(all) == 0 {
		return Entry{}, false
	}
	best := -1
	bestDist := 0
	for i, entry := range all {
		dist := levenshtein.ComputeDistance(q, strings.ToLower(entry.Name))
		if best < 0 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return all[best], true
}

package pipeline

import (
	"strings"

	"jobradar/internal/domain"
	"jobradar/internal/textutil"
)

// MatchTargets decides whether a listing belongs to the target geography.
// A remote-keyword hit in the location or description wins outright and
// records ["remote"]; otherwise every target city found in either text is
// collected, in configured order. Empty result means reject.
//
// Substring matching on canonicalized text is deliberately permissive: a
// city name buried in formatting noise still matches, and the occasional
// false positive is acceptable for a personal filter.
func MatchTargets(l domain.Listing, cities, remoteKeywords []string) ([]string, bool) {
	loc := textutil.Canonicalize(l.Location)
	desc := textutil.Canonicalize(l.Description)

	if textutil.ContainsAny(loc, remoteKeywords) || textutil.ContainsAny(desc, remoteKeywords) {
		return []string{"remote"}, true
	}

	var matched []string
	for _, c := range cities {
		c = textutil.Canonicalize(c)
		if c == "" {
			continue
		}
		if strings.Contains(loc, c) || strings.Contains(desc, c) {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 {
		return nil, false
	}
	return matched, true
}

package pipeline

import (
	mapset "github.com/deckarep/golang-set/v2"

	"jobradar/internal/domain"
	"jobradar/internal/fetch"
)

// Dedupe keeps the first occurrence of each distinct posting, preserving
// input order. Identity is the canonicalized link; sources that omit links
// fall back to title+company. This is the only place cross-source identity
// is established.
func Dedupe(in []domain.Listing) []domain.Listing {
	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([]domain.Listing, 0, len(in))
	for _, l := range in {
		key := fetch.CanonicalURL(l.Link)
		if key == "" {
			key = l.Title + l.Company
		}
		if seen.Contains(key) {
			continue
		}
		seen.Add(key)
		out = append(out, l)
	}
	return out
}

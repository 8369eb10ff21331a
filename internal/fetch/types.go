package fetch

import "context"

// RawListing is one record as a source produced it: keys are optional and
// values may be strings or nested objects (e.g. {"display_name": ...}).
// The normalizer owns turning this into a domain.Listing.
type RawListing map[string]any

// Fetcher is one configured source (API or HTML board). Fetch is
// best-effort: a partial slice with a nil error is a normal outcome.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]RawListing, error)
}

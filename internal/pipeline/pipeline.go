package pipeline

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"jobradar/internal/domain"
	"jobradar/internal/fetch"
	"jobradar/internal/normalize"
	"jobradar/internal/rank"
	"jobradar/internal/trends"
)

type Options struct {
	TargetCities   []string
	RemoteKeywords []string
	Scorer         rank.Scorer
	Trends         trends.Options
	// TrendsUseFiltered switches the trend corpus from the full fetch to the
	// location-filtered subset (minority policy, off by default).
	TrendsUseFiltered bool
	SourceTimeout     time.Duration
}

type Counts struct {
	Fetched    int
	Filtered   int
	Curated    int
	Discarded  int
	TrendTerms int
}

type Result struct {
	Curated    []domain.Listing
	Discarded  []domain.Listing
	Trends     []domain.TrendTerm
	HighDemand []domain.TrendTerm
	Counts     Counts
}

// Run drives one full pass: fetch each source in turn (best-effort), then
// curate and extract trends over the gathered corpus. onSource, when set, is
// told after each source finishes; sinks are the caller's problem.
func Run(ctx context.Context, fetchers []fetch.Fetcher, opts Options, onSource func(name string, fetched int)) Result {
	if opts.SourceTimeout <= 0 {
		opts.SourceTimeout = 2 * time.Minute
	}

	// Sources run one after another; pacing between requests lives inside
	// each fetcher. A source that errors contributes whatever it managed.
	var corpus []domain.Listing
	for _, f := range fetchers {
		fctx, cancel := context.WithTimeout(ctx, opts.SourceTimeout)
		raws, err := f.Fetch(fctx)
		cancel()
		if err != nil {
			log.Printf("[%s] fetch error (keeping %d partial): %v", f.Name(), len(raws), err)
		}
		for _, raw := range raws {
			corpus = append(corpus, normalize.Listing(f.Name(), raw))
		}
		if onSource != nil {
			onSource(f.Name(), len(raws))
		}
	}

	var res Result
	res.Counts.Fetched = len(corpus)

	// Curation and trend extraction are independent pure passes over
	// immutable listings, so they can run side by side.
	var filtered []domain.Listing
	var g errgroup.Group

	g.Go(func() error {
		var scored []domain.Listing
		for _, l := range corpus {
			matched, ok := MatchTargets(l, opts.TargetCities, opts.RemoteKeywords)
			if !ok {
				continue
			}
			l.MatchedLocations = matched
			l.Score, l.Label = opts.Scorer.Score(l)
			scored = append(scored, l)
		}
		filtered = scored
		res.Counts.Filtered = len(scored)

		for _, l := range Dedupe(scored) {
			if l.Curated() {
				res.Curated = append(res.Curated, l)
			} else {
				res.Discarded = append(res.Discarded, l)
			}
		}
		res.Counts.Curated = len(res.Curated)
		res.Counts.Discarded = len(res.Discarded)
		return nil
	})

	if !opts.TrendsUseFiltered {
		g.Go(func() error {
			res.Trends, res.HighDemand = trends.Extract(corpus, opts.Trends)
			return nil
		})
	}

	_ = g.Wait()

	// minority policy: trend over the filtered subset, which curation built
	if opts.TrendsUseFiltered {
		res.Trends, res.HighDemand = trends.Extract(filtered, opts.Trends)
	}
	res.Counts.TrendTerms = len(res.Trends)
	return res
}

package trends

import (
	"sort"
	"strings"

	"jobradar/internal/domain"
	"jobradar/internal/textutil"
)

type Options struct {
	TopK            int     // ranked terms to keep (default 25)
	MaxVocab        int     // resource bound on distinct tokens (default 2000)
	HighDemandRatio float64 // count >= ratio*docs marks a term high-demand (default 0.2)
}

func (o Options) withDefaults() Options {
	if o.TopK <= 0 {
		o.TopK = 25
	}
	if o.MaxVocab <= 0 {
		o.MaxVocab = 2000
	}
	if o.HighDemandRatio <= 0 {
		o.HighDemandRatio = 0.2
	}
	return o
}

// Extract builds a bag-of-words frequency model over the corpus and returns
// the top terms plus the high-demand subsequence. Listings with a blank
// description contribute no document. An empty corpus yields empty slices,
// never an error.
func Extract(corpus []domain.Listing, opts Options) (top, highDemand []domain.TrendTerm) {
	opts = opts.withDefaults()

	var docs []string
	for _, l := range corpus {
		if strings.TrimSpace(l.Description) == "" {
			continue
		}
		docs = append(docs, textutil.Canonicalize(l.Title+" "+l.Description))
	}
	if len(docs) == 0 {
		return nil, nil
	}

	// term frequency: a token is counted once per occurrence, not per doc
	counts := make(map[string]int)
	for _, d := range docs {
		for _, tok := range strings.Fields(d) {
			if stopWords.Contains(tok) || len(tok) < 2 {
				continue
			}
			counts[tok]++
		}
	}

	terms := make([]domain.TrendTerm, 0, len(counts))
	for t, c := range counts {
		terms = append(terms, domain.TrendTerm{Term: t, Count: c})
	}
	// count desc, then token asc so runs are deterministic
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})

	if len(terms) > opts.MaxVocab {
		terms = terms[:opts.MaxVocab]
	}
	if len(terms) > opts.TopK {
		terms = terms[:opts.TopK]
	}

	threshold := float64(len(docs)) * opts.HighDemandRatio
	for _, t := range terms {
		if float64(t.Count) >= threshold {
			highDemand = append(highDemand, t)
		}
	}
	return terms, highDemand
}

package output

import (
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"jobradar/internal/domain"
	"jobradar/internal/pipeline"
)

// PrintSummary renders the end-of-run console report: counts, the top
// curated rows and the high-demand terms.
func PrintSummary(res pipeline.Result) {
	c := res.Counts
	pterm.DefaultSection.Println("Run summary")
	pterm.Info.Printfln("fetched=%s filtered=%s curated=%s discarded=%s trend_terms=%d",
		humanize.Comma(int64(c.Fetched)),
		humanize.Comma(int64(c.Filtered)),
		humanize.Comma(int64(c.Curated)),
		humanize.Comma(int64(c.Discarded)),
		c.TrendTerms,
	)

	if len(res.Curated) > 0 {
		rows := pterm.TableData{{"Score", "Label", "Title", "Company", "Matched"}}
		for i, l := range SortByScore(res.Curated) {
			if i >= 15 {
				break
			}
			rows = append(rows, []string{
				humanize.Comma(int64(l.Score)),
				string(l.Label),
				truncate(l.Title, 48),
				truncate(l.Company, 24),
				strings.Join(l.MatchedLocations, ","),
			})
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	}

	if len(res.HighDemand) > 0 {
		var parts []string
		for _, t := range res.HighDemand {
			parts = append(parts, pterm.Sprintf("%s(%d)", t.Term, t.Count))
		}
		pterm.Info.Printfln("high demand: %s", strings.Join(parts, " "))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// SortByScore orders curated listings for display, best first, keeping the
// pipeline's stable order within equal scores.
func SortByScore(in []domain.Listing) []domain.Listing {
	out := make([]domain.Listing, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

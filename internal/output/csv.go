package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"jobradar/internal/domain"
)

var csvHeader = []string{
	"source", "title", "company", "location", "desc", "link",
	"matched_locations", "score", "label",
}

// WriteCuratedCSV writes the curated table, one row per listing. Listings
// are immutable once written; a re-run produces a new file.
func WriteCuratedCSV(path string, listings []domain.Listing) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create curated csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, l := range listings {
		row := []string{
			l.Source, l.Title, l.Company, l.Location, l.Description, l.Link,
			strings.Join(l.MatchedLocations, "|"),
			strconv.Itoa(l.Score),
			string(l.Label),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadCuratedCSV reads a curated file back into listings. Used by tests and
// the show subcommand; scores survive the round trip exactly.
func ReadCuratedCSV(path string) ([]domain.Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	out := make([]domain.Listing, 0, len(rows)-1)
	for _, r := range rows[1:] {
		if len(r) != len(csvHeader) {
			return nil, fmt.Errorf("curated csv: want %d columns, got %d", len(csvHeader), len(r))
		}
		score, err := strconv.Atoi(r[7])
		if err != nil {
			return nil, fmt.Errorf("curated csv: bad score %q: %w", r[7], err)
		}
		l := domain.Listing{
			Source: r[0], Title: r[1], Company: r[2], Location: r[3],
			Description: r[4], Link: r[5],
			Score: score, Label: domain.Label(r[8]),
		}
		if r[6] != "" {
			l.MatchedLocations = strings.Split(r[6], "|")
		}
		out = append(out, l)
	}
	return out, nil
}

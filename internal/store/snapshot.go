package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jobradar/internal/domain"
)

// SaveSnapshot replaces the curated table with this run's listings. The
// table only ever holds the latest run (no cross-run history); runID tags
// which run the rows came from.
func (d *DB) SaveSnapshot(ctx context.Context, runID string, listings []domain.Listing) error {
	tx, err := d.Pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM curated;`); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, l := range listings {
		locs, _ := json.Marshal(l.MatchedLocations)
		_, err := tx.ExecContext(ctx, `
INSERT INTO curated(run_id, source, title, company, location, description, link, matched_locations, score, label, written_at)
VALUES(?,?,?,?,?,?,?,?,?,?,?);`,
			runID, l.Source, l.Title, l.Company, l.Location, l.Description,
			l.Link, string(locs), l.Score, string(l.Label), now,
		)
		if err != nil {
			return fmt.Errorf("insert curated row: %w", err)
		}
	}

	return tx.Commit()
}

// LoadSnapshot reads the current curated table back, highest score first.
func (d *DB) LoadSnapshot(ctx context.Context) ([]domain.Listing, error) {
	rows, err := d.Pool.QueryContext(ctx, `
SELECT source, title, company, location, description, link, matched_locations, score, label
FROM curated
ORDER BY score DESC, id ASC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Listing
	for rows.Next() {
		var l domain.Listing
		var locs, label string
		if err := rows.Scan(&l.Source, &l.Title, &l.Company, &l.Location,
			&l.Description, &l.Link, &locs, &l.Score, &label); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(locs), &l.MatchedLocations)
		l.Label = domain.Label(label)
		out = append(out, l)
	}
	return out, rows.Err()
}

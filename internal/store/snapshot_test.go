package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobradar/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSnapshotRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	in := []domain.Listing{
		{
			Source: "adzuna", Title: "QA Engineer", Company: "Acme",
			Location: "Pune", Description: "Selenium", Link: "https://jobs.example.com/1",
			MatchedLocations: []string{"pune"},
			Score:            80, Label: domain.LabelExcellent,
		},
		{
			Source: "board0", Title: "SDET", Company: "Globex",
			MatchedLocations: []string{"remote"},
			Score:            62, Label: domain.LabelGood,
		},
	}
	require.NoError(t, db.SaveSnapshot(ctx, uuid.NewString(), in))

	out, err := db.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSnapshotReplacesPreviousRun(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	first := []domain.Listing{{Source: "adzuna", Title: "Old", Score: 90, Label: domain.LabelExcellent}}
	require.NoError(t, db.SaveSnapshot(ctx, uuid.NewString(), first))

	second := []domain.Listing{{Source: "adzuna", Title: "New", Score: 61, Label: domain.LabelGood}}
	require.NoError(t, db.SaveSnapshot(ctx, uuid.NewString(), second))

	out, err := db.LoadSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "New", out[0].Title)
}

func TestSnapshotEmptyRun(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveSnapshot(ctx, uuid.NewString(), nil))
	out, err := db.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)
}

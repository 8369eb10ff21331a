package output

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobradar/internal/domain"
)

func TestCuratedCSVRoundTrip(t *testing.T) {
	in := []domain.Listing{
		{
			Source: "adzuna", Title: "QA Engineer, Payments", Company: "Acme",
			Location: "Pune", Description: "Selenium, \"quoted\" text\nwith a newline",
			Link:             "https://jobs.example.com/1",
			MatchedLocations: []string{"pune", "surat"},
			Score:            77, Label: domain.LabelExcellent,
		},
		{
			Source: "board0", Title: "SDET", Company: "Globex",
			MatchedLocations: []string{"remote"},
			Score:            60, Label: domain.LabelGood,
		},
	}

	path := filepath.Join(t.TempDir(), "jobs.csv")
	require.NoError(t, WriteCuratedCSV(path, in))

	out, err := ReadCuratedCSV(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestWriteCuratedCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.csv")
	require.NoError(t, WriteCuratedCSV(path, nil))

	out, err := ReadCuratedCSV(path)
	require.NoError(t, err)
	assert.Empty(t, out)
}

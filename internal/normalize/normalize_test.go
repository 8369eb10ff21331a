package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobradar/internal/domain"
	"jobradar/internal/fetch"
)

func TestListing(t *testing.T) {
	tests := []struct {
		name string
		raw  fetch.RawListing
		want domain.Listing
	}{
		{
			name: "api shape with nested display names",
			raw: fetch.RawListing{
				"title":        "QA Engineer",
				"company":      map[string]any{"display_name": "Acme"},
				"location":     map[string]any{"display_name": "Pune, Maharashtra"},
				"description":  "Test all the things",
				"redirect_url": "https://api.example.com/r/123",
			},
			want: domain.Listing{
				Source:      "adzuna",
				Title:       "QA Engineer",
				Company:     "Acme",
				Location:    "Pune, Maharashtra",
				Description: "Test all the things",
				Link:        "https://api.example.com/r/123",
			},
		},
		{
			name: "flat strings and alternate keys",
			raw: fetch.RawListing{
				"title":    "SDET",
				"company":  "Globex",
				"location": "Remote",
				"desc":     "short form description key",
				"href":     "https://boards.example.com/sdet",
			},
			want: domain.Listing{
				Source:      "adzuna",
				Title:       "SDET",
				Company:     "Globex",
				Location:    "Remote",
				Description: "short form description key",
				Link:        "https://boards.example.com/sdet",
			},
		},
		{
			name: "missing keys default to empty strings",
			raw:  fetch.RawListing{},
			want: domain.Listing{Source: "adzuna"},
		},
		{
			name: "wrong types degrade to empty",
			raw: fetch.RawListing{
				"title":    42,
				"company":  []any{"not", "a", "company"},
				"location": map[string]any{"city": "no display_name here"},
			},
			want: domain.Listing{Source: "adzuna"},
		},
		{
			name: "link preference order",
			raw: fetch.RawListing{
				"redirect_url": "https://one",
				"link":         "https://two",
				"href":         "https://three",
			},
			want: domain.Listing{Source: "adzuna", Link: "https://one"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Listing("adzuna", tt.raw))
		})
	}
}

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobradar/internal/domain"
)

func TestDedupe(t *testing.T) {
	in := []domain.Listing{
		{Title: "First", Link: "https://jobs.example.com/1"},
		{Title: "Duplicate of first", Link: "https://jobs.example.com/1"},
		{Title: "Second", Link: "https://jobs.example.com/2"},
	}

	out := Dedupe(in)
	assert.Len(t, out, 2)
	assert.Equal(t, "First", out[0].Title)
	assert.Equal(t, "Second", out[1].Title)
}

func TestDedupeTrackingParams(t *testing.T) {
	in := []domain.Listing{
		{Title: "A", Link: "https://jobs.example.com/1?utm_source=feed"},
		{Title: "B", Link: "https://jobs.example.com/1"},
	}
	out := Dedupe(in)
	assert.Len(t, out, 1)
	assert.Equal(t, "A", out[0].Title)
}

func TestDedupeFallbackKey(t *testing.T) {
	in := []domain.Listing{
		{Title: "QA Engineer", Company: "Acme"},
		{Title: "QA Engineer", Company: "Acme"},
		{Title: "QA Engineer", Company: "Globex"},
		{Title: "QA Engineer", Company: "Acme", Link: "https://jobs.example.com/7"},
	}
	out := Dedupe(in)
	// same title+company collapses only when both lack a link
	assert.Len(t, out, 3)
}

func TestDedupeEmpty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}

package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"strips tracking params",
			"https://Jobs.Example.com/1?utm_source=feed&utm_medium=rss&gclid=abc",
			"https://jobs.example.com/1",
		},
		{
			"drops fragment, keeps real params",
			"https://jobs.example.com/search?q=qa#top",
			"https://jobs.example.com/search?q=qa",
		},
		{
			"deterministic query order",
			"https://jobs.example.com/s?b=2&a=1",
			"https://jobs.example.com/s?a=1&b=2",
		},
		{"empty", "   ", ""},
		{"unparseable comes back trimmed", "  ht tp://bad  ", "ht tp://bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalURL(tt.in))
		})
	}
}

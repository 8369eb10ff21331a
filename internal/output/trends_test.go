package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobradar/internal/domain"
)

func TestWriteTrendsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trends.json")
	top := []domain.TrendTerm{{Term: "selenium", Count: 9}, {Term: "api", Count: 4}}
	high := []domain.TrendTerm{{Term: "selenium", Count: 9}}

	require.NoError(t, WriteTrendsJSON(path, top, high))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc TrendDoc
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, top, doc.Trends)
	assert.Equal(t, high, doc.HighDemand)
}

func TestWriteTrendsJSONEmptyCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trends.json")
	require.NoError(t, WriteTrendsJSON(path, nil, nil))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"trends":[],"high_demand":[]}`, string(b))
}

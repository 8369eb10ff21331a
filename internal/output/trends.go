package output

import (
	"encoding/json"
	"fmt"
	"os"

	"jobradar/internal/domain"
)

type TrendDoc struct {
	Trends     []domain.TrendTerm `json:"trends"`
	HighDemand []domain.TrendTerm `json:"high_demand"`
}

// WriteTrendsJSON writes the trend document. Empty slices serialize as []
// rather than null so an empty corpus still yields a well-formed artifact.
func WriteTrendsJSON(path string, top, highDemand []domain.TrendTerm) error {
	doc := TrendDoc{Trends: top, HighDemand: highDemand}
	if doc.Trends == nil {
		doc.Trends = []domain.TrendTerm{}
	}
	if doc.HighDemand == nil {
		doc.HighDemand = []domain.TrendTerm{}
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal trends: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}

package domain

// Listing is the canonical record for one job posting, regardless of which
// source produced it. String fields default to "" when the source omitted
// them; MatchedLocations is filled in by the location filter.
type Listing struct {
	Source           string
	Title            string
	Company          string
	Location         string
	Description      string
	Link             string
	MatchedLocations []string
	Score            int
	Label            Label
}

type Label string

const (
	LabelExcellent Label = "Excellent"
	LabelGood      Label = "Good"
	LabelPotential Label = "Potential"
	LabelDiscard   Label = "Discard"
)

// LabelFor buckets a clamped score. Thresholds are inclusive on the lower
// bound and cover all of [0,100].
func LabelFor(score int) Label {
	switch {
	case score >= 75:
		return LabelExcellent
	case score >= 60:
		return LabelGood
	case score >= 40:
		return LabelPotential
	default:
		return LabelDiscard
	}
}

// Curated reports whether a scored listing belongs in the primary output.
func (l Listing) Curated() bool {
	return l.Label == LabelExcellent || l.Label == LabelGood
}

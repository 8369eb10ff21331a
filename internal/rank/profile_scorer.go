package rank

import (
	"strings"

	"jobradar/internal/domain"
	"jobradar/internal/textutil"
)

// titleKeywords earn a single +10 bonus however many of them match.
var titleKeywords = []string{"qa", "quality", "test", "tester", "sdet", "automation"}

const (
	titleBonus      = 10
	coreSkillWeight = 6
	secSkillWeight  = 3
	skillScoreCap   = 40
	domainWeight    = 5
	maxScore        = 100
)

// ProfileScorer scores a listing against the user profile. Pure and
// deterministic; an empty profile section simply contributes nothing.
type ProfileScorer struct {
	Profile        domain.Profile
	IncludeCompany bool
}

func (s ProfileScorer) Score(l domain.Listing) (int, domain.Label) {
	text := l.Title + " " + l.Description
	if s.IncludeCompany {
		text += " " + l.Company
	}
	text = textutil.Canonicalize(text)

	score := 0
	if textutil.ContainsAny(text, titleKeywords) {
		score += titleBonus
	}

	skill := 0
	for _, k := range s.Profile.Skills.Core {
		if contains(text, k) {
			skill += coreSkillWeight
		}
	}
	for _, k := range s.Profile.Skills.Secondary {
		if contains(text, k) {
			skill += secSkillWeight
		}
	}
	if skill > skillScoreCap {
		skill = skillScoreCap
	}
	score += skill

	for _, d := range s.Profile.Domains {
		if contains(text, d) {
			score += domainWeight
		}
	}

	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}
	return score, domain.LabelFor(score)
}

func contains(text, needle string) bool {
	needle = textutil.Canonicalize(needle)
	return needle != "" && strings.Contains(text, needle)
}

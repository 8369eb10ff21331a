package domain

// Profile is the user's skill/domain profile, loaded once per run and
// read-only after that. Missing sections stay as empty slices.
type Profile struct {
	Skills struct {
		Core      []string `yaml:"core"`
		Secondary []string `yaml:"secondary"`
	} `yaml:"skills"`
	Domains []string `yaml:"domains"`
}

// TrendTerm is one token surviving stop-word removal, with its total
// occurrence count across the trend corpus.
type TrendTerm struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

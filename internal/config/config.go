package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"jobradar/internal/domain"
)

type BoardSource struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	CompanyName string `yaml:"company_name"` // fixed company when the page is one employer's board
	Selectors   struct {
		Row      string `yaml:"row"`
		Title    string `yaml:"title"`
		Company  string `yaml:"company"`
		Location string `yaml:"location"`
		Link     string `yaml:"link"`
	} `yaml:"selectors"`
}

type Config struct {
	App struct {
		OutputDir string `yaml:"output_dir"`
	} `yaml:"app"`

	Polling struct {
		IntervalMinutes int `yaml:"interval_minutes"`
	} `yaml:"polling"`

	Profile domain.Profile `yaml:"profile"`

	Filters struct {
		TargetCities   []string `yaml:"target_cities"`
		RemoteKeywords []string `yaml:"remote_keywords"`
	} `yaml:"filters"`

	Scoring struct {
		IncludeCompany bool `yaml:"include_company"`
	} `yaml:"scoring"`

	Trends struct {
		TopK            int     `yaml:"top_k"`
		MaxVocab        int     `yaml:"max_vocab"`
		HighDemandRatio float64 `yaml:"high_demand_ratio"`
		UseFiltered     bool    `yaml:"use_filtered"`
	} `yaml:"trends"`

	Sources struct {
		Adzuna struct {
			Enabled        bool    `yaml:"enabled"`
			Country        string  `yaml:"country"`
			What           string  `yaml:"what"`
			Where          string  `yaml:"where"`
			Pages          int     `yaml:"pages"`
			ResultsPerPage int     `yaml:"results_per_page"`
			ReqPerSec      float64 `yaml:"req_per_sec"`
		} `yaml:"adzuna"`
		Boards []BoardSource `yaml:"boards"`
	} `yaml:"sources"`

	Notify struct {
		Telegram struct {
			Enabled bool  `yaml:"enabled"`
			ChatID  int64 `yaml:"chat_id"`
			TopN    int   `yaml:"top_n"`
		} `yaml:"telegram"`
	} `yaml:"notify"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg plus everything a
// run should refuse to start on (Errors) or merely mention (Warnings).
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.ToLower(strings.TrimSpace(x))
			if x == "" || seen[x] {
				continue
			}
			seen[x] = true
			ys = append(ys, x)
		}
		return ys
	}

	// match lists are lowercase by contract
	out.Filters.TargetCities = trimList(out.Filters.TargetCities)
	out.Filters.RemoteKeywords = trimList(out.Filters.RemoteKeywords)

	// defaults
	if out.App.OutputDir == "" {
		out.App.OutputDir = "outputs"
	}
	if out.Polling.IntervalMinutes <= 0 {
		out.Polling.IntervalMinutes = 360
	}
	if out.Trends.TopK <= 0 {
		out.Trends.TopK = 25
	}
	if out.Trends.MaxVocab <= 0 {
		out.Trends.MaxVocab = 2000
	}
	if out.Trends.HighDemandRatio == 0 {
		out.Trends.HighDemandRatio = 0.2
	}
	if out.Sources.Adzuna.Enabled {
		a := &out.Sources.Adzuna
		if a.Country == "" {
			a.Country = "in"
		}
		if a.Pages <= 0 {
			a.Pages = 3
		}
		if a.ResultsPerPage <= 0 {
			a.ResultsPerPage = 50
		}
		if a.ReqPerSec <= 0 {
			a.ReqPerSec = 1.0
		}
	}
	if out.Notify.Telegram.Enabled && out.Notify.Telegram.TopN <= 0 {
		out.Notify.Telegram.TopN = 5
	}

	// ---- validation rules ----

	if !out.Sources.Adzuna.Enabled && len(out.Sources.Boards) == 0 {
		res.addErr("no sources enabled: enable sources.adzuna or configure sources.boards")
	}
	for i, b := range out.Sources.Boards {
		if strings.TrimSpace(b.URL) == "" {
			res.addErr("sources.boards[%d]: url is required", i)
		}
		if strings.TrimSpace(b.Name) == "" {
			out.Sources.Boards[i].Name = fmt.Sprintf("board%d", i)
		}
	}

	if len(out.Filters.TargetCities) == 0 && len(out.Filters.RemoteKeywords) == 0 {
		res.addWarn("filters.target_cities and filters.remote_keywords are both empty; every listing will be rejected")
	}
	if len(out.Profile.Skills.Core) == 0 && len(out.Profile.Skills.Secondary) == 0 {
		res.addWarn("profile.skills is empty; scores will come from title and domain matches only")
	}

	if out.Trends.HighDemandRatio < 0 || out.Trends.HighDemandRatio > 1 {
		res.addErr("trends.high_demand_ratio must be in (0, 1], got %v", out.Trends.HighDemandRatio)
	}

	if out.Notify.Telegram.Enabled && out.Notify.Telegram.ChatID == 0 {
		res.addErr("notify.telegram.chat_id is required when notify.telegram.enabled=true")
	}

	return out, res
}

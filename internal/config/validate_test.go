package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAndValidate(t *testing.T) {
	var cfg Config
	cfg.Sources.Adzuna.Enabled = true
	cfg.Filters.TargetCities = []string{" Pune ", "pune", "", "Surat"}
	cfg.Filters.RemoteKeywords = []string{"Remote"}

	out, v := NormalizeAndValidate(cfg)

	assert.True(t, v.OK(), "errors: %v", v.Errors)
	assert.Equal(t, []string{"pune", "surat"}, out.Filters.TargetCities)
	assert.Equal(t, []string{"remote"}, out.Filters.RemoteKeywords)

	// defaults filled in
	assert.Equal(t, "outputs", out.App.OutputDir)
	assert.Equal(t, 25, out.Trends.TopK)
	assert.Equal(t, 2000, out.Trends.MaxVocab)
	assert.InDelta(t, 0.2, out.Trends.HighDemandRatio, 1e-9)
	assert.Equal(t, 3, out.Sources.Adzuna.Pages)
	assert.Equal(t, 50, out.Sources.Adzuna.ResultsPerPage)
}

func TestValidateNoSources(t *testing.T) {
	_, v := NormalizeAndValidate(Config{})
	assert.False(t, v.OK())
}

func TestValidateBoardNeedsURL(t *testing.T) {
	var cfg Config
	cfg.Sources.Boards = []BoardSource{{Name: "acme"}}
	_, v := NormalizeAndValidate(cfg)
	assert.False(t, v.OK())
}

func TestValidateTelegramChatID(t *testing.T) {
	var cfg Config
	cfg.Sources.Adzuna.Enabled = true
	cfg.Notify.Telegram.Enabled = true
	_, v := NormalizeAndValidate(cfg)
	assert.False(t, v.OK())
}

func TestValidateWarnsOnEmptyFilters(t *testing.T) {
	var cfg Config
	cfg.Sources.Adzuna.Enabled = true
	_, v := NormalizeAndValidate(cfg)
	assert.True(t, v.OK())
	assert.NotEmpty(t, v.Warnings)
}

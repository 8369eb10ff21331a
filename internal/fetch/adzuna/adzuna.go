package adzuna

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"jobradar/internal/fetch"
)

type Config struct {
	AppID          string
	AppKey         string
	Country        string // ISO code in the API path, e.g. "in"
	What           string
	Where          string
	Pages          int
	ResultsPerPage int
	BaseURL        string // override for tests; empty means the real API
}

type Client struct {
	cfg   Config
	pacer *fetch.Pacer
	hc    *http.Client
}

func New(cfg Config, pacer *fetch.Pacer) *Client {
	return &Client{
		cfg:   cfg,
		pacer: pacer,
		hc:    &http.Client{Timeout: 20 * time.Second},
	}
}

func (c *Client) Name() string { return "adzuna" }

// Fetch pages through the search endpoint until a page comes back empty or
// errors. A failed page ends the walk but keeps what was gathered: one bad
// source never aborts the run.
func (c *Client) Fetch(ctx context.Context) ([]fetch.RawListing, error) {
	var out []fetch.RawListing
	for page := 1; page <= c.cfg.Pages; page++ {
		if err := c.pacer.Wait(ctx, c.Name()); err != nil {
			return out, err
		}
		results, err := c.fetchPage(ctx, page)
		if err != nil {
			return out, fmt.Errorf("adzuna page %d: %w", page, err)
		}
		if len(results) == 0 {
			break
		}
		out = append(out, results...)
	}
	return out, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]fetch.RawListing, error) {
	base := c.cfg.BaseURL
	if base == "" {
		base = "https://api.adzuna.com/v1/api/jobs"
	}
	u := fmt.Sprintf("%s/%s/search/%d", base, c.cfg.Country, page)

	q := url.Values{}
	q.Set("app_id", c.cfg.AppID)
	q.Set("app_key", c.cfg.AppKey)
	q.Set("results_per_page", fmt.Sprint(c.cfg.ResultsPerPage))
	q.Set("what", c.cfg.What)
	if c.cfg.Where != "" {
		q.Set("where", c.cfg.Where)
	}
	q.Set("content-type", "application/json")

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u+"?"+q.Encode(), nil)
	req.Header.Set("User-Agent", "jobradar/1.0 (+local)")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get search page: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("search status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read search body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("malformed search response")
	}

	var out []fetch.RawListing
	gjson.GetBytes(body, "results").ForEach(func(_, item gjson.Result) bool {
		// keep the source's own shape (nested display_name objects included);
		// the normalizer flattens it
		if m, ok := item.Value().(map[string]any); ok {
			out = append(out, fetch.RawListing(m))
		}
		return true
	})
	return out, nil
}

package board

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobradar/internal/fetch"
)

// Config describes one HTML listing page. Selectors are CSS and default to
// the classes most hosted boards use; all markup coupling lives here so the
// pipeline only ever sees raw records.
type Config struct {
	Name        string
	URL         string
	CompanyName string // used when the page is a single employer's board
	RowSel      string
	TitleSel    string
	CompanySel  string
	LocationSel string
	LinkSel     string
}

type Scraper struct {
	cfg Config
	hc  *http.Client
}

func New(cfg Config) *Scraper {
	if cfg.RowSel == "" {
		cfg.RowSel = ".opening, .job, li.posting"
	}
	if cfg.TitleSel == "" {
		cfg.TitleSel = "a"
	}
	if cfg.LocationSel == "" {
		cfg.LocationSel = ".location, .job__location, [data-testid='job-location']"
	}
	if cfg.LinkSel == "" {
		cfg.LinkSel = "a[href]"
	}
	return &Scraper{
		cfg: cfg,
		hc:  &http.Client{Timeout: 20 * time.Second},
	}
}

func (s *Scraper) Name() string { return s.cfg.Name }

func (s *Scraper) Fetch(ctx context.Context) ([]fetch.RawListing, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	req.Header.Set("User-Agent", "jobradar/1.0 (+local)")

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("board get %s: %w", s.cfg.URL, err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("board status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("board parse html: %w", err)
	}

	base, _ := url.Parse(s.cfg.URL)

	var out []fetch.RawListing
	doc.Find(s.cfg.RowSel).Each(func(_ int, row *goquery.Selection) {
		title := cleanText(row.Find(s.cfg.TitleSel).First().Text())
		if title == "" || looksLikeJunkTitle(title) {
			return
		}

		raw := fetch.RawListing{"title": title}

		if s.cfg.CompanySel != "" {
			if co := cleanText(row.Find(s.cfg.CompanySel).First().Text()); co != "" {
				raw["company"] = co
			}
		}
		if _, ok := raw["company"]; !ok && s.cfg.CompanyName != "" {
			raw["company"] = s.cfg.CompanyName
		}

		if loc := cleanText(row.Find(s.cfg.LocationSel).First().Text()); loc != "" {
			raw["location"] = loc
		}

		if href, ok := row.Find(s.cfg.LinkSel).First().Attr("href"); ok {
			raw["href"] = absoluteURL(base, strings.TrimSpace(href))
		}

		out = append(out, raw)
	})

	return out, nil
}

func absoluteURL(base *url.URL, href string) string {
	if href == "" || base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

func looksLikeJunkTitle(t string) bool {
	l := strings.ToLower(t)
	return l == "view" || l == "apply" || strings.HasPrefix(l, "view ") || strings.HasPrefix(l, "apply ")
}

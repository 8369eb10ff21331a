package normalize

import (
	"strings"

	"jobradar/internal/domain"
	"jobradar/internal/fetch"
)

// Listing maps one raw source record into the canonical shape. Absent keys
// are a normal case and default to "": this never fails. Sources that nest a
// display name under a sub-object (Adzuna's company/location) are unwrapped
// to flat strings.
func Listing(source string, raw fetch.RawListing) domain.Listing {
	return domain.Listing{
		Source:      source,
		Title:       str(raw, "title"),
		Company:     flat(raw, "company"),
		Location:    flat(raw, "location"),
		Description: first(raw, "description", "desc"),
		Link:        first(raw, "redirect_url", "link", "href"),
	}
}

func str(raw fetch.RawListing, key string) string {
	if s, ok := raw[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// flat accepts either a plain string or a {"display_name": ...} sub-object.
func flat(raw fetch.RawListing, key string) string {
	switch v := raw[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		if s, ok := v["display_name"].(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func first(raw fetch.RawListing, keys ...string) string {
	for _, k := range keys {
		if s := str(raw, k); s != "" {
			return s
		}
	}
	return ""
}

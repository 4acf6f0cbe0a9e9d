// Package seo builds the sitemap, robots rules, JSON-LD blocks and page
// metadata for search engines and link previews.
package seo

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dfwhvac/internal/content"
)

// Change frequencies of the sitemaps.org protocol.
const (
	ChangeWeekly  = "weekly"
	ChangeMonthly = "monthly"
	ChangeYearly  = "yearly"
)

// ErrInvalidBaseURL is returned when the base URL is not absolute http(s).
var ErrInvalidBaseURL = errors.New("sitemap base url must be an absolute http(s) url")

// StaticPage is a fixed route listed in the sitemap.
type StaticPage struct {
	Path            string
	Priority        float64
	ChangeFrequency string
}

// StaticPages 列出站点的固定页面及其权重。
var StaticPages = []StaticPage{
	{Path: "", Priority: 1.0, ChangeFrequency: ChangeWeekly},
	{Path: "/about", Priority: 0.8, ChangeFrequency: ChangeMonthly},
	{Path: "/contact", Priority: 0.9, ChangeFrequency: ChangeMonthly},
	{Path: "/request-service", Priority: 0.9, ChangeFrequency: ChangeMonthly},
	{Path: "/services", Priority: 0.9, ChangeFrequency: ChangeWeekly},
	{Path: "/reviews", Priority: 0.7, ChangeFrequency: ChangeWeekly},
	{Path: "/faq", Priority: 0.6, ChangeFrequency: ChangeMonthly},
	{Path: "/estimate", Priority: 0.8, ChangeFrequency: ChangeMonthly},
	{Path: "/book-service", Priority: 0.9, ChangeFrequency: ChangeMonthly},
	{Path: "/cities-served", Priority: 0.8, ChangeFrequency: ChangeMonthly},
	{Path: "/privacy-policy", Priority: 0.3, ChangeFrequency: ChangeYearly},
	{Path: "/terms-of-service", Priority: 0.3, ChangeFrequency: ChangeYearly},
}

const (
	cityPriority    = 0.7
	servicePriority = 0.8
	pagePriority    = 0.6
)

// Entry is one URL record of the sitemap.
type Entry struct {
	URL             string
	LastModified    time.Time
	ChangeFrequency string
	Priority        float64
}

// BuildSitemap flattens the static pages and the CMS documents into entries.
// Documents without a slug, services without a category and company pages
// shadowed by a fixed route are skipped.
func BuildSitemap(baseURL string, now time.Time, docs content.SitemapDocuments) ([]Entry, error) {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	now = now.UTC()

	entries := make([]Entry, 0, len(StaticPages)+len(docs.Cities)+len(docs.Services)+len(docs.Pages))
	add := func(path string, modified *time.Time, freq string, priority float64) error {
		loc := base + path
		parsed, err := url.Parse(loc)
		if err != nil || !parsed.IsAbs() || parsed.Host == "" {
			return fmt.Errorf("invalid sitemap url %q", loc)
		}
		last := now
		if modified != nil && !modified.IsZero() {
			last = modified.UTC()
		}
		entries = append(entries, Entry{URL: loc, LastModified: last, ChangeFrequency: freq, Priority: priority})
		return nil
	}

	for _, page := range StaticPages {
		if err := add(page.Path, nil, page.ChangeFrequency, page.Priority); err != nil {
			return nil, err
		}
	}
	for _, city := range docs.Cities {
		slug := strings.TrimSpace(city.Slug)
		if slug == "" {
			continue
		}
		if err := add("/cities-served/"+url.PathEscape(slug), city.UpdatedAt, ChangeMonthly, cityPriority); err != nil {
			return nil, err
		}
	}
	for _, service := range docs.Services {
		slug := strings.TrimSpace(service.Slug)
		category := strings.TrimSpace(service.Category)
		if slug == "" || category == "" {
			continue
		}
		path := "/services/" + url.PathEscape(category) + "/" + url.PathEscape(slug)
		if err := add(path, service.UpdatedAt, ChangeMonthly, servicePriority); err != nil {
			return nil, err
		}
	}
	static := make(map[string]bool, len(StaticPages))
	for _, page := range StaticPages {
		static[page.Path] = true
	}
	for _, page := range docs.Pages {
		slug := strings.TrimSpace(page.Slug)
		if !content.ValidPageSlug(slug) || static["/"+slug] || ReservedPageSlug(slug) {
			continue
		}
		if err := add("/"+slug, page.UpdatedAt, ChangeMonthly, pagePriority); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// reservedSlugs are first path segments owned by fixed routes.
var reservedSlugs = map[string]bool{
	"services": true, "cities-served": true, "recent-projects": true,
	"admin": true, "api": true, "static": true, "metrics": true, "ping": true,
}

// ReservedPageSlug reports whether a company page slug would collide with a
// fixed route and therefore never be served.
func ReservedPageSlug(slug string) bool {
	return reservedSlugs[slug]
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	parsed, err := url.Parse(trimmed)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", ErrInvalidBaseURL
	}
	return trimmed, nil
}

type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// WriteXML writes the entries as a sitemaps.org urlset document.
func WriteXML(w io.Writer, entries []Entry) error {
	set := xmlURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, entry := range entries {
		item := xmlURL{Loc: entry.URL, ChangeFreq: entry.ChangeFrequency}
		if !entry.LastModified.IsZero() {
			item.LastMod = entry.LastModified.UTC().Format(time.RFC3339)
		}
		if entry.Priority > 0 {
			item.Priority = strconv.FormatFloat(entry.Priority, 'f', 1, 64)
		}
		set.URLs = append(set.URLs, item)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	return enc.Flush()
}

package seo

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image"
	"image/png"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/dfwhvac/internal/content"
)

func ptrTime(t time.Time) *time.Time { return &t }

func TestBuildSitemapOneEntryPerPageAndDocument(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	cities := []content.SitemapDocument{
		{Slug: "coppell", UpdatedAt: &updated},
		{Slug: "plano"},
	}
	services := []content.SitemapDocument{
		{Slug: "air-conditioning", Category: "residential"},
		{Slug: "commercial-heating", Category: "commercial", UpdatedAt: ptrTime(updated)},
		{Slug: "orphan"},
		{Category: "residential"},
	}

	entries, err := BuildSitemap("https://dfwhvac.com/", now, content.SitemapDocuments{Cities: cities, Services: services})
	if err != nil {
		t.Fatalf("BuildSitemap returned error: %v", err)
	}
	if want := len(StaticPages) + 2 + 2; len(entries) != want {
		t.Fatalf("expected %d entries, got %d", want, len(entries))
	}

	seen := map[string]bool{}
	for _, entry := range entries {
		u, err := url.Parse(entry.URL)
		if err != nil || !u.IsAbs() || u.Host != "dfwhvac.com" {
			t.Fatalf("expected absolute url, got %q", entry.URL)
		}
		if seen[entry.URL] {
			t.Fatalf("duplicate url %q", entry.URL)
		}
		seen[entry.URL] = true
	}

	if entries[0].URL != "https://dfwhvac.com" || entries[0].Priority != 1.0 {
		t.Fatalf("unexpected home entry %#v", entries[0])
	}
	city := entries[len(StaticPages)]
	if city.URL != "https://dfwhvac.com/cities-served/coppell" || !city.LastModified.Equal(updated) || city.Priority != 0.7 {
		t.Fatalf("unexpected city entry %#v", city)
	}
	if got := entries[len(StaticPages)+1].LastModified; !got.Equal(now) {
		t.Fatalf("expected now for missing updatedAt, got %v", got)
	}
	svc := entries[len(entries)-2]
	if svc.URL != "https://dfwhvac.com/services/residential/air-conditioning" || svc.ChangeFrequency != ChangeMonthly || svc.Priority != 0.8 {
		t.Fatalf("unexpected service entry %#v", svc)
	}
}

func TestBuildSitemapListsCompanyPages(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	pages := []content.SitemapDocument{
		{Slug: "financing", UpdatedAt: &updated},
		{Slug: "about"},
		{Slug: "services"},
		{Slug: "Bad Slug"},
		{Slug: ""},
	}

	entries, err := BuildSitemap("https://dfwhvac.com", now, content.SitemapDocuments{Pages: pages})
	if err != nil {
		t.Fatalf("BuildSitemap returned error: %v", err)
	}
	if want := len(StaticPages) + 1; len(entries) != want {
		t.Fatalf("expected %d entries, got %d", want, len(entries))
	}
	page := entries[len(entries)-1]
	if page.URL != "https://dfwhvac.com/financing" || !page.LastModified.Equal(updated) || page.Priority != 0.6 || page.ChangeFrequency != ChangeMonthly {
		t.Fatalf("unexpected company page entry %#v", page)
	}
}

func TestBuildSitemapRejectsRelativeBase(t *testing.T) {
	for _, base := range []string{"", "dfwhvac.com", "ftp://dfwhvac.com"} {
		if _, err := BuildSitemap(base, time.Now(), content.SitemapDocuments{}); !errors.Is(err, ErrInvalidBaseURL) {
			t.Fatalf("base %q: expected ErrInvalidBaseURL, got %v", base, err)
		}
	}
}

func TestWriteXML(t *testing.T) {
	entries, err := BuildSitemap("https://dfwhvac.com", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), content.SitemapDocuments{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteXML(&buf, entries); err != nil {
		t.Fatalf("WriteXML returned error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") {
		t.Fatalf("expected xml header, got %q", out[:20])
	}
	if !strings.Contains(out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`) {
		t.Fatalf("expected sitemap namespace in %s", out)
	}
	if !strings.Contains(out, "<lastmod>2025-01-02T03:04:05Z</lastmod>") || !strings.Contains(out, "<priority>0.3</priority>") {
		t.Fatalf("unexpected xml body %s", out)
	}

	var parsed xmlURLSet
	if err := xml.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid xml: %v", err)
	}
	if len(parsed.URLs) != len(StaticPages) {
		t.Fatalf("expected %d urls, got %d", len(StaticPages), len(parsed.URLs))
	}
}

func TestRobots(t *testing.T) {
	out := Robots("https://dfwhvac.com/")
	for _, want := range []string{"User-Agent: *", "Allow: /", "Disallow: /api/", "Disallow: /admin/", "Sitemap: https://dfwhvac.com/sitemap.xml"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in robots output:\n%s", want, out)
		}
	}
}

func TestParseAddressAndHours(t *testing.T) {
	addr := ParseAddress("556 S Coppell Rd Ste 103, Coppell, TX 75019")
	if addr.StreetAddress != "556 S Coppell Rd Ste 103" || addr.AddressLocality != "Coppell" || addr.AddressRegion != "TX" || addr.PostalCode != "75019" {
		t.Fatalf("unexpected address %#v", addr)
	}

	hours := ParseOpeningHours(content.FallbackCompanyInfo().BusinessHours)
	if len(hours) != 6 {
		t.Fatalf("expected six open days, got %d", len(hours))
	}
	if hours[5].DayOfWeek != "Saturday" || hours[5].Opens != "8AM" || hours[5].Closes != "1PM" {
		t.Fatalf("unexpected saturday hours %#v", hours[5])
	}
}

func TestJSONLDBlocks(t *testing.T) {
	company := content.FallbackCompanyInfo()

	business := LocalBusiness(company, "https://dfwhvac.com")
	if business.Type != "HVACBusiness" || business.AggregateRating.ReviewCount != "118" || business.AggregateRating.RatingValue != "5" {
		t.Fatalf("unexpected business block %#v", business)
	}
	if len(business.AreaServed) != len(company.ServiceAreas) {
		t.Fatalf("expected every service area, got %d", len(business.AreaServed))
	}

	review := Review(company, 131)
	if review.AggregateRating.ReviewCount != "131" {
		t.Fatalf("expected override review count, got %q", review.AggregateRating.ReviewCount)
	}

	if FAQPage(nil) != nil {
		t.Fatal("expected nil faq block for no questions")
	}
	faq := FAQPage([]content.FAQ{{Question: "Q</script>", Answer: "A"}})
	js, err := Marshal(faq)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if strings.Contains(string(js), "</script>") {
		t.Fatalf("expected html-escaped json, got %s", js)
	}

	blocks := MarshalAll(business, FAQPage(nil), nil)
	if len(blocks) != 1 {
		t.Fatalf("expected nil blocks skipped, got %d", len(blocks))
	}
}

func TestBuildPageMetadata(t *testing.T) {
	meta := BuildPageMetadata("https://dfwhvac.com/", "Contact | DFW HVAC", "Call us", "contact", "")
	if meta.Canonical != "https://dfwhvac.com/contact" {
		t.Fatalf("unexpected canonical %q", meta.Canonical)
	}
	if meta.Image.URL != "https://dfwhvac.com/static/images/dfwhvac-og.png" || meta.Image.Width != 1200 || meta.Image.Height != 630 {
		t.Fatalf("unexpected og image %#v", meta.Image)
	}
	if home := BuildPageMetadata("https://dfwhvac.com", "Home", "", "/", ""); home.Canonical != "https://dfwhvac.com" {
		t.Fatalf("unexpected home canonical %q", home.Canonical)
	}
}

func TestImageSizerReadsStaticFiles(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 640, 320))); err != nil {
		t.Fatal(err)
	}
	files := fstest.MapFS{
		"images/hero.png": &fstest.MapFile{Data: buf.Bytes()},
	}

	sizer := NewImageSizer(files, "/static")
	w, h, ok := sizer.Dimensions("/static/images/hero.png")
	if !ok || w != 640 || h != 320 {
		t.Fatalf("expected 640x320, got %dx%d ok=%v", w, h, ok)
	}

	if w, h, ok := sizer.Dimensions("/static/images/missing.webp"); ok || w != DefaultOGWidth || h != DefaultOGHeight {
		t.Fatalf("expected defaults for missing file, got %dx%d ok=%v", w, h, ok)
	}
	if _, _, ok := sizer.Dimensions("/static/../../etc/passwd"); ok {
		t.Fatal("expected paths outside root to be rejected")
	}

	builder := MetadataBuilder{BaseURL: "https://dfwhvac.com", SiteName: "Acme Air", Images: sizer}
	meta := builder.Build("Home", "", "/", "/static/images/hero.png")
	if meta.Image.Width != 640 || meta.SiteName != "Acme Air" {
		t.Fatalf("unexpected builder metadata %#v", meta)
	}
}

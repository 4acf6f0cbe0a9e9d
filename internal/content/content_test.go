package content

import (
	"errors"
	"strings"
	"testing"
)

func TestCityPageWithDefaults(t *testing.T) {
	city := CityPage{CityName: "Coppell", Slug: "coppell", ZipCodes: []string{"75019"}, Headline: "Coppell's HVAC Team"}
	got := city.WithDefaults(FallbackCompanyInfo())

	if got.Headline != "Coppell's HVAC Team" {
		t.Fatalf("expected cms headline kept, got %q", got.Headline)
	}
	if got.Subheadline != "Professional Heating & Air Conditioning for Coppell Residents" {
		t.Fatalf("unexpected subheadline %q", got.Subheadline)
	}
	if got.MetaTitle != "HVAC Services in Coppell, TX | DFW HVAC" {
		t.Fatalf("unexpected meta title %q", got.MetaTitle)
	}
	if !strings.HasSuffix(got.MetaDescription, "Serving zip codes: 75019.") {
		t.Fatalf("expected zip codes in meta description, got %q", got.MetaDescription)
	}
	if len(got.FeaturedServices) != 4 {
		t.Fatalf("expected default featured services, got %d", len(got.FeaturedServices))
	}
	if city.Subheadline != "" {
		t.Fatal("WithDefaults must not modify the receiver")
	}
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	html := string(RenderMarkdown("**Fast** service<script>alert(1)</script>"))
	if !strings.Contains(html, "<strong>Fast</strong>") {
		t.Fatalf("expected markdown rendering, got %q", html)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("expected script to be stripped, got %q", html)
	}
}

func TestLegalPage(t *testing.T) {
	company := FallbackCompanyInfo()
	company.Name = "Acme Air"

	page, err := LegalPage("privacy-policy", company)
	if err != nil {
		t.Fatalf("LegalPage returned error: %v", err)
	}
	if page.Title != "Privacy Policy" {
		t.Fatalf("unexpected title %q", page.Title)
	}
	if !strings.Contains(page.Description, "Acme Air") {
		t.Fatalf("expected company name in description, got %q", page.Description)
	}
	body := string(page.Body)
	if !strings.Contains(body, "<h2") || !strings.Contains(body, "(972) 777-2665") {
		t.Fatalf("expected rendered body with phone, got %q", body)
	}
	if strings.Contains(body, "{{") {
		t.Fatalf("expected placeholders to be replaced, got %q", body)
	}
	if page.Updated.IsZero() {
		t.Fatal("expected updated date to be parsed")
	}

	for _, slug := range LegalSlugs() {
		if _, err := LegalPage(slug, company); err != nil {
			t.Fatalf("slug %s failed: %v", slug, err)
		}
	}

	if _, err := LegalPage("../go.mod", company); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound for traversal, got %v", err)
	}
	if _, err := LegalPage("refund-policy", company); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}

func TestSplitFrontMatterWithoutHeader(t *testing.T) {
	meta, body, err := splitFrontMatter("# Hello")
	if err != nil || meta.Title != "" || body != "# Hello" {
		t.Fatalf("unexpected split result meta=%#v body=%q err=%v", meta, body, err)
	}
}

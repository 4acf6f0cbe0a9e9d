package content

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed legal/*.md
var legalFS embed.FS

// ErrPageNotFound is returned for unknown legal page slugs.
var ErrPageNotFound = errors.New("page not found")

// Page is a bundled markdown page.
type Page struct {
	Slug        string
	Title       string
	Description string
	Updated     time.Time
	Body        template.HTML
}

type frontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Updated     string `yaml:"updated"`
}

// LegalSlugs lists the bundled legal pages.
func LegalSlugs() []string {
	return []string{"privacy-policy", "terms-of-service"}
}

// LegalPage renders a bundled page with the company contact details filled in.
func LegalPage(slug string, company CompanyInfo) (*Page, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" || strings.ContainsAny(slug, "/\\.") {
		return nil, ErrPageNotFound
	}

	raw, err := legalFS.ReadFile("legal/" + slug + ".md")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("read page %s: %w", slug, err)
	}

	replacer := strings.NewReplacer(
		"{{company}}", company.Name,
		"{{phone}}", company.DialPhone(),
		"{{email}}", company.Email,
		"{{address}}", company.Address,
	)

	meta, body, err := splitFrontMatter(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse page %s: %w", slug, err)
	}

	page := &Page{
		Slug:        slug,
		Title:       strings.TrimSpace(replacer.Replace(meta.Title)),
		Description: strings.TrimSpace(replacer.Replace(meta.Description)),
		Body:        RenderMarkdown(replacer.Replace(body)),
	}
	if updated, err := time.Parse("2006-01-02", strings.TrimSpace(meta.Updated)); err == nil {
		page.Updated = updated
	}
	return page, nil
}

// splitFrontMatter 拆分 "---" 包裹的 YAML 头和正文；没有头部时整体视为正文。
func splitFrontMatter(text string) (frontMatter, string, error) {
	var meta frontMatter
	if !strings.HasPrefix(text, "---") {
		return meta, text, nil
	}
	parts := strings.SplitN(text, "---", 3)
	if len(parts) != 3 {
		return meta, text, nil
	}
	if err := yaml.Unmarshal([]byte(parts[1]), &meta); err != nil {
		return meta, "", err
	}
	return meta, strings.TrimSpace(parts[2]), nil
}

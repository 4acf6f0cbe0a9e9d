package content

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/dfwhvac/internal/cms"
	"github.com/dfwhvac/internal/logger"
	"github.com/dfwhvac/internal/metrics"
)

// Querier is the read side of the CMS client.
type Querier interface {
	Query(ctx context.Context, groq string, params map[string]any, dst any) error
}

// Store 先查 CMS，查询失败或结果为空时返回内置的静态数据。
// 所有方法都不会返回错误，页面总能渲染。
type Store struct {
	cms     Querier
	log     logger.Logger
	metrics *metrics.Metrics
}

// NewStore builds a store. A nil querier always serves fallbacks.
func NewStore(q Querier, log logger.Logger, m *metrics.Metrics) *Store {
	if log == nil {
		log = logger.NewNop()
	}
	return &Store{cms: q, log: log, metrics: m}
}

// fetch runs a named query into dst and reports whether the CMS answered.
func (s *Store) fetch(ctx context.Context, name string, params map[string]any, dst any) bool {
	if s == nil || s.cms == nil {
		return false
	}
	groq, ok := cms.Queries[name]
	if !ok {
		s.log.Error("unknown cms query", map[string]interface{}{"query": name})
		return false
	}

	err := s.cms.Query(ctx, groq, params, dst)
	switch {
	case err == nil:
		s.metrics.ObserveCMSFetch(name, metrics.OutcomeOK)
		return true
	case errors.Is(err, cms.ErrNotConfigured):
		s.metrics.ObserveCMSFetch(name, metrics.OutcomeFallback)
		return false
	case errors.Is(err, cms.ErrNotFound):
		s.log.Debug("cms returned no document, using fallback", map[string]interface{}{"query": name})
		s.metrics.ObserveCMSFetch(name, metrics.OutcomeFallback)
		return false
	default:
		s.log.Warn("cms fetch failed, using fallback", map[string]interface{}{
			"query": name,
			"error": err,
		})
		s.metrics.ObserveCMSFetch(name, metrics.OutcomeError)
		return false
	}
}

// CompanyInfo merges the CMS document over the fallback field by field.
func (s *Store) CompanyInfo(ctx context.Context) CompanyInfo {
	base := FallbackCompanyInfo()
	var doc CompanyInfo
	if !s.fetch(ctx, cms.QueryCompanyInfo, nil, &doc) {
		return base
	}
	return mergeCompanyInfo(base, doc)
}

func mergeCompanyInfo(base, doc CompanyInfo) CompanyInfo {
	pick := func(value, fallback string) string {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
		return fallback
	}
	out := base
	out.Name = pick(doc.Name, base.Name)
	out.Tagline = pick(doc.Tagline, base.Tagline)
	out.Phone = pick(doc.Phone, base.Phone)
	out.PhoneDisplay = pick(doc.PhoneDisplay, base.PhoneDisplay)
	out.Email = pick(doc.Email, base.Email)
	out.Address = pick(doc.Address, base.Address)
	out.ServiceAddress = pick(doc.ServiceAddress, base.ServiceAddress)
	out.Description = pick(doc.Description, base.Description)
	out.Established = pick(doc.Established, base.Established)
	if doc.GoogleRating > 0 {
		out.GoogleRating = doc.GoogleRating
	}
	if doc.GoogleReviews > 0 {
		out.GoogleReviews = doc.GoogleReviews
	}
	if !doc.BusinessHours.IsZero() {
		out.BusinessHours = doc.BusinessHours
	}
	if len(doc.ServiceAreas) > 0 {
		out.ServiceAreas = doc.ServiceAreas
	}
	return out
}

// SiteSettings returns the CMS settings with empty fields defaulted.
func (s *Store) SiteSettings(ctx context.Context) SiteSettings {
	base := FallbackSiteSettings()
	var doc SiteSettings
	if !s.fetch(ctx, cms.QuerySiteSettings, nil, &doc) {
		return base
	}

	fill := func(value *string, fallback string) {
		if strings.TrimSpace(*value) == "" {
			*value = fallback
		}
	}
	fill(&doc.Title, base.Title)
	fill(&doc.LogoTagline, base.LogoTagline)
	fill(&doc.SiteNameSuffix, base.SiteNameSuffix)
	fill(&doc.DefaultMetaDescription, base.DefaultMetaDescription)
	fill(&doc.HeaderTagline, base.HeaderTagline)
	fill(&doc.HeaderCtaText, base.HeaderCtaText)
	fill(&doc.LeadFormTitle, base.LeadFormTitle)
	fill(&doc.LeadFormDescription, base.LeadFormDescription)
	fill(&doc.LeadFormButtonText, base.LeadFormButtonText)
	fill(&doc.LeadFormSuccessMessage, base.LeadFormSuccessMessage)
	fill(&doc.LeadFormTrustSignals, base.LeadFormTrustSignals)
	fill(&doc.FooterTagline, base.FooterTagline)
	if len(doc.MainNavigation) == 0 {
		doc.MainNavigation = base.MainNavigation
	}
	return doc
}

// Services lists service cards; an empty category lists every category.
func (s *Store) Services(ctx context.Context, category string) []Service {
	category = strings.TrimSpace(category)

	var docs []Service
	var ok bool
	if category == "" {
		ok = s.fetch(ctx, cms.QueryServices, nil, &docs)
	} else {
		ok = s.fetch(ctx, cms.QueryServicesCategory, map[string]any{"category": category}, &docs)
	}
	if ok {
		docs = filterServices(docs)
	}
	if !ok || len(docs) == 0 {
		return FallbackServices(category)
	}
	return docs
}

func filterServices(docs []Service) []Service {
	out := docs[:0]
	for _, doc := range docs {
		if strings.TrimSpace(doc.Slug) == "" || strings.TrimSpace(doc.Category) == "" {
			continue
		}
		out = append(out, doc)
	}
	return out
}

// Service returns one detail page; false means the page does not exist.
func (s *Store) Service(ctx context.Context, category, slug string) (*Service, bool) {
	category = strings.TrimSpace(category)
	slug = strings.TrimSpace(slug)
	if category == "" || slug == "" {
		return nil, false
	}

	var doc Service
	if s.fetch(ctx, cms.QueryServiceBySlug, map[string]any{"category": category, "slug": slug}, &doc) && doc.Title != "" {
		if doc.Slug == "" {
			doc.Slug = slug
		}
		if doc.Category == "" {
			doc.Category = category
		}
		return &doc, true
	}

	if detail, ok := FallbackServiceDetail(category, slug); ok {
		return detail, true
	}
	// 没有详情数据的卡片仍然可以渲染基础页面。
	for _, card := range FallbackServices(category) {
		if card.Slug == slug {
			card := card
			return &card, true
		}
	}
	return nil, false
}

// Testimonials drops invalid entries; nothing left means fallback.
func (s *Store) Testimonials(ctx context.Context) []Testimonial {
	var docs []Testimonial
	if !s.fetch(ctx, cms.QueryTestimonials, nil, &docs) {
		return FallbackTestimonials()
	}
	valid := make([]Testimonial, 0, len(docs))
	for _, doc := range docs {
		if doc.Valid() {
			valid = append(valid, doc)
		}
	}
	if len(valid) == 0 {
		return FallbackTestimonials()
	}
	return valid
}

// CityPages lists published city pages. No fallback exists: the index
// page falls back to the company service areas.
func (s *Store) CityPages(ctx context.Context) []CityPage {
	var docs []CityPage
	if !s.fetch(ctx, cms.QueryCityPages, nil, &docs) {
		return nil
	}
	out := make([]CityPage, 0, len(docs))
	for _, doc := range docs {
		if strings.TrimSpace(doc.Slug) == "" || strings.TrimSpace(doc.CityName) == "" {
			continue
		}
		out = append(out, doc)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].CityName < out[j].CityName
	})
	return out
}

// CityPage returns a published city page by slug.
func (s *Store) CityPage(ctx context.Context, slug string) (*CityPage, bool) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, false
	}
	var doc CityPage
	if !s.fetch(ctx, cms.QueryCityPageBySlug, map[string]any{"slug": slug}, &doc) || doc.CityName == "" {
		return nil, false
	}
	if doc.Slug == "" {
		doc.Slug = slug
	}
	return &doc, true
}

// OtherCities lists up to eight other published cities.
func (s *Store) OtherCities(ctx context.Context, currentSlug string) []CityPage {
	var docs []CityPage
	if !s.fetch(ctx, cms.QueryOtherCities, map[string]any{"currentSlug": currentSlug}, &docs) {
		return nil
	}
	out := make([]CityPage, 0, len(docs))
	for _, doc := range docs {
		if doc.Slug == "" || doc.Slug == currentSlug {
			continue
		}
		out = append(out, doc)
		if len(out) == 8 {
			break
		}
	}
	return out
}

// FAQs returns the published FAQs or the bundled defaults.
func (s *Store) FAQs(ctx context.Context) []FAQ {
	var docs []FAQ
	if !s.fetch(ctx, cms.QueryFAQs, nil, &docs) {
		return FallbackFAQs()
	}
	out := make([]FAQ, 0, len(docs))
	for _, doc := range docs {
		if strings.TrimSpace(doc.Question) == "" {
			continue
		}
		out = append(out, doc)
	}
	if len(out) == 0 {
		return FallbackFAQs()
	}
	return out
}

// SitemapDocuments returns the CMS slugs listed in the sitemap; failures
// yield empty lists.
func (s *Store) SitemapDocuments(ctx context.Context) SitemapDocuments {
	var docs SitemapDocuments
	if !s.fetch(ctx, cms.QuerySitemapCities, nil, &docs.Cities) {
		docs.Cities = nil
	}
	if !s.fetch(ctx, cms.QuerySitemapServices, nil, &docs.Services) {
		docs.Services = nil
	}
	if !s.fetch(ctx, cms.QuerySitemapPages, nil, &docs.Pages) {
		docs.Pages = nil
	}
	return docs
}

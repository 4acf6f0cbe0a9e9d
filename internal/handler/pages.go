package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dfwhvac/internal/content"
	"github.com/dfwhvac/internal/db"
	"github.com/dfwhvac/internal/faq"
	"github.com/dfwhvac/internal/format"
	"github.com/dfwhvac/internal/seo"
	"github.com/dfwhvac/internal/service"
	"github.com/dfwhvac/internal/view"
)

// cityLink is an entry of the cities index; Href is empty for areas without
// a landing page.
type cityLink struct {
	Name string
	Href string
}

// ShowHome 渲染首页：服务卡片、评价轮播与服务区域。
func (a *API) ShowHome(c *gin.Context) {
	ctx := c.Request.Context()
	home := a.store.HomePage(ctx)
	services := a.store.Services(ctx, "")
	carousel := view.NewCarousel(a.store.Testimonials(ctx), 0, home.MaxTestimonials)

	a.renderHTML(c, http.StatusOK, "home.html", pageHead{
		Title:       home.MetaTitle,
		Description: home.MetaDescription,
		Path:        "/",
	}, gin.H{
		"home":        home,
		"residential": filterCategory(services, content.CategoryResidential),
		"commercial":  filterCategory(services, content.CategoryCommercial),
		"slide":       carousel.Slide(parseInt(c.Query("slide"), 0)),
		"cities":      a.cityLinks(c),
	})
}

func filterCategory(services []content.Service, category string) []content.Service {
	var out []content.Service
	for _, svc := range services {
		if svc.Category == category {
			out = append(out, svc)
		}
	}
	return out
}

// ShowServices lists every service card by category.
func (a *API) ShowServices(c *gin.Context) {
	ctx := c.Request.Context()
	a.renderHTML(c, http.StatusOK, "services.html", pageHead{
		Title:       "HVAC Services",
		Description: "Residential and commercial heating, air conditioning, maintenance and indoor air quality services across Dallas-Fort Worth.",
		Path:        "/services",
	}, gin.H{
		"residential": a.store.Services(ctx, content.CategoryResidential),
		"commercial":  a.store.Services(ctx, content.CategoryCommercial),
	})
}

// ShowService renders one service detail page.
func (a *API) ShowService(c *gin.Context) {
	category := strings.ToLower(c.Param("category"))
	slug := strings.ToLower(c.Param("slug"))

	svc, ok := a.store.Service(c.Request.Context(), category, slug)
	if !ok {
		a.NotFound(c)
		return
	}

	faqs := make([]content.FAQ, 0, len(svc.FAQs))
	for _, qa := range svc.FAQs {
		faqs = append(faqs, content.FAQ{Question: qa.Question, Answer: qa.Answer})
	}

	description := svc.HeroDescription
	if description == "" {
		description = svc.Description
	}
	a.renderHTML(c, http.StatusOK, "service_detail.html", pageHead{
		Title:       svc.Title,
		Description: format.GenerateExcerpt(description, format.DefaultExcerptLength),
		Path:        svc.Path(),
		JSONLD:      []any{seo.FAQPage(faqs)},
	}, gin.H{
		"service": svc,
		"related": a.relatedServices(c, svc),
	})
}

func (a *API) relatedServices(c *gin.Context, current *content.Service) []content.Service {
	var out []content.Service
	for _, svc := range a.store.Services(c.Request.Context(), current.Category) {
		if svc.Slug == current.Slug {
			continue
		}
		out = append(out, svc)
		if len(out) == 3 {
			break
		}
	}
	return out
}

// cityLinks 优先使用 CMS 中已发布的城市页，没有时退回公司服务区域列表。
func (a *API) cityLinks(c *gin.Context) []cityLink {
	pages := a.store.CityPages(c.Request.Context())
	if len(pages) > 0 {
		links := make([]cityLink, 0, len(pages))
		for _, page := range pages {
			links = append(links, cityLink{Name: page.CityName, Href: page.Path()})
		}
		return links
	}
	areas := a.chrome(c).Company.ServiceAreas
	links := make([]cityLink, 0, len(areas))
	for _, area := range areas {
		links = append(links, cityLink{Name: area})
	}
	return links
}

// ShowCities lists the served cities.
func (a *API) ShowCities(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "cities.html", pageHead{
		Title:       "Cities We Serve",
		Description: "HVAC repair, installation and maintenance across the Dallas-Fort Worth metroplex.",
		Path:        "/cities-served",
	}, gin.H{
		"cities": a.cityLinks(c),
	})
}

// ShowCity renders a city landing page; unpublished cities are 404.
func (a *API) ShowCity(c *gin.Context) {
	ctx := c.Request.Context()
	slug := strings.ToLower(c.Param("slug"))

	page, ok := a.store.CityPage(ctx, slug)
	if !ok {
		a.NotFound(c)
		return
	}
	city := page.WithDefaults(a.chrome(c).Company)

	a.renderHTML(c, http.StatusOK, "city.html", pageHead{
		Title:       city.MetaTitle,
		Description: city.MetaDescription,
		Path:        city.Path(),
	}, gin.H{
		"city":   city,
		"others": a.store.OtherCities(ctx, city.Slug),
	})
}

// faqSection is one block of the FAQ page.
type faqSection struct {
	Key        string
	Title      string
	Categories []faq.Category
}

// ShowFAQ renders the grouped accordion. ?open=<id> expands questions
// without scripts.
func (a *API) ShowFAQ(c *gin.Context) {
	ctx := c.Request.Context()
	page := a.store.FAQPageCopy(ctx)
	faqs := a.store.FAQs(ctx)
	categories := faq.Group(faqs)
	accordion := faq.NewAccordion(c.QueryArray("open")...)

	var sections []faqSection
	for _, s := range []struct{ key, title string }{
		{faq.SectionResidential, "Residential"},
		{faq.SectionCommercial, "Commercial"},
		{faq.SectionOther, "More Questions"},
	} {
		if cats := faq.InSection(categories, s.key); len(cats) > 0 {
			sections = append(sections, faqSection{Key: s.key, Title: s.title, Categories: cats})
		}
	}

	a.renderHTML(c, http.StatusOK, "faq.html", pageHead{
		Title:       page.MetaTitle,
		Description: page.MetaDescription,
		Path:        "/faq",
		JSONLD:      []any{seo.FAQPage(faqs)},
	}, gin.H{
		"page":      page,
		"sections":  sections,
		"accordion": accordion,
	})
}

// reviewsPageSize is how many review cards one "load more" step adds.
const reviewsPageSize = 9

// ShowReviews renders the testimonial carousel and the review list.
// ?slide=n selects a slide, ?show=n expands the list without scripts.
func (a *API) ShowReviews(c *gin.Context) {
	ctx := c.Request.Context()
	page := a.store.ReviewsPage(ctx)
	testimonials := a.store.Testimonials(ctx)
	carousel := view.NewCarousel(testimonials, 0, 0)
	company := a.chrome(c).Company

	shown := parsePositiveInt(c.Query("show"), reviewsPageSize)
	if shown > len(testimonials) {
		shown = len(testimonials)
	}
	more := 0
	if shown < len(testimonials) {
		more = shown + reviewsPageSize
	}

	a.renderHTML(c, http.StatusOK, "reviews.html", pageHead{
		Title:       page.MetaTitle,
		Description: page.MetaDescription,
		Path:        "/reviews",
		JSONLD:      []any{seo.Review(company, 0)},
	}, gin.H{
		"page":         page,
		"slide":        carousel.Slide(parseInt(c.Query("slide"), 0)),
		"testimonials": testimonials[:shown],
		"showing":      page.ShowingText(shown, len(testimonials)),
		"more":         more,
	})
}

// ShowAbout renders the company story.
func (a *API) ShowAbout(c *gin.Context) {
	ctx := c.Request.Context()
	page := a.store.AboutPage(ctx)
	company := a.chrome(c).Company

	data := gin.H{
		"page":       page,
		"statistics": page.LiveStatistics(company),
		"cities":     a.cityLinks(c),
	}
	if page.ShowTestimonials {
		data["slide"] = view.NewCarousel(a.store.Testimonials(ctx), 0, 0).Slide(parseInt(c.Query("slide"), 0))
	}

	description := page.MetaDescription
	if description == "" {
		description = company.Description
	}
	a.renderHTML(c, http.StatusOK, "about.html", pageHead{
		Title:       page.MetaTitle,
		Description: description,
		Path:        "/about",
	}, data)
}

// leadPage 描述三种线索表单页面的差异。
type leadPage struct {
	LeadType    string
	Path        string
	Title       string
	Description string
}

var leadPages = map[string]leadPage{
	db.LeadTypeService: {
		LeadType:    db.LeadTypeService,
		Path:        "/request-service",
		Title:       "Request Service",
		Description: "Book heating or air conditioning service. We'll call you within 2 business hours.",
	},
	db.LeadTypeEstimate: {
		LeadType:    db.LeadTypeEstimate,
		Path:        "/estimate",
		Title:       "Get a Free Estimate",
		Description: "Request a free, no-obligation estimate for a new heating or cooling system.",
	},
	db.LeadTypeContact: {
		LeadType:    db.LeadTypeContact,
		Path:        "/contact",
		Title:       "Contact Us",
		Description: "Questions about your heating or cooling system? Send us a message or give us a call.",
	},
}

// ShowLeadForm renders the form page of one lead type. The contact page
// takes its copy from the CMS.
func (a *API) ShowLeadForm(leadType string) gin.HandlerFunc {
	page := leadPages[service.NormalizeLeadType(leadType)]
	return func(c *gin.Context) {
		form := page
		head := pageHead{Title: page.Title, Description: page.Description, Path: page.Path}
		data := gin.H{}
		if form.LeadType == db.LeadTypeContact {
			contact := a.store.ContactPage(c.Request.Context())
			form.Title = contact.HeroTitle
			form.Description = contact.HeroDescription
			head.Title = contact.MetaTitle
			head.Description = contact.MetaDescription
			data["contact"] = contact
		}
		data["form"] = form
		a.renderHTML(c, http.StatusOK, "lead_form.html", head, data)
	}
}

// ShowLegal renders a bundled legal page.
func (a *API) ShowLegal(slug string) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := content.LegalPage(slug, a.chrome(c).Company)
		if err != nil {
			if !errors.Is(err, content.ErrPageNotFound) {
				c.Error(err)
			}
			a.NotFound(c)
			return
		}
		a.renderHTML(c, http.StatusOK, "legal.html", pageHead{
			Title:       page.Title,
			Description: page.Description,
			Path:        "/" + page.Slug,
		}, gin.H{
			"page": page,
		})
	}
}

// RedirectRecentProjects keeps the retired projects URL alive.
func (a *API) RedirectRecentProjects(c *gin.Context) {
	c.Redirect(http.StatusFound, "/reviews")
}

// NotFound renders the 404 page with the normal header and footer.
func (a *API) NotFound(c *gin.Context) {
	a.renderHTML(c, http.StatusNotFound, "not_found.html", pageHead{
		Title: "Page Not Found",
		Path:  c.Request.URL.Path,
	}, nil)
}

package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dfwhvac/internal/db"
	"github.com/dfwhvac/internal/format"
	"github.com/dfwhvac/internal/seo"
	"github.com/dfwhvac/internal/view"
)

// ShowCompanyPage serves editor pages at /{slug}. It is the NoRoute
// handler: fixed routes always win, anything else that is not a published
// page gets the 404 page.
func (a *API) ShowCompanyPage(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		a.NotFound(c)
		return
	}
	slug := strings.Trim(c.Request.URL.Path, "/")
	if strings.Contains(slug, "/") || seo.ReservedPageSlug(slug) {
		a.NotFound(c)
		return
	}

	ctx := c.Request.Context()
	page, ok := a.store.CompanyPage(ctx, slug)
	if !ok {
		a.NotFound(c)
		return
	}
	company := a.chrome(c).Company

	title := page.MetaTitle
	if title == "" {
		title = page.Title
	}
	description := page.MetaDescription
	if description == "" {
		description = page.HeroDescription
	}
	if description == "" {
		description = page.Title + " - " + company.Name + " serving Dallas-Fort Worth."
	}

	data := gin.H{"page": page}
	if page.ShowTestimonials {
		data["slide"] = view.NewCarousel(a.store.Testimonials(ctx), 0, 0).Slide(parseInt(c.Query("slide"), 0))
	}
	a.renderHTML(c, http.StatusOK, "company_page.html", pageHead{
		Title:       title,
		Description: format.GenerateExcerpt(description, format.DefaultExcerptLength),
		Path:        page.Path(),
	}, data)
}

// bookingOption is a service card of the booking page.
type bookingOption struct {
	Title       string
	Description string
	Icon        string
	Urgent      bool
}

var bookingOptions = []bookingOption{
	{Title: "Priority Service", Description: "Fast repairs for heating and cooling systems", Icon: "settings", Urgent: true},
	{Title: "Air Conditioning", Description: "AC repair, maintenance, and installation services", Icon: "snowflake"},
	{Title: "Heating Systems", Description: "Furnace repair, heat pump service, and installation", Icon: "flame"},
	{Title: "Maintenance", Description: "Preventive maintenance and system tune-ups", Icon: "wrench"},
}

var bookingCities = []string{
	"Dallas", "Fort Worth", "Arlington", "Plano", "Irving", "Frisco",
	"Carrollton", "Richardson", "Lewisville", "Grapevine", "Southlake", "Coppell",
}

// ShowBookService renders the booking page: the estimate form next to the
// online scheduler button.
func (a *API) ShowBookService(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "book_service.html", pageHead{
		Title:       "Book HVAC Service | DFW HVAC | Dallas-Fort Worth",
		Description: "Schedule professional HVAC service with Dallas-Fort Worth's most trusted heating and cooling experts. Fast, reliable service.",
		Path:        "/book-service",
	}, gin.H{
		"form":          leadPages[db.LeadTypeEstimate],
		"options":       bookingOptions,
		"bookingCities": bookingCities,
		"widgetURL":     a.opts.BookingWidgetURL,
	})
}

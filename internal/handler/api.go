package handler

import (
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/dfwhvac/internal/content"
	"github.com/dfwhvac/internal/format"
	"github.com/dfwhvac/internal/logger"
	"github.com/dfwhvac/internal/seo"
	"github.com/dfwhvac/internal/service"
)

// Options carries the request independent settings of the handlers.
type Options struct {
	BaseURL    string
	CronSecret string
	// StaticFiles 用于读取 og 图片尺寸，为空时使用默认尺寸。
	StaticFiles fs.FS
	// BookingWidgetURL is the online scheduler script; empty hides the widget.
	BookingWidgetURL string
}

// Deps bundles the collaborators of the handler set.
type Deps struct {
	Store   *content.Store
	Leads   *service.LeadService
	Reviews *service.ReviewService
	Admins  *service.AdminService
	Log     logger.Logger
	Options Options
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	store   *content.Store
	leads   *service.LeadService
	reviews *service.ReviewService
	admins  *service.AdminService
	meta    seo.MetadataBuilder
	log     logger.Logger
	opts    Options
	now     func() time.Time
}

// chromeViewModel 是每个页面头部与页脚共用的数据。
type chromeViewModel struct {
	Company      content.CompanyInfo
	Settings     content.SiteSettings
	PhoneDisplay string
	TelHref      string
	Year         int
}

const chromeContextKey = "__site_chrome"

// NewAPI constructs a handler set with shared services.
func NewAPI(deps Deps) *API {
	log := deps.Log
	if log == nil {
		log = logger.NewNop()
	}
	store := deps.Store
	if store == nil {
		store = content.NewStore(nil, log, nil)
	}
	baseURL := strings.TrimRight(strings.TrimSpace(deps.Options.BaseURL), "/")
	deps.Options.BaseURL = baseURL

	var sizer *seo.ImageSizer
	if deps.Options.StaticFiles != nil {
		sizer = seo.NewImageSizer(deps.Options.StaticFiles, "/static")
	}

	return &API{
		store:   store,
		leads:   deps.Leads,
		reviews: deps.Reviews,
		admins:  deps.Admins,
		meta:    seo.MetadataBuilder{BaseURL: baseURL, Images: sizer},
		log:     log,
		opts:    deps.Options,
		now:     time.Now,
	}
}

func (a *API) chrome(c *gin.Context) chromeViewModel {
	if cached, exists := c.Get(chromeContextKey); exists {
		if view, ok := cached.(chromeViewModel); ok {
			return view
		}
	}

	ctx := c.Request.Context()
	company := a.store.CompanyInfo(ctx)
	settings := a.store.SiteSettings(ctx)
	dial := company.DialPhone()

	view := chromeViewModel{
		Company:      company,
		Settings:     settings,
		PhoneDisplay: format.FormatPhoneNumber(dial),
		TelHref:      format.TelHref(dial),
		Year:         a.now().Year(),
	}
	c.Set(chromeContextKey, view)
	return view
}

// pageTitle appends the site name suffix unless the title already has it.
func pageTitle(title string, view chromeViewModel) string {
	suffix := strings.TrimSpace(view.Settings.SiteNameSuffix)
	if suffix == "" {
		suffix = view.Company.Name
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return suffix
	}
	if strings.Contains(title, suffix) {
		return title
	}
	return title + " | " + suffix
}

// pageHead 描述页面的 <head> 信息与额外的 JSON-LD 块。
type pageHead struct {
	Title       string
	Description string
	Path        string
	Image       string
	JSONLD      []any
}

func (a *API) renderHTML(c *gin.Context, status int, name string, head pageHead, data gin.H) {
	view := a.chrome(c)

	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	description := strings.TrimSpace(head.Description)
	if description == "" {
		description = view.Settings.DefaultMetaDescription
	}
	if _, exists := payload["meta"]; !exists {
		meta := a.meta.Build(pageTitle(head.Title, view), description, head.Path, head.Image)
		meta.SiteName = view.Company.Name
		payload["meta"] = meta
	}

	blocks := append([]any{seo.LocalBusiness(view.Company, a.opts.BaseURL)}, head.JSONLD...)
	payload["jsonLD"] = seo.MarshalAll(blocks...)

	payload["company"] = view.Company
	payload["settings"] = view.Settings
	payload["phoneDisplay"] = view.PhoneDisplay
	// tel: 不在 html/template 默认放行的协议里
	payload["telHref"] = template.URL(view.TelHref)
	payload["year"] = view.Year
	payload["currentPath"] = c.Request.URL.Path
	if _, exists := payload["flash"]; !exists {
		payload["flash"] = a.popFlash(c)
	}

	c.HTML(status, name, payload)
}

// flashMessage is a one-shot toast stored in the session.
type flashMessage struct {
	Kind    string
	Message string
}

const (
	flashKindKey    = "flash_kind"
	flashMessageKey = "flash_message"
)

func (a *API) setFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.Set(flashKindKey, kind)
	session.Set(flashMessageKey, message)
	if err := session.Save(); err != nil {
		a.log.Error("save flash failed", map[string]interface{}{
			"path":  c.Request.URL.Path,
			"kind":  kind,
			"error": err,
		})
	}
}

func (a *API) popFlash(c *gin.Context) *flashMessage {
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return nil
	}
	session := sessions.Default(c)
	message, _ := session.Get(flashMessageKey).(string)
	if message == "" {
		return nil
	}
	kind, _ := session.Get(flashKindKey).(string)
	session.Delete(flashKindKey)
	session.Delete(flashMessageKey)
	if err := session.Save(); err != nil {
		a.log.Warn("clear flash failed", map[string]interface{}{"error": err})
	}
	return &flashMessage{Kind: kind, Message: message}
}

package router

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/dfwhvac/internal/content"
	"github.com/dfwhvac/internal/db"
	"github.com/dfwhvac/internal/handler"
	"github.com/dfwhvac/internal/logger"
	"github.com/dfwhvac/internal/metrics"
	"github.com/dfwhvac/web"
)

const sessionName = "dfwhvac_session"

// Deps 是组装路由所需的依赖。
type Deps struct {
	API           *handler.API
	Log           logger.Logger
	Metrics       *metrics.Metrics
	SessionSecret string
	// StaticDir 为空时使用内嵌的静态资源
	StaticDir    string
	SecureCookie bool
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(deps Deps) (*gin.Engine, error) {
	log := deps.Log
	if log == nil {
		log = logger.NewNop()
	}
	api := deps.API
	if api == nil {
		api = handler.NewAPI(handler.Deps{Log: log})
	}

	r := gin.New()
	r.Use(gin.Recovery(), logger.GinMiddleware(log))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
	}

	// 配置会话中间件
	secret := strings.TrimSpace(deps.SessionSecret)
	if secret == "" {
		secret = "dfwhvac-dev-secret"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 3600,
		HttpOnly: true,
		Secure:   deps.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	// 加载内嵌模板
	tmpl, err := web.Templates(handler.TemplateFuncs())
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	// 静态文件服务
	if dir := strings.TrimSpace(deps.StaticDir); dir != "" {
		r.Static("/static", dir)
	} else {
		r.StaticFS("/static", web.Static())
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// 前台页面
	r.GET("/", api.ShowHome)
	r.GET("/services", api.ShowServices)
	r.GET("/services/:category/:slug", api.ShowService)
	r.GET("/cities-served", api.ShowCities)
	r.GET("/cities-served/:slug", api.ShowCity)
	r.GET("/faq", api.ShowFAQ)
	r.GET("/reviews", api.ShowReviews)
	r.GET("/about", api.ShowAbout)
	r.GET("/book-service", api.ShowBookService)
	r.GET("/recent-projects", api.RedirectRecentProjects)
	for _, slug := range content.LegalSlugs() {
		r.GET("/"+slug, api.ShowLegal(slug))
	}

	// 线索表单：GET 渲染，POST 提交后 303 回到原页面
	forms := map[string]string{
		"/request-service": db.LeadTypeService,
		"/estimate":        db.LeadTypeEstimate,
		"/contact":         db.LeadTypeContact,
	}
	for path, leadType := range forms {
		r.GET(path, api.ShowLeadForm(leadType))
		r.POST(path, api.SubmitLeadForm(leadType))
	}

	r.GET("/sitemap.xml", api.Sitemap)
	r.GET("/robots.txt", api.Robots)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/leads", api.CreateLead)
		apiGroup.GET("/google-reviews", api.GetGoogleReviews)
		// 定时任务平台使用 GET，手动触发使用 POST
		apiGroup.GET("/cron/sync-reviews", api.SyncReviews)
		apiGroup.POST("/cron/sync-reviews", api.SyncReviews)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("", func(c *gin.Context) {
				c.Redirect(http.StatusFound, "/admin/leads")
			})
			auth.GET("/leads", api.ShowLeads)

			adminAPI := auth.Group("/api")
			{
				adminAPI.GET("/leads", api.GetLeads)
				adminAPI.PUT("/leads/:id/status", api.UpdateLeadStatus)
			}
		}
	}

	// 其余单段路径交给 CMS 的公司页面，找不到时渲染 404
	r.NoRoute(api.ShowCompanyPage)

	return r, nil
}

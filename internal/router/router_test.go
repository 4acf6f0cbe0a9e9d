package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dfwhvac/internal/content"
	"github.com/dfwhvac/internal/db"
	"github.com/dfwhvac/internal/handler"
	"github.com/dfwhvac/internal/metrics"
	"github.com/dfwhvac/internal/service"
	"github.com/dfwhvac/web"
)

func setupRouterTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(db.Models()...))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	m := metrics.New()
	api := handler.NewAPI(handler.Deps{
		Store:  content.NewStore(nil, nil, m),
		Leads:  service.NewLeadService(gdb, service.NewDBLeadGuard(gdb, time.Minute), nil, nil, m),
		Admins: service.NewAdminService(gdb),
		Options: handler.Options{
			BaseURL:     "https://dfwhvac.com",
			StaticFiles: web.StaticFS(),
		},
	})

	r, err := SetupRouter(Deps{API: api, Metrics: m, SessionSecret: "test-secret"})
	require.NoError(t, err)
	return r, gdb
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestSetupRouterRendersEveryPage(t *testing.T) {
	r, _ := setupRouterTest(t)

	pages := []string{
		"/",
		"/services",
		"/services/residential/air-conditioning",
		"/services/commercial/commercial-heating",
		"/cities-served",
		"/faq",
		"/reviews",
		"/about",
		"/request-service",
		"/estimate",
		"/contact",
		"/book-service",
		"/privacy-policy",
		"/terms-of-service",
	}
	for _, path := range pages {
		t.Run(path, func(t *testing.T) {
			rec := get(r, path)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			body := rec.Body.String()
			assert.Contains(t, body, "DFW HVAC")
			assert.NotContains(t, body, "ZgotmplZ")
		})
	}

	rec := get(r, "/admin/login")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/admin/login"`)
}

func TestLayoutCarriesPhoneAndStructuredData(t *testing.T) {
	r, _ := setupRouterTest(t)

	body := get(r, "/").Body.String()
	assert.Contains(t, body, `href="tel:+19727772665"`)
	assert.Contains(t, body, "(972) 777-2665")
	assert.Contains(t, body, `<script type="application/ld+json">`)
	assert.Contains(t, body, `"@type":"HVACBusiness"`)
	assert.Contains(t, body, `<link rel="canonical" href="https://dfwhvac.com">`)
	assert.Contains(t, body, `content="1200"`)
}

func TestFAQRendersOpenAnswersOnly(t *testing.T) {
	r, _ := setupRouterTest(t)

	closed := get(r, "/faq").Body.String()
	assert.NotContains(t, closed, `class="faq-answer"`)
	assert.Contains(t, closed, `href="?open=rs2#rs2"`)

	open := get(r, "/faq?open=rs2").Body.String()
	assert.Equal(t, 1, strings.Count(open, `class="faq-answer"`))
	assert.Contains(t, open, `href="/faq#rs2"`)
	assert.Contains(t, open, `href="?open=rs1&amp;open=rs2#rs1"`)
}

func TestCMSPagesRenderFallbackCopy(t *testing.T) {
	r, _ := setupRouterTest(t)

	cases := map[string][]string{
		"/":             {"Trusted HVAC", `href="/estimate"`, "Why Dallas-Fort Worth Trusts DFW HVAC"},
		"/about":        {"Three-Generation Family Legacy", "Transparent, flat-rate pricing", `value="/about"`},
		"/reviews":      {"Based on Google Reviews", "reviews with text"},
		"/contact":      {"Send Us a Message", "We respond within 24 hours"},
		"/book-service": {"Get Your Free HVAC Estimate", "FAST", `value="/book-service"`, `href="/cities-served"`},
	}
	for path, wants := range cases {
		rec := get(r, path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		body := rec.Body.String()
		for _, want := range wants {
			assert.Contains(t, body, want, path)
		}
		assert.NotContains(t, body, "ZgotmplZ", path)
	}

	// 未配置预约插件时不加载脚本
	assert.NotContains(t, get(r, "/book-service").Body.String(), "<script async")
}

func TestNotFoundAndRedirects(t *testing.T) {
	r, _ := setupRouterTest(t)

	rec := get(r, "/missing-page")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page Not Found")

	rec = get(r, "/recent-projects")
	assert.Equal(t, http.StatusFound, rec.Code)

	rec = get(r, "/admin/leads")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestStaticPingAndMetrics(t *testing.T) {
	r, _ := setupRouterTest(t)

	rec := get(r, "/static/css/site.css")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(r, "/ping")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pong")

	rec = get(r, "/robots.txt")
	assert.Contains(t, rec.Body.String(), "Disallow: /admin/")

	rec = get(r, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dfwhvac_http_request_duration_seconds")
}

func TestLeadFormRoundTrip(t *testing.T) {
	r, gdb := setupRouterTest(t)

	form := url.Values{
		"firstName":          {"Maria"},
		"phone":              {"9725550142"},
		"serviceAddress":     {"123 Main St, Plano, TX 75024"},
		"problemDescription": {"Furnace will not ignite"},
	}
	req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/estimate", rec.Header().Get("Location"))

	follow := httptest.NewRequest(http.MethodGet, "/estimate", nil)
	for _, c := range rec.Result().Cookies() {
		follow.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, follow)
	assert.Contains(t, rec.Body.String(), `data-testid="toast"`)
	assert.Contains(t, rec.Body.String(), "within 24 hours")

	var lead db.Lead
	require.NoError(t, gdb.First(&lead).Error)
	assert.Equal(t, db.LeadTypeEstimate, lead.LeadType)
	assert.Equal(t, "(972) 555-0142", lead.Phone)
}

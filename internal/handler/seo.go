package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dfwhvac/internal/seo"
)

// Sitemap serves sitemap.xml built from the static pages and the
// published city, service and company page documents.
func (a *API) Sitemap(c *gin.Context) {
	entries, err := seo.BuildSitemap(a.opts.BaseURL, a.now(), a.store.SitemapDocuments(c.Request.Context()))
	if err != nil {
		c.Error(err)
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}

	var buf bytes.Buffer
	if err := seo.WriteXML(&buf, entries); err != nil {
		c.Error(err)
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", buf.Bytes())
}

// Robots serves robots.txt.
func (a *API) Robots(c *gin.Context) {
	c.String(http.StatusOK, seo.Robots(a.opts.BaseURL))
}

package logger

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGinMiddlewareLogsStatusLevel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.DebugLevel)
	log := NewZapAdapter(zap.New(core))

	r := gin.New()
	r.Use(GinMiddleware(log))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/boom", func(c *gin.Context) {
		c.Error(errors.New("cms down"))
		c.String(http.StatusInternalServerError, "boom")
	})

	for _, path := range []string{"/ok", "/boom"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Level != zap.InfoLevel {
		t.Fatalf("expected info level for 200, got %s", entries[0].Level)
	}
	if entries[1].Level != zap.ErrorLevel {
		t.Fatalf("expected error level for 500, got %s", entries[1].Level)
	}
	if _, ok := entries[1].ContextMap()["errors"]; !ok {
		t.Fatal("expected gin errors to be attached")
	}
}

func TestWithFieldsCarriesContext(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewZapAdapter(zap.New(core)).WithFields(map[string]interface{}{"component": "cms"})

	log.Warn("fallback", map[string]interface{}{"query": "companyInfo", "error": errors.New("timeout")})

	entry := logs.All()[0]
	ctx := entry.ContextMap()
	if ctx["component"] != "cms" || ctx["query"] != "companyInfo" {
		t.Fatalf("unexpected context %#v", ctx)
	}
	if ctx["error"] != "timeout" {
		t.Fatalf("expected error to be encoded as message, got %#v", ctx["error"])
	}
}

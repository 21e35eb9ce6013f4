//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"bikepacking-api/internal/handler/middleware"
	"bikepacking-api/internal/pkg/config"
)

func corsRouter(origins ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}))
	r.GET("/books", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func preflight(r http.Handler, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/books", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantStatus int
		wantAllow  string
		wantCreds  string
	}{
		{name: "listed origin", origins: []string{" https://shop.example.com/ "}, origin: "https://shop.example.com", wantStatus: http.StatusNoContent, wantAllow: "https://shop.example.com", wantCreds: "true"},
		{name: "preview deploy via wildcard", origins: []string{"https://*.netlify.app"}, origin: "https://deploy-42--shop.netlify.app", wantStatus: http.StatusNoContent, wantAllow: "https://deploy-42--shop.netlify.app", wantCreds: "true"},
		{name: "unknown origin", origins: []string{"https://shop.example.com"}, origin: "https://evil.example.com", wantStatus: http.StatusForbidden},
		{name: "bare star drops credentials", origins: []string{"*", "https://shop.example.com"}, origin: "https://anyone.example.com", wantStatus: http.StatusNoContent, wantAllow: "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := preflight(corsRouter(tt.origins...), tt.origin)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCreds, rec.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bikepacking-api/internal/pkg/config"
)

// NewCORSMiddleware serves the storefront origins. Entries may use one "*"
// for preview deploys (https://*.netlify.app); a bare "*" opens every
// origin and turns credentials off, since browsers refuse that pairing.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	for _, origin := range cfg.AllowOrigins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		switch {
		case origin == "":
		case origin == "*":
			corsCfg.AllowAllOrigins = true
		default:
			if strings.Contains(origin, "*") {
				corsCfg.AllowWildcard = true
			}
			corsCfg.AllowOrigins = append(corsCfg.AllowOrigins, origin)
		}
	}

	if corsCfg.AllowAllOrigins {
		if corsCfg.AllowCredentials {
			slog.Warn("cors allows every origin, disabling credentials")
		}
		corsCfg.AllowOrigins = nil
		corsCfg.AllowWildcard = false
		corsCfg.AllowCredentials = false
	}

	slog.Debug("cors configured",
		"allow_origins", corsCfg.AllowOrigins,
		"allow_all", corsCfg.AllowAllOrigins,
		"allow_credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}

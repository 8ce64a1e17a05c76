package middleware

import (
	"log/slog"
	"slices"

	"appointment-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware treats a "*" entry in CORS_ALLOW_ORIGINS as allow-all.
// The request id header is always exposed so browsers can report it.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     appendMissing(cfg.AllowHeaders, RequestIDHeader),
		ExposeHeaders:    appendMissing(cfg.ExposeHeaders, RequestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Debug("CORS middleware initialized",
		"allow_all_origins", corsCfg.AllowAllOrigins,
		"allow_origins", corsCfg.AllowOrigins,
		"allow_methods", cfg.AllowMethods,
	)
	return cors.New(corsCfg)
}

func appendMissing(values []string, v string) []string {
	if slices.Contains(values, v) {
		return values
	}
	return append(slices.Clone(values), v)
}

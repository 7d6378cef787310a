package config

import (
	"github.com/oscargustin/Ferremas/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// SharedMiddlewareConfig contiene la configuración de los middlewares
// compartidos del router.
type SharedMiddlewareConfig struct {
	EnableCORS           bool
	EnableRequestLogging bool
	CORSOptions          middleware.CORSOptions
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() SharedMiddlewareConfig {
	return SharedMiddlewareConfig{
		EnableCORS:           true,
		EnableRequestLogging: true,
		CORSOptions:          middleware.DefaultCORSOptions(),
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, cfg SharedMiddlewareConfig) {
	router.Use(gin.Recovery())

	if cfg.EnableRequestLogging {
		router.Use(middleware.RequestLogger())
	}

	if cfg.EnableCORS {
		router.Use(middleware.CORS(cfg.CORSOptions))
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSOptions configura el middleware CORS.
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods string
	AllowedHeaders string
}

// DefaultCORSOptions devuelve opciones permisivas para desarrollo local.
func DefaultCORSOptions() CORSOptions {
	return CORSOptions{
		AllowedOrigins: []string{"*"},
		AllowedMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowedHeaders: "Accept, Authorization, Content-Type",
	}
}

// CORS agrega las cabeceras Cross-Origin Resource Sharing y responde los
// preflight OPTIONS.
func CORS(opts CORSOptions) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		origin := ctx.GetHeader("Origin")

		allowed := ""
		for _, o := range opts.AllowedOrigins {
			if o == "*" || o == origin {
				allowed = o
				break
			}
		}

		if allowed != "" {
			ctx.Header("Access-Control-Allow-Origin", allowed)
			ctx.Header("Access-Control-Allow-Methods", opts.AllowedMethods)
			ctx.Header("Access-Control-Allow-Headers", opts.AllowedHeaders)
		}

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RequestLogger registra cada petición HTTP con método, ruta, status,
// duración e IP del cliente usando el logger estructurado global.
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path

		ctx.Next()

		evt := log.Info()
		if ctx.Writer.Status() >= 500 {
			evt = log.Error()
		}
		evt.
			Str("method", ctx.Request.Method).
			Str("path", path).
			Int("status", ctx.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("ip", ctx.ClientIP()).
			Msg("request")
	}
}

package middleware

import (
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/ponto-eletronico/internal/httperr"
)

// Recovery registra o panic no slog e responde 500 no formato de erro da API.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		slog.ErrorContext(c.Request.Context(), "panic recovered",
			"request_id", GetRequestID(c.Request.Context()),
			"path", c.Request.URL.Path,
			"panic", recovered,
			"stack", string(debug.Stack()),
		)
		httperr.Internal(c, "internal_error", "Erro interno.")
		c.Abort()
	})
}

// Chain é a ordem global: Logger fica por fora de Recovery para que uma
// requisição com panic também gere a linha de log com status 500.
func Chain(logger *slog.Logger, allowedOrigins []string) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		RequestID(),
		Logger(logger),
		Recovery(),
		CORSMiddleware(allowedOrigins),
	}
}

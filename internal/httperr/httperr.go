package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Message string `json:"error"`
	Code    string `json:"error_code"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

// FromError responde com o status do erro de negócio ou, para qualquer
// outra falha, com 500 usando code/message genéricos.
func FromError(c *gin.Context, err error, code, message string) {
	if be, ok := AsBusiness(err); ok {
		msg := be.Message
		if msg == "" {
			msg = message
		}
		Write(c, be.Kind.Status(), be.Code, msg)
		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		"code", code,
		"path", c.FullPath(),
		"error", err,
	)
	Internal(c, code, message)
}

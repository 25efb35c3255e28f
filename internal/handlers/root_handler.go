package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/ponto-eletronico/internal/httperr"
)

const Banner = "Backend do Ponto Eletrônico rodando!"

func Root(c *gin.Context) {
	c.String(http.StatusOK, Banner)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		httperr.Unavailable(c, "database_unavailable", "Banco de dados indisponível.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

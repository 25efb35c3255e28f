package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/ponto-eletronico/internal/httperr"
	"github.com/BruksfildServices01/ponto-eletronico/internal/httpresp"
	ucStats "github.com/BruksfildServices01/ponto-eletronico/internal/usecase/stats"
)

type StatsHandler struct {
	summary *ucStats.GetSummary
}

func NewStatsHandler(summary *ucStats.GetSummary) *StatsHandler {
	return &StatsHandler{summary: summary}
}

func (h *StatsHandler) Get(c *gin.Context) {
	out, err := h.summary.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "stats_failed", "Erro ao buscar estatísticas")
		return
	}

	httpresp.OK(c, out)
}

package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageResponse é o envelope paginado de GET /pontos.
type PageResponse[T any] struct {
	Data         []T   `json:"data"`
	Total        int64 `json:"total"`
	PaginaAtual  int   `json:"paginaAtual"`
	TotalPaginas int   `json:"totalPaginas"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Page[T any](c *gin.Context, data []T, total int64, page, totalPaginas int) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, PageResponse[T]{
		Data:         data,
		Total:        total,
		PaginaAtual:  page,
		TotalPaginas: totalPaginas,
	})
}

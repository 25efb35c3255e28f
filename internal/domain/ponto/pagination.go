package ponto

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// ReportLimit é o tamanho padrão usado nas exportações.
	ReportLimit = 100
)

type Pagina struct {
	Page  int
	Limit int
}

// NewPagina interpreta os parâmetros de query. Valores ausentes, não
// numéricos ou menores que 1 caem no padrão; limit é limitado a MaxLimit.
func NewPagina(pageStr, limitStr string) Pagina {
	return NewPaginaWithDefault(pageStr, limitStr, DefaultLimit)
}

func NewPaginaWithDefault(pageStr, limitStr string, defaultLimit int) Pagina {
	page, err := strconv.Atoi(strings.TrimSpace(pageStr))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(strings.TrimSpace(limitStr))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	// (page-1)*limit precisa caber em int. A página acima do limite é
	// reescrita para math.MaxInt/limit, e é esse valor que paginaAtual devolve.
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}

	return Pagina{Page: page, Limit: limit}
}

func (p Pagina) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p Pagina) TotalPaginas(total int64) int {
	if total <= 0 || p.Limit <= 0 {
		return 0
	}
	limit := int64(p.Limit)
	return int((total + limit - 1) / limit)
}

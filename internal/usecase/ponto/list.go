package ponto

import (
	"context"
	"fmt"

	domainPonto "github.com/BruksfildServices01/ponto-eletronico/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-eletronico/internal/models"
)

type ListPontosOutput struct {
	Pontos       []models.Ponto
	Total        int64
	Pagina       domainPonto.Pagina
	TotalPaginas int
}

type ListPontos struct {
	repo domainPonto.Repository
}

func NewListPontos(repo domainPonto.Repository) *ListPontos {
	return &ListPontos{repo: repo}
}

func (uc *ListPontos) Execute(
	ctx context.Context,
	pagina domainPonto.Pagina,
) (*ListPontosOutput, error) {

	pontos, err := uc.repo.List(ctx, pagina.Offset(), pagina.Limit)
	if err != nil {
		return nil, fmt.Errorf("list pontos: %w", err)
	}

	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pontos: %w", err)
	}

	return &ListPontosOutput{
		Pontos:       pontos,
		Total:        total,
		Pagina:       pagina,
		TotalPaginas: pagina.TotalPaginas(total),
	}, nil
}

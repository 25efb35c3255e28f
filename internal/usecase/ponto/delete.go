package ponto

import (
	"context"

	domainPonto "github.com/BruksfildServices01/ponto-eletronico/internal/domain/ponto"
)

type DeletePonto struct {
	repo  domainPonto.Repository
	cache Invalidator
}

func NewDeletePonto(repo domainPonto.Repository, cache Invalidator) *DeletePonto {
	return &DeletePonto{
		repo:  repo,
		cache: orNoop(cache),
	}
}

func (uc *DeletePonto) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "delete ponto")
	}

	invalidate(ctx, uc.cache)
	return nil
}

package usuario

import (
	"context"
	"fmt"

	domainUsuario "github.com/BruksfildServices01/ponto-eletronico/internal/domain/usuario"
	"github.com/BruksfildServices01/ponto-eletronico/internal/models"
)

type ListUsuarios struct {
	repo domainUsuario.Repository
}

func NewListUsuarios(repo domainUsuario.Repository) *ListUsuarios {
	return &ListUsuarios{repo: repo}
}

func (uc *ListUsuarios) Execute(ctx context.Context) ([]models.User, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

package ponto

import (
	"context"

	"github.com/BruksfildServices01/ponto-eletronico/internal/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Ponto) error

	// FindByID carrega o registro com o usuário. Retorna domain.ErrNotFound
	// quando o id não existe.
	FindByID(ctx context.Context, id uint) (*models.Ponto, error)

	// List ordena por timestamp decrescente (id decrescente no empate).
	List(ctx context.Context, offset, limit int) ([]models.Ponto, error)
	Count(ctx context.Context) (int64, error)

	UpdateType(ctx context.Context, id uint, tipo Tipo) error

	// Delete retorna domain.ErrNotFound quando nenhuma linha foi removida.
	Delete(ctx context.Context, id uint) error
}

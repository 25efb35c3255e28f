package usuario

import (
	"context"

	"github.com/BruksfildServices01/ponto-eletronico/internal/models"
)

type Repository interface {
	// Create retorna domain.ErrDuplicateKey quando o email já existe.
	Create(ctx context.Context, u *models.User) error
	List(ctx context.Context) ([]models.User, error)
}

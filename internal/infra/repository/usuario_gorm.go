package repository

import (
	"context"

	"gorm.io/gorm"

	domainUsuario "github.com/BruksfildServices01/ponto-eletronico/internal/domain/usuario"
	"github.com/BruksfildServices01/ponto-eletronico/internal/models"
)

type UsuarioGormRepository struct {
	db *gorm.DB
}

func NewUsuarioGormRepository(db *gorm.DB) *UsuarioGormRepository {
	return &UsuarioGormRepository{db: db}
}

func (r *UsuarioGormRepository) Create(
	ctx context.Context,
	u *models.User,
) error {
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UsuarioGormRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

var _ domainUsuario.Repository = (*UsuarioGormRepository)(nil)

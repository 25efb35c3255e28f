package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/ponto-eletronico/internal/domain"
	domainPonto "github.com/BruksfildServices01/ponto-eletronico/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-eletronico/internal/models"
)

type PontoGormRepository struct {
	db *gorm.DB
}

func NewPontoGormRepository(db *gorm.DB) *PontoGormRepository {
	return &PontoGormRepository{db: db}
}

func preloadUserName(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *PontoGormRepository) Create(
	ctx context.Context,
	p *models.Ponto,
) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error)
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *PontoGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Ponto, error) {

	var p models.Ponto
	if err := r.db.WithContext(ctx).
		Preload("User", preloadUserName).
		First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PontoGormRepository) List(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.Ponto, error) {

	pontos := make([]models.Ponto, 0, limit)
	if err := r.db.WithContext(ctx).
		Preload("User", preloadUserName).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Limit(limit).
		Offset(offset).
		Find(&pontos).Error; err != nil {
		return nil, translate(err)
	}
	return pontos, nil
}

func (r *PontoGormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Ponto{}).
		Count(&total).Error; err != nil {
		return 0, translate(err)
	}
	return total, nil
}

// --------------------------------------------------
// Update / Delete
// --------------------------------------------------

func (r *PontoGormRepository) UpdateType(
	ctx context.Context,
	id uint,
	tipo domainPonto.Tipo,
) error {
	return translate(r.db.WithContext(ctx).
		Model(&models.Ponto{}).
		Where("id = ?", id).
		Update("type", string(tipo)).Error)
}

func (r *PontoGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Ponto{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domainPonto.Repository = (*PontoGormRepository)(nil)

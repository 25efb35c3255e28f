package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	domainStats "github.com/BruksfildServices01/ponto-eletronico/internal/domain/stats"
	"github.com/BruksfildServices01/ponto-eletronico/internal/models"
)

type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

// Snapshot roda as quatro contagens numa única transação de leitura.
func (r *StatsGormRepository) Snapshot(ctx context.Context) (*domainStats.Snapshot, error) {
	var snap domainStats.Snapshot

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &StatsGormRepository{db: tx}

		var err error
		if snap.PorTipo, err = txRepo.CountByType(ctx); err != nil {
			return err
		}
		if snap.PorUsuario, err = txRepo.CountByUser(ctx); err != nil {
			return err
		}
		if snap.TotalPontos, err = txRepo.CountPontos(ctx); err != nil {
			return err
		}
		if snap.TotalUsuarios, err = txRepo.CountUsers(ctx); err != nil {
			return err
		}
		return nil
	}, snapshotTxOptions(r.db)...)
	if err != nil {
		return nil, translate(err)
	}

	return &snap, nil
}

// No postgres o READ COMMITTED padrão vê commits entre uma consulta e outra.
// O sqlite já lê tudo da transação com a mesma visão.
func snapshotTxOptions(db *gorm.DB) []*sql.TxOptions {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	return []*sql.TxOptions{{Isolation: sql.LevelRepeatableRead, ReadOnly: true}}
}

func (r *StatsGormRepository) CountByType(ctx context.Context) ([]domainStats.TipoCount, error) {
	rows := []domainStats.TipoCount{}
	if err := r.db.WithContext(ctx).
		Model(&models.Ponto{}).
		Select("type, COUNT(*) AS total").
		Group("type").
		Order("type ASC").
		Scan(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *StatsGormRepository) CountByUser(ctx context.Context) ([]domainStats.UserCount, error) {
	rows := []domainStats.UserCount{}
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.id AS user_id, users.name AS name, COUNT(pontos.id) AS total").
		Joins("LEFT JOIN pontos ON pontos.user_id = users.id").
		Group("users.id, users.name").
		Order("users.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *StatsGormRepository) CountPontos(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Ponto{}).Count(&total).Error
	return total, translate(err)
}

func (r *StatsGormRepository) CountUsers(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error
	return total, translate(err)
}

var _ domainStats.Repository = (*StatsGormRepository)(nil)

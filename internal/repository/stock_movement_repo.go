package repository

import (
	"context"

	"github.com/Javier-GarciaP/sunbody/internal/model"

	"gorm.io/gorm"
)

// MovimientoStockRepository persists the stock audit journal.
type MovimientoStockRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovimientoStock) error
	List(ctx context.Context, limit int) ([]model.MovimientoStock, error)
}

type movimientoStockRepo struct{ db *gorm.DB }

func NewMovimientoStockRepository(db *gorm.DB) MovimientoStockRepository {
	return &movimientoStockRepo{db: db}
}

func (r *movimientoStockRepo) CreateTx(tx *gorm.DB, m *model.MovimientoStock) error {
	return tx.Create(m).Error
}

func (r *movimientoStockRepo) List(ctx context.Context, limit int) ([]model.MovimientoStock, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var movs []model.MovimientoStock
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&movs).Error
	return movs, err
}

package repository

import (
	"context"

	"github.com/Javier-GarciaP/sunbody/internal/model"

	"gorm.io/gorm"
)

// TasaRepository is the data access contract for the exchange-rate register.
// The register is append-only; the latest row wins.
type TasaRepository interface {
	Latest(ctx context.Context) (*model.TasaCambio, error)
	Insert(ctx context.Context, t *model.TasaCambio) error
}

type tasaRepo struct{ db *gorm.DB }

func NewTasaRepository(db *gorm.DB) TasaRepository { return &tasaRepo{db: db} }

func (r *tasaRepo) Latest(ctx context.Context) (*model.TasaCambio, error) {
	var t model.TasaCambio
	err := r.db.WithContext(ctx).Order("id DESC").First(&t).Error
	return &t, err
}

func (r *tasaRepo) Insert(ctx context.Context, t *model.TasaCambio) error {
	return r.db.WithContext(ctx).Create(t).Error
}

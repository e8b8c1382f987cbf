package repository

import (
	"context"

	"github.com/Javier-GarciaP/sunbody/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ColorRepository is the data access contract for catalog colors.
type ColorRepository interface {
	Create(ctx context.Context, c *model.Color) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Color, error)
	List(ctx context.Context) ([]model.Color, error)
	Update(ctx context.Context, c *model.Color) error
	Delete(ctx context.Context, id uuid.UUID) error
	// CountReferences counts dependent rows (variantes, pedido_items,
	// venta_items, paquete_items) so deletes can fail with a typed conflict
	// instead of a raw FK violation.
	CountReferences(ctx context.Context, id uuid.UUID) (int64, error)
}

type colorRepo struct{ db *gorm.DB }

func NewColorRepository(db *gorm.DB) ColorRepository { return &colorRepo{db: db} }

func (r *colorRepo) Create(ctx context.Context, c *model.Color) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *colorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Color, error) {
	var c model.Color
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *colorRepo) List(ctx context.Context) ([]model.Color, error) {
	var colores []model.Color
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&colores).Error
	return colores, err
}

func (r *colorRepo) Update(ctx context.Context, c *model.Color) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *colorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Color{}, "id = ?", id).Error
}

func (r *colorRepo) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var total, n int64
	for _, m := range []interface{}{
		&model.Variante{}, &model.PedidoItem{}, &model.VentaItem{}, &model.PaqueteItem{},
	} {
		if err := r.db.WithContext(ctx).Model(m).Where("color_id = ?", id).Count(&n).Error; err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

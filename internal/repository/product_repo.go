package repository

import (
	"context"

	"github.com/Javier-GarciaP/sunbody/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products and their
// color variants. Services depend on this interface, not on the concrete GORM
// implementation, enabling clean unit testing via stubs.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	List(ctx context.Context) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountReferences(ctx context.Context, id uuid.UUID) (int64, error)

	// Variants
	FindVariante(ctx context.Context, productoID, colorID uuid.UUID) (*model.Variante, error)
	CreateVariante(ctx context.Context, v *model.Variante) error
	UpdateVariante(ctx context.Context, v *model.Variante) error
	DeleteVariante(ctx context.Context, id uuid.UUID) error

	// Used inside transactions — callers must pass the tx instance.
	// EnsureVarianteTx creates the (producto, color) row with stock 0 when missing.
	EnsureVarianteTx(tx *gorm.DB, productoID, colorID uuid.UUID) (*model.Variante, error)
	FindVarianteTx(tx *gorm.DB, productoID, colorID uuid.UUID) (*model.Variante, error)
	UpdateStockTx(tx *gorm.DB, varianteID uuid.UUID, delta int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Preload("Variantes.Color").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Preload("Variantes.Color").Order("nombre ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Variante{}, "producto_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Producto{}, "id = ?", id).Error
	})
}

func (r *productoRepo) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var total, n int64
	for _, m := range []interface{}{
		&model.PedidoItem{}, &model.VentaItem{}, &model.PaqueteItem{},
	} {
		if err := r.db.WithContext(ctx).Model(m).Where("producto_id = ?", id).Count(&n).Error; err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (r *productoRepo) FindVariante(ctx context.Context, productoID, colorID uuid.UUID) (*model.Variante, error) {
	var v model.Variante
	err := r.db.WithContext(ctx).
		Where("producto_id = ? AND color_id = ?", productoID, colorID).First(&v).Error
	return &v, err
}

func (r *productoRepo) CreateVariante(ctx context.Context, v *model.Variante) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *productoRepo) UpdateVariante(ctx context.Context, v *model.Variante) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *productoRepo) DeleteVariante(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Variante{}, "id = ?", id).Error
}

func (r *productoRepo) FindVarianteTx(tx *gorm.DB, productoID, colorID uuid.UUID) (*model.Variante, error) {
	var v model.Variante
	err := tx.Where("producto_id = ? AND color_id = ?", productoID, colorID).First(&v).Error
	return &v, err
}

func (r *productoRepo) EnsureVarianteTx(tx *gorm.DB, productoID, colorID uuid.UUID) (*model.Variante, error) {
	v, err := r.FindVarianteTx(tx, productoID, colorID)
	if err == nil {
		return v, nil
	}
	nueva := model.Variante{ProductoID: productoID, ColorID: colorID, Stock: 0}
	if err := tx.Create(&nueva).Error; err != nil {
		return nil, err
	}
	return &nueva, nil
}

func (r *productoRepo) UpdateStockTx(tx *gorm.DB, varianteID uuid.UUID, delta int) error {
	return tx.Model(&model.Variante{}).Where("id = ?", varianteID).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
}

func (r *productoRepo) DB() *gorm.DB { return r.db }

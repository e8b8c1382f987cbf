package repository

import (
	"context"

	"github.com/Javier-GarciaP/sunbody/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaqueteRepository is the data access contract for packages.
type PaqueteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Paquete, error)
	List(ctx context.Context) ([]model.Paquete, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountReferences(ctx context.Context, id uuid.UUID) (int64, error)

	CreateTx(tx *gorm.DB, p *model.Paquete) error
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error
	UpdateTx(tx *gorm.DB, id uuid.UUID, campos map[string]interface{}) error
	// ReplaceItemsTx deletes all package items and inserts the given list.
	ReplaceItemsTx(tx *gorm.DB, paqueteID uuid.UUID, items []model.PaqueteItem) error
	// UpsertItemTx merges qty into the (producto, color) aggregate row.
	UpsertItemTx(tx *gorm.DB, paqueteID, productoID, colorID uuid.UUID, cantidad int) error
	FindTx(tx *gorm.DB, id uuid.UUID) (*model.Paquete, error)

	// ListEntregados returns received packages with items (stock report input).
	ListEntregados(ctx context.Context) ([]model.Paquete, error)

	DB() *gorm.DB
}

type paqueteRepo struct{ db *gorm.DB }

func NewPaqueteRepository(db *gorm.DB) PaqueteRepository { return &paqueteRepo{db: db} }

func (r *paqueteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Paquete, error) {
	var p model.Paquete
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").Preload("Items.Color").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *paqueteRepo) List(ctx context.Context) ([]model.Paquete, error) {
	var paquetes []model.Paquete
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").Preload("Items.Color").
		Order("created_at DESC").Find(&paquetes).Error
	return paquetes, err
}

func (r *paqueteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.PedidoItem{}).Where("paquete_id = ?", id).
			Update("paquete_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.PaqueteItem{}, "paquete_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Paquete{}, "id = ?", id).Error
	})
}

func (r *paqueteRepo) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.VentaItem{}).
		Where("paquete_id = ?", id).Count(&n).Error
	return n, err
}

func (r *paqueteRepo) CreateTx(tx *gorm.DB, p *model.Paquete) error {
	return tx.Create(p).Error
}

func (r *paqueteRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error {
	return tx.Model(&model.Paquete{}).Where("id = ?", id).Update("estado", estado).Error
}

func (r *paqueteRepo) UpdateTx(tx *gorm.DB, id uuid.UUID, campos map[string]interface{}) error {
	return tx.Model(&model.Paquete{}).Where("id = ?", id).Updates(campos).Error
}

func (r *paqueteRepo) ReplaceItemsTx(tx *gorm.DB, paqueteID uuid.UUID, items []model.PaqueteItem) error {
	if err := tx.Delete(&model.PaqueteItem{}, "paquete_id = ?", paqueteID).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].PaqueteID = paqueteID
	}
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

func (r *paqueteRepo) UpsertItemTx(tx *gorm.DB, paqueteID, productoID, colorID uuid.UUID, cantidad int) error {
	var existente model.PaqueteItem
	err := tx.Where("paquete_id = ? AND producto_id = ? AND color_id = ?",
		paqueteID, productoID, colorID).First(&existente).Error
	if err == nil {
		return tx.Model(&existente).
			Update("cantidad", gorm.Expr("cantidad + ?", cantidad)).Error
	}
	nuevo := model.PaqueteItem{
		PaqueteID:  paqueteID,
		ProductoID: productoID,
		ColorID:    colorID,
		Cantidad:   cantidad,
	}
	return tx.Create(&nuevo).Error
}

func (r *paqueteRepo) FindTx(tx *gorm.DB, id uuid.UUID) (*model.Paquete, error) {
	var p model.Paquete
	err := tx.Preload("Items").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *paqueteRepo) ListEntregados(ctx context.Context) ([]model.Paquete, error) {
	var paquetes []model.Paquete
	err := r.db.WithContext(ctx).Preload("Items").
		Where("estado = ?", model.PaqueteEntregado).Find(&paquetes).Error
	return paquetes, err
}

func (r *paqueteRepo) DB() *gorm.DB { return r.db }

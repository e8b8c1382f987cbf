package repository

import (
	"context"

	"github.com/Javier-GarciaP/sunbody/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PedidoRepository is the data access contract for orders and their items.
type PedidoRepository interface {
	Create(ctx context.Context, p *model.Pedido) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	List(ctx context.Context) ([]model.Pedido, error)
	Update(ctx context.Context, p *model.Pedido) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindItemByID(ctx context.Context, id uuid.UUID) (*model.PedidoItem, error)
	FindItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]model.PedidoItem, error)
	UpdateItem(ctx context.Context, it *model.PedidoItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error

	// Tx variants used by batching and delivery.
	SetItemsPaqueteTx(tx *gorm.DB, itemIDs []uuid.UUID, paqueteID *uuid.UUID) error
	DeletePedidosTx(tx *gorm.DB, pedidoIDs []uuid.UUID) error
	FindPedidosTx(tx *gorm.DB, ids []uuid.UUID) ([]model.Pedido, error)

	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) Create(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").Preload("Items.Color").Preload("Cliente").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *pedidoRepo) List(ctx context.Context) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").Preload("Items.Color").Preload("Cliente").
		Order("created_at DESC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) Update(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *pedidoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.PedidoItem{}, "pedido_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Pedido{}, "id = ?", id).Error
	})
}

func (r *pedidoRepo) FindItemByID(ctx context.Context, id uuid.UUID) (*model.PedidoItem, error) {
	var it model.PedidoItem
	err := r.db.WithContext(ctx).First(&it, "id = ?", id).Error
	return &it, err
}

func (r *pedidoRepo) FindItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]model.PedidoItem, error) {
	var items []model.PedidoItem
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *pedidoRepo) UpdateItem(ctx context.Context, it *model.PedidoItem) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *pedidoRepo) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PedidoItem{}, "id = ?", id).Error
}

func (r *pedidoRepo) SetItemsPaqueteTx(tx *gorm.DB, itemIDs []uuid.UUID, paqueteID *uuid.UUID) error {
	return tx.Model(&model.PedidoItem{}).Where("id IN ?", itemIDs).
		Update("paquete_id", paqueteID).Error
}

func (r *pedidoRepo) DeletePedidosTx(tx *gorm.DB, pedidoIDs []uuid.UUID) error {
	if err := tx.Delete(&model.PedidoItem{}, "pedido_id IN ?", pedidoIDs).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Pedido{}, "id IN ?", pedidoIDs).Error
}

func (r *pedidoRepo) FindPedidosTx(tx *gorm.DB, ids []uuid.UUID) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := tx.Where("id IN ?", ids).Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

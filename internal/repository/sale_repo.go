package repository

import (
	"context"

	"github.com/Javier-GarciaP/sunbody/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VentaRepository is the data access contract for sales.
type VentaRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context) ([]model.Venta, error)

	// Tx variants — callers must pass the live transaction.
	CreateTx(tx *gorm.DB, v *model.Venta) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	UpdatePagoTx(tx *gorm.DB, id uuid.UUID, paidCop int64, paidVes decimal.Decimal, esCredito bool) error
	// AjustarPaidCopTx applies a signed delta to paid_cop atomically.
	AjustarPaidCopTx(tx *gorm.DB, id uuid.UUID, deltaCop int64) error

	// ListCreditoAbiertasTx returns the customer's credit sales whose real
	// debt (total − paid_cop − round(paid_ves/tasa)) is still open, oldest
	// first — the distribution order.
	ListCreditoAbiertasTx(tx *gorm.DB, clienteID uuid.UUID) ([]model.Venta, error)
	// ListConPagoTx returns the customer's sales with paid_cop > 0,
	// most recently updated first — the reversal order.
	ListConPagoTx(tx *gorm.DB, clienteID uuid.UUID) ([]model.Venta, error)

	// ListByCliente returns all sales of one customer (auditor input).
	ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Venta, error)
	// ListItemsByPaquete returns sale items carrying package provenance.
	ListItemsConPaquete(ctx context.Context) ([]model.VentaItem, error)

	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").Preload("Items.Color").Preload("Cliente").
		First(&v, "id = ?", id).Error
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").Preload("Items.Color").Preload("Cliente").
		Order("created_at DESC").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Delete(&model.VentaItem{}, "venta_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Venta{}, "id = ?", id).Error
}

func (r *ventaRepo) UpdatePagoTx(tx *gorm.DB, id uuid.UUID, paidCop int64, paidVes decimal.Decimal, esCredito bool) error {
	return tx.Model(&model.Venta{}).Where("id = ?", id).Updates(map[string]interface{}{
		"paid_cop":   paidCop,
		"paid_ves":   paidVes,
		"es_credito": esCredito,
	}).Error
}

func (r *ventaRepo) AjustarPaidCopTx(tx *gorm.DB, id uuid.UUID, deltaCop int64) error {
	return tx.Model(&model.Venta{}).Where("id = ?", id).
		Update("paid_cop", gorm.Expr("paid_cop + ?", deltaCop)).Error
}

func (r *ventaRepo) ListCreditoAbiertasTx(tx *gorm.DB, clienteID uuid.UUID) ([]model.Venta, error) {
	var ventas []model.Venta
	err := tx.Where(
		"cliente_id = ? AND es_credito = true AND paid_cop + COALESCE(ROUND(paid_ves / NULLIF(tasa_cambio, 0)), 0) < total_cop",
		clienteID,
	).Order("created_at ASC").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ListConPagoTx(tx *gorm.DB, clienteID uuid.UUID) ([]model.Venta, error) {
	var ventas []model.Venta
	err := tx.Where("cliente_id = ? AND paid_cop > 0", clienteID).
		Order("updated_at DESC").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).Where("cliente_id = ?", clienteID).
		Order("created_at ASC").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ListItemsConPaquete(ctx context.Context) ([]model.VentaItem, error) {
	var items []model.VentaItem
	err := r.db.WithContext(ctx).Where("paquete_id IS NOT NULL").Find(&items).Error
	return items, err
}

func (r *ventaRepo) DB() *gorm.DB { return r.db }

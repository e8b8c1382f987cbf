package repository

import (
	"context"

	"github.com/Javier-GarciaP/sunbody/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PagoRepository is the data access contract for the payment journal.
type PagoRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pago, error)
	List(ctx context.Context) ([]model.Pago, error)
	// ListByCliente returns the customer's journal in creation order — the
	// order the auditor replays untied payments in.
	ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Pago, error)

	CreateTx(tx *gorm.DB, p *model.Pago) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	DeleteByVentaTx(tx *gorm.DB, ventaID uuid.UUID) error
	FindInicialByVentaTx(tx *gorm.DB, ventaID uuid.UUID) (*model.Pago, error)
	UpdateMontosTx(tx *gorm.DB, id uuid.UUID, amountCop int64, amountVes decimal.Decimal, nota string) error

	DB() *gorm.DB
}

type pagoRepo struct{ db *gorm.DB }

func NewPagoRepository(db *gorm.DB) PagoRepository { return &pagoRepo{db: db} }

func (r *pagoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pago, error) {
	var p model.Pago
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *pagoRepo) List(ctx context.Context) ([]model.Pago, error) {
	var pagos []model.Pago
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&pagos).Error
	return pagos, err
}

func (r *pagoRepo) ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Pago, error) {
	var pagos []model.Pago
	err := r.db.WithContext(ctx).Where("cliente_id = ?", clienteID).
		Order("created_at ASC").Find(&pagos).Error
	return pagos, err
}

func (r *pagoRepo) CreateTx(tx *gorm.DB, p *model.Pago) error {
	return tx.Create(p).Error
}

func (r *pagoRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Pago{}, "id = ?", id).Error
}

func (r *pagoRepo) DeleteByVentaTx(tx *gorm.DB, ventaID uuid.UUID) error {
	return tx.Delete(&model.Pago{}, "venta_id = ?", ventaID).Error
}

func (r *pagoRepo) FindInicialByVentaTx(tx *gorm.DB, ventaID uuid.UUID) (*model.Pago, error) {
	var p model.Pago
	err := tx.Where("venta_id = ? AND es_inicial = true", ventaID).First(&p).Error
	return &p, err
}

func (r *pagoRepo) UpdateMontosTx(tx *gorm.DB, id uuid.UUID, amountCop int64, amountVes decimal.Decimal, nota string) error {
	return tx.Model(&model.Pago{}).Where("id = ?", id).Updates(map[string]interface{}{
		"amount_cop": amountCop,
		"amount_ves": amountVes,
		"nota":       nota,
	}).Error
}

func (r *pagoRepo) DB() *gorm.DB { return r.db }

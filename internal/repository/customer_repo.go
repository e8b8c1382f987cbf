package repository

import (
	"context"

	"github.com/Javier-GarciaP/sunbody/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClienteRepository is the data access contract for customers.
type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	List(ctx context.Context) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountReferences(ctx context.Context, id uuid.UUID) (int64, error)

	// AjustarBalanceTx applies a signed COP delta atomically at row level.
	AjustarBalanceTx(tx *gorm.DB, id uuid.UUID, deltaCop int64) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Cliente{}, "id = ?", id).Error
}

func (r *clienteRepo) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var total, n int64
	for _, m := range []interface{}{&model.Venta{}, &model.Pago{}, &model.Pedido{}} {
		if err := r.db.WithContext(ctx).Model(m).Where("cliente_id = ?", id).Count(&n).Error; err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (r *clienteRepo) AjustarBalanceTx(tx *gorm.DB, id uuid.UUID, deltaCop int64) error {
	return tx.Model(&model.Cliente{}).Where("id = ?", id).
		Update("balance_cop", gorm.Expr("balance_cop + ?", deltaCop)).Error
}

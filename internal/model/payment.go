package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pago is one journal entry: either an abono (later partial payment) or the
// is_initial entry auto-created when a sale or delivery collects money at the
// point of sale. VentaID nil = general credit payment distributed across open
// sales; non-nil = tied to that sale. TasaCambio is the snapshot used to
// convert AmountVes — never the live register.
type Pago struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClienteID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"cliente_id"`
	AmountCop  int64           `gorm:"not null;default:0" json:"amount_cop"`
	AmountVes  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"amount_ves"`
	TasaCambio decimal.Decimal `gorm:"type:decimal(18,6);not null" json:"tasa_cambio"`
	Nota       string          `json:"nota"`
	VentaID    *uuid.UUID      `gorm:"type:uuid;index" json:"venta_id"`
	EsInicial  bool            `gorm:"not null;default:false" json:"es_inicial"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (Pago) TableName() string { return "pagos" }

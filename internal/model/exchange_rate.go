package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TasaCambio is the COP→VES register. The latest row (highest id) is the
// live rate used for NEW transactions only; every sale and payment stores
// its own snapshot and never re-reads this table for historical figures.
type TasaCambio struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	CopToVes  decimal.Decimal `gorm:"type:decimal(18,6);not null" json:"cop_to_ves"`
	CreatedAt time.Time       `json:"created_at"`
}

func (TasaCambio) TableName() string { return "tasas_cambio" }

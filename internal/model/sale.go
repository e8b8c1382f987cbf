package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is a sale, cash or credit. TotalCop is computed from catalog prices
// at creation time. PaidCop/PaidVes are the denormalized amount applied,
// kept in sync with the journal's is_initial payment row for this sale.
// TasaCambio is the COP→VES snapshot captured when the sale was made.
type Venta struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClienteID  *uuid.UUID      `gorm:"type:uuid;index" json:"cliente_id"`
	TotalCop   int64           `gorm:"not null" json:"total_cop"`
	PaidCop    int64           `gorm:"not null;default:0" json:"paid_cop"`
	PaidVes    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"paid_ves"`
	TasaCambio decimal.Decimal `gorm:"type:decimal(18,6);not null" json:"tasa_cambio"`
	EsCredito  bool            `gorm:"not null;default:false" json:"es_credito"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	Cliente *Cliente    `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
	Items   []VentaItem `gorm:"foreignKey:VentaID" json:"items"`
}

func (Venta) TableName() string { return "ventas" }

// VentaItem snapshots the unit price at sale time. PaqueteID records
// provenance when the item was sold out of a received package (delivery flow).
type VentaItem struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VentaID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"venta_id"`
	ProductoID uuid.UUID  `gorm:"type:uuid;not null;index" json:"producto_id"`
	ColorID    uuid.UUID  `gorm:"type:uuid;not null" json:"color_id"`
	Cantidad   int        `gorm:"not null" json:"cantidad"`
	PrecioCop  int64      `gorm:"not null" json:"precio_cop"`
	PaqueteID  *uuid.UUID `gorm:"type:uuid;index" json:"paquete_id"`

	Producto *Producto `gorm:"foreignKey:ProductoID" json:"producto,omitempty"`
	Color    *Color    `gorm:"foreignKey:ColorID" json:"color,omitempty"`
}

func (VentaItem) TableName() string { return "venta_items" }

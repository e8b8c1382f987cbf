package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Package status values. The update endpoint accepts arbitrary transitions;
// only crossing the Entregado boundary moves stock.
const (
	PaqueteArmado    = "Armado"
	PaqueteEnviado   = "Enviado"
	PaqueteEntregado = "Entregado"
)

// Paquete is a consolidated shipment of purchased order items. TotalVes is the
// shipment cost used for expense reporting. Its items are a denormalized
// aggregate frozen at batching time, not a live view of the order items.
type Paquete struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nombre    string          `gorm:"not null" json:"nombre"`
	Estado    string          `gorm:"not null;default:'Armado'" json:"estado"`
	TotalVes  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"total_ves"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Items []PaqueteItem `gorm:"foreignKey:PaqueteID" json:"items"`
}

func (Paquete) TableName() string { return "paquetes" }

// PaqueteItem aggregates batched order items by (producto, color).
type PaqueteItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PaqueteID  uuid.UUID `gorm:"type:uuid;not null;index" json:"paquete_id"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null;index" json:"producto_id"`
	ColorID    uuid.UUID `gorm:"type:uuid;not null" json:"color_id"`
	Cantidad   int       `gorm:"not null" json:"cantidad"`

	Producto *Producto `gorm:"foreignKey:ProductoID" json:"producto,omitempty"`
	Color    *Color    `gorm:"foreignKey:ColorID" json:"color,omitempty"`
}

func (PaqueteItem) TableName() string { return "paquete_items" }

// EsEstadoPaqueteValido reports whether s is one of the three known states.
func EsEstadoPaqueteValido(s string) bool {
	return s == PaqueteArmado || s == PaqueteEnviado || s == PaqueteEntregado
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// MovimientoStock registra cada cambio de stock de una variante: ventas,
// anulaciones, recepción y reversa de paquetes, entregas y ajustes manuales.
type MovimientoStock struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VarianteID    uuid.UUID `gorm:"type:uuid;not null;index" json:"variante_id"`
	Tipo          string    `gorm:"not null" json:"tipo"` // "venta" | "anulacion_venta" | "recepcion_paquete" | "reversa_paquete" | "entrega" | "ajuste_manual"
	Cantidad      int       `gorm:"not null" json:"cantidad"` // positive = entrada, negative = salida
	StockAnterior int       `gorm:"not null" json:"stock_anterior"`
	StockNuevo    int       `gorm:"not null" json:"stock_nuevo"`
	Motivo        string    `json:"motivo"`
	ReferenciaID  *uuid.UUID `gorm:"type:uuid" json:"referencia_id"` // venta_id o paquete_id según el tipo
	CreatedAt     time.Time  `json:"created_at"`
}

func (MovimientoStock) TableName() string { return "movimientos_stock" }

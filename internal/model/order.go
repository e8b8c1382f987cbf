package model

import (
	"time"

	"github.com/google/uuid"
)

// Pedido is a customer wish-list with no stock effect. ClienteID nil means a
// stock order for the store itself. Orders are deleted outright once fully
// delivered — there is no archival state.
type Pedido struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClienteID  *uuid.UUID `gorm:"type:uuid;index" json:"cliente_id"`
	Nota       string     `json:"nota"`
	PrepagoCop int64      `gorm:"not null;default:0" json:"prepago_cop"`
	Estado     string     `gorm:"not null;default:'pendiente'" json:"estado"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Cliente *Cliente     `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
	Items   []PedidoItem `gorm:"foreignKey:PedidoID" json:"items"`
}

func (Pedido) TableName() string { return "pedidos" }

// PedidoItem walks the picking pipeline:
//
//	pendiente (EsComprado=false, PaqueteID=nil)
//	→ comprado (EsComprado=true, PaqueteID=nil)
//	→ en paquete (PaqueteID set)
//	→ entregado (row deleted, becomes a VentaItem)
//	  o desvinculado (PaqueteID cleared again; el agregado del paquete no se toca)
type PedidoItem struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PedidoID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"pedido_id"`
	ProductoID uuid.UUID  `gorm:"type:uuid;not null;index" json:"producto_id"`
	ColorID    uuid.UUID  `gorm:"type:uuid;not null" json:"color_id"`
	Cantidad   int        `gorm:"not null" json:"cantidad"`
	EsComprado bool       `gorm:"not null;default:false" json:"es_comprado"`
	PaqueteID  *uuid.UUID `gorm:"type:uuid;index" json:"paquete_id"`

	Producto *Producto `gorm:"foreignKey:ProductoID" json:"producto,omitempty"`
	Color    *Color    `gorm:"foreignKey:ColorID" json:"color,omitempty"`
}

func (PedidoItem) TableName() string { return "pedido_items" }

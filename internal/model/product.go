package model

import (
	"time"

	"github.com/google/uuid"
)

// Producto is a sellable catalog entry. Price is stored in integer COP.
// Stock lives per color on Variante, never on the product itself.
type Producto struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nombre    string     `gorm:"index;not null" json:"nombre"`
	PrecioCop int64      `gorm:"not null" json:"precio_cop"`
	ImagenURL *string    `json:"imagen_url"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Variantes []Variante `gorm:"foreignKey:ProductoID" json:"variantes"`
}

func (Producto) TableName() string { return "productos" }

// Variante is the stock-keeping unit: one product in one color.
// Stock can legitimately go negative on a package revert or manual adjust;
// the stock report surfaces it instead of the write path hiding it.
type Variante struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_producto_color" json:"producto_id"`
	ColorID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_producto_color" json:"color_id"`
	Stock      int       `gorm:"not null;default:0" json:"stock"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Color *Color `gorm:"foreignKey:ColorID" json:"color,omitempty"`
}

func (Variante) TableName() string { return "variantes" }

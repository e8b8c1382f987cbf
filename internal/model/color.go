package model

import (
	"time"

	"github.com/google/uuid"
)

// Color is a catalog color usable by any product variant.
type Color struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nombre    string    `gorm:"uniqueIndex;not null" json:"nombre"`
	Hex       string    `gorm:"not null" json:"hex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Color) TableName() string { return "colores" }

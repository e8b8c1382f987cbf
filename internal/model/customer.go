package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente carries the denormalized running balance in integer COP.
// Positive balance = the customer owes money. The payment journal is the
// source of truth; drift between the two is what the auditor reports.
type Cliente struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nombre     string    `gorm:"index;not null" json:"nombre"`
	Telefono   *string   `json:"telefono"`
	BalanceCop int64     `gorm:"not null;default:0" json:"balance_cop"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Cliente) TableName() string { return "clientes" }

package dto

import "github.com/shopspring/decimal"

// ActualizarTasaRequest replaces the live COP→VES multiplier.
type ActualizarTasaRequest struct {
	CopToVes decimal.Decimal `json:"cop_to_ves" validate:"required,gt=0"`
}

type TasaResponse struct {
	CopToVes  decimal.Decimal `json:"cop_to_ves"`
	CreatedAt string          `json:"created_at"`
}

package dto

import "github.com/shopspring/decimal"

// CrearPagoRequest records an abono. VentaID nil = general payment
// distributed oldest-open-credit-sale-first.
type CrearPagoRequest struct {
	ClienteID  string          `json:"cliente_id"  validate:"required,uuid"`
	AmountCop  int64           `json:"amount_cop"  validate:"min=0"`
	AmountVes  decimal.Decimal `json:"amount_ves"  validate:"min=0"`
	TasaCambio decimal.Decimal `json:"tasa_cambio" validate:"required,gt=0"`
	Nota       string          `json:"nota"`
	VentaID    *string         `json:"venta_id"    validate:"omitempty,uuid"`
}

// ActualizarPagoRequest edits amounts and note only. The original sale
// distribution is deliberately not re-run; the auditor surfaces the drift.
type ActualizarPagoRequest struct {
	AmountCop int64           `json:"amount_cop" validate:"min=0"`
	AmountVes decimal.Decimal `json:"amount_ves" validate:"min=0"`
	Nota      string          `json:"nota"`
}

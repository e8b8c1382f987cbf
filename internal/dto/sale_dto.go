package dto

import "github.com/shopspring/decimal"

type ItemVentaRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	ColorID    string `json:"color_id"    validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

// CrearVentaRequest registers a cash or credit sale. Prices are never taken
// from the client — the engine reads them fresh from the catalog.
type CrearVentaRequest struct {
	ClienteID  *string            `json:"cliente_id"  validate:"omitempty,uuid"`
	Items      []ItemVentaRequest `json:"items"       validate:"required,min=1,dive"`
	PaidCop    int64              `json:"paid_cop"    validate:"min=0"`
	PaidVes    decimal.Decimal    `json:"paid_ves"    validate:"min=0"`
	TasaCambio decimal.Decimal    `json:"tasa_cambio" validate:"required,gt=0"`
	EsCredito  bool               `json:"es_credito"`
}

// EditarVentaRequest mutates paid amounts and the credit flag only; line
// items are immutable after creation.
type EditarVentaRequest struct {
	PaidCop   int64           `json:"paid_cop" validate:"min=0"`
	PaidVes   decimal.Decimal `json:"paid_ves" validate:"min=0"`
	EsCredito bool            `json:"es_credito"`
}

package dto

import "github.com/shopspring/decimal"

type ItemPedidoRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	ColorID    string `json:"color_id"    validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

type CrearPedidoRequest struct {
	ClienteID  *string             `json:"cliente_id"  validate:"omitempty,uuid"`
	Nota       string              `json:"nota"`
	PrepagoCop int64               `json:"prepago_cop" validate:"min=0"`
	Items      []ItemPedidoRequest `json:"items"       validate:"required,min=1,dive"`
}

type ActualizarPedidoRequest struct {
	Nota       string `json:"nota"`
	PrepagoCop int64  `json:"prepago_cop" validate:"min=0"`
	Estado     string `json:"estado"`
}

// MarcarCompradoRequest flips the purchased flag on one order item.
type MarcarCompradoRequest struct {
	EsComprado *bool `json:"is_purchased" validate:"required"`
}

// BatchPaqueteRequest consolidates purchased, unbatched order items into a
// new package or an existing not-yet-received one.
type BatchPaqueteRequest struct {
	Nombre    string          `json:"name"`
	TotalVes  decimal.Decimal `json:"total_ves" validate:"min=0"`
	ItemIDs   []string        `json:"itemIds"   validate:"required,min=1,dive,uuid"`
	PaqueteID *string         `json:"packageId" validate:"omitempty,uuid"`
}

// EntregarRequest converts received order items into a sale.
type EntregarRequest struct {
	PedidoIDs     []string        `json:"orderIds"           validate:"required,min=1,dive,uuid"`
	ItemIDs       []string        `json:"itemIds"            validate:"required,min=1,dive,uuid"`
	EsCredito     bool            `json:"is_credit"`
	TasaCambio    decimal.Decimal `json:"exchangeRate"       validate:"required,gt=0"`
	PagoAdicional int64           `json:"additional_payment" validate:"min=0"`
}

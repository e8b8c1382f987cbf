package dto

import "github.com/shopspring/decimal"

type ItemPaqueteRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	ColorID    string `json:"color_id"    validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

type CrearPaqueteRequest struct {
	Nombre   string               `json:"nombre"    validate:"required"`
	TotalVes decimal.Decimal      `json:"total_ves" validate:"min=0"`
	Estado   string               `json:"estado"`
	Items    []ItemPaqueteRequest `json:"items"     validate:"omitempty,dive"`
}

// ActualizarPaqueteRequest: nil fields are left untouched. When Items is
// non-nil the list is fully replaced — after the stock side effect of the
// status change was evaluated against the OLD items.
type ActualizarPaqueteRequest struct {
	Nombre   *string               `json:"nombre"`
	TotalVes *decimal.Decimal      `json:"total_ves"`
	Estado   *string               `json:"estado"`
	Items    *[]ItemPaqueteRequest `json:"items" validate:"omitempty,dive"`
}

// FilaStockPaquete is one row of the package-vs-stock diagnostic report.
type FilaStockPaquete struct {
	ProductoID string `json:"producto_id"`
	ColorID    string `json:"color_id"`
	Recibido   int    `json:"recibido"`
	Entregado  int    `json:"entregado"`
	NetoPaquete int   `json:"neto_paquete"`
	StockActual int   `json:"stock_actual"`
}

type ReporteStockPaquetes struct {
	Filas         []FilaStockPaquete `json:"filas"`
	GastoTotalVes decimal.Decimal    `json:"gasto_total_ves"`
}

package dto

import "github.com/Javier-GarciaP/sunbody/internal/model"

type ClienteRequest struct {
	Nombre   string  `json:"nombre" validate:"required"`
	Telefono *string `json:"telefono"`
}

// EstadoCliente is the account view: the customer plus their full sale and
// payment history.
type EstadoCliente struct {
	Cliente model.Cliente `json:"cliente"`
	Ventas  []model.Venta `json:"ventas"`
	Pagos   []model.Pago  `json:"pagos"`
}

package dto

// ─── Colores ────────────────────────────────────────────────────────────────

type ColorRequest struct {
	Nombre string `json:"nombre" validate:"required"`
	Hex    string `json:"hex"    validate:"required,hexcolor"`
}

// ─── Productos / variantes ──────────────────────────────────────────────────

type VarianteRequest struct {
	ColorID string `json:"color_id" validate:"required,uuid"`
	Stock   int    `json:"stock"    validate:"min=0"`
}

type CrearProductoRequest struct {
	Nombre    string            `json:"nombre"     validate:"required"`
	PrecioCop int64             `json:"precio_cop" validate:"required,gt=0"`
	ImagenURL *string           `json:"imagen_url" validate:"omitempty,url"`
	Variantes []VarianteRequest `json:"variantes"  validate:"omitempty,dive"`
}

type ActualizarProductoRequest struct {
	Nombre    string  `json:"nombre"     validate:"required"`
	PrecioCop int64   `json:"precio_cop" validate:"required,gt=0"`
	ImagenURL *string `json:"imagen_url" validate:"omitempty,url"`
}

// ConsultaPrecioResponse is the price-check payload served through the Redis
// read-through cache.
type ConsultaPrecioResponse struct {
	ProductoID string `json:"producto_id"`
	Nombre     string `json:"nombre"`
	PrecioCop  int64  `json:"precio_cop"`
	StockTotal int    `json:"stock_total"`
}

// AjustarStockRequest applies a signed manual delta to one variant.
type AjustarStockRequest struct {
	ColorID string `json:"color_id" validate:"required,uuid"`
	Delta   int    `json:"delta"    validate:"required"`
	Motivo  string `json:"motivo"`
}

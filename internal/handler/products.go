package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Javier-GarciaP/sunbody/internal/dto"
	"github.com/Javier-GarciaP/sunbody/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	precioCachePrefix = "cache:precio:"
	precioCacheTTL    = 5 * time.Minute
)

// ProductosHandler serves the catalog. Price lookups go through a per-product
// Redis read-through cache, invalidated on every write that moves price or
// stock.
type ProductosHandler struct {
	svc service.CatalogoService
	rdb *redis.Client
}

func NewProductosHandler(svc service.CatalogoService, rdb *redis.Client) *ProductosHandler {
	return &ProductosHandler{svc: svc, rdb: rdb}
}

func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearProducto(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarProductos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerProducto(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConsultarPrecio serves the price check. Redis being down never fails the
// request: it falls through to Postgres.
func (h *ProductosHandler) ConsultarPrecio(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	cacheKey := precioCachePrefix + id.String()

	if h.rdb != nil {
		if raw, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached dto.ConsultaPrecioResponse
			if json.Unmarshal(raw, &cached) == nil {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
	}

	producto, err := h.svc.ObtenerProducto(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := dto.ConsultaPrecioResponse{
		ProductoID: producto.ID.String(),
		Nombre:     producto.Nombre,
		PrecioCop:  producto.PrecioCop,
	}
	for _, v := range producto.Variantes {
		resp.StockTotal += v.Stock
	}

	if h.rdb != nil {
		if raw, err := json.Marshal(resp); err == nil {
			h.rdb.Set(ctx, cacheKey, raw, precioCacheTTL)
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) invalidarPrecio(c *gin.Context, id uuid.UUID) {
	if h.rdb != nil {
		h.rdb.Del(c.Request.Context(), precioCachePrefix+id.String())
	}
}

func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarProducto(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidarPrecio(c, id)
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) Eliminar(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarProducto(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.invalidarPrecio(c, id)
	c.Status(http.StatusNoContent)
}

func (h *ProductosHandler) CrearVariante(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req dto.VarianteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearVariante(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductosHandler) EliminarVariante(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	varianteID, ok := paramUUID(c, "varianteId")
	if !ok {
		return
	}
	if err := h.svc.EliminarVariante(c.Request.Context(), id, varianteID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductosHandler) AjustarStock(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req dto.AjustarStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AjustarStock(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidarPrecio(c, id)
	c.JSON(http.StatusOK, resp)
}

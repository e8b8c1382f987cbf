package handler

import (
	"net/http"

	"github.com/Javier-GarciaP/sunbody/internal/dto"
	"github.com/Javier-GarciaP/sunbody/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PedidosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) Actualizar(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) Eliminar(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Items ─────────────────────────────────────────────────────────────────────

func (h *PedidosHandler) MarcarItemComprado(c *gin.Context) {
	itemID, ok := paramUUID(c, "itemId")
	if !ok {
		return
	}
	var req dto.MarcarCompradoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.MarcarItemComprado(c.Request.Context(), itemID, *req.EsComprado)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) EliminarItem(c *gin.Context) {
	itemID, ok := paramUUID(c, "itemId")
	if !ok {
		return
	}
	if err := h.svc.EliminarItem(c.Request.Context(), itemID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PedidosHandler) DesvincularItem(c *gin.Context) {
	itemID, ok := paramUUID(c, "itemId")
	if !ok {
		return
	}
	resp, err := h.svc.DesvincularItem(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Pipeline ──────────────────────────────────────────────────────────────────

func (h *PedidosHandler) BatchPaquete(c *gin.Context) {
	var req dto.BatchPaqueteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.BatchPaquete(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) Entregar(c *gin.Context) {
	var req dto.EntregarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Entregar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

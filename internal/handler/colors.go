package handler

import (
	"net/http"

	"github.com/Javier-GarciaP/sunbody/internal/dto"
	"github.com/Javier-GarciaP/sunbody/internal/service"

	"github.com/gin-gonic/gin"
)

type ColoresHandler struct{ svc service.CatalogoService }

func NewColoresHandler(svc service.CatalogoService) *ColoresHandler {
	return &ColoresHandler{svc: svc}
}

func (h *ColoresHandler) Crear(c *gin.Context) {
	var req dto.ColorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearColor(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ColoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarColores(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ColoresHandler) Actualizar(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ColorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarColor(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ColoresHandler) Eliminar(c *gin.Context) {
	id, ok := paramUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarColor(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/Javier-GarciaP/sunbody/internal/repository"

	"github.com/gin-gonic/gin"
)

type MovimientosHandler struct{ repo repository.MovimientoStockRepository }

func NewMovimientosHandler(repo repository.MovimientoStockRepository) *MovimientosHandler {
	return &MovimientosHandler{repo: repo}
}

// Listar returns the most recent stock movements, newest first.
func (h *MovimientosHandler) Listar(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	resp, err := h.repo.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

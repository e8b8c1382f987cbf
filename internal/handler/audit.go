package handler

import (
	"net/http"

	"github.com/Javier-GarciaP/sunbody/internal/service"

	"github.com/gin-gonic/gin"
)

type AuditoriaHandler struct{ svc service.AuditoriaService }

func NewAuditoriaHandler(svc service.AuditoriaService) *AuditoriaHandler {
	return &AuditoriaHandler{svc: svc}
}

// Consistencia recomputes every denormalized money column from the journal
// and reports drift. Read-only and potentially slow: it walks all customers.
func (h *AuditoriaHandler) Consistencia(c *gin.Context) {
	resp, err := h.svc.Run(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Javier-GarciaP/sunbody/internal/dto"
	"github.com/Javier-GarciaP/sunbody/internal/model"
	"github.com/Javier-GarciaP/sunbody/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	tasaCacheKey = "cache:tasa_cambio"
	tasaCacheTTL = 5 * time.Minute
)

// TasaHandler serves the live COP→VES rate with a Redis read-through cache.
// Redis being down never fails the request: it falls through to Postgres.
type TasaHandler struct {
	svc service.TasaService
	rdb *redis.Client
}

func NewTasaHandler(svc service.TasaService, rdb *redis.Client) *TasaHandler {
	return &TasaHandler{svc: svc, rdb: rdb}
}

func (h *TasaHandler) Obtener(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		if raw, err := h.rdb.Get(ctx, tasaCacheKey).Bytes(); err == nil {
			var cached model.TasaCambio
			if json.Unmarshal(raw, &cached) == nil {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
	}

	tasa, err := h.svc.Actual(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if h.rdb != nil {
		if raw, err := json.Marshal(tasa); err == nil {
			h.rdb.Set(ctx, tasaCacheKey, raw, tasaCacheTTL)
		}
	}
	c.JSON(http.StatusOK, tasa)
}

func (h *TasaHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarTasaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tasa, err := h.svc.Actualizar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if h.rdb != nil {
		h.rdb.Del(c.Request.Context(), tasaCacheKey)
	}
	c.JSON(http.StatusOK, tasa)
}

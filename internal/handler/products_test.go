package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Javier-GarciaP/sunbody/internal/apierror"
	"github.com/Javier-GarciaP/sunbody/internal/dto"
	"github.com/Javier-GarciaP/sunbody/internal/handler"
	"github.com/Javier-GarciaP/sunbody/internal/model"
	"github.com/Javier-GarciaP/sunbody/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalogo overrides only the lookup the price endpoint uses.
type stubCatalogo struct {
	service.CatalogoService
	producto *model.Producto
}

func (s *stubCatalogo) ObtenerProducto(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	if s.producto != nil && s.producto.ID == id {
		return s.producto, nil
	}
	return nil, apierror.NotFound("Producto no encontrado")
}

func precioRouter(p *model.Producto) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewProductosHandler(&stubCatalogo{producto: p}, nil)
	r := gin.New()
	r.GET("/products/:id/price", h.ConsultarPrecio)
	return r
}

func TestConsultarPrecio(t *testing.T) {
	producto := &model.Producto{
		ID:        uuid.New(),
		Nombre:    "Top deportivo",
		PrecioCop: 45000,
		Variantes: []model.Variante{{Stock: 3}, {Stock: 2}},
	}
	r := precioRouter(producto)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/"+producto.ID.String()+"/price", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ConsultaPrecioResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, producto.ID.String(), resp.ProductoID)
	assert.Equal(t, int64(45000), resp.PrecioCop)
	assert.Equal(t, 5, resp.StockTotal)
}

func TestConsultarPrecioNoEncontrado(t *testing.T) {
	r := precioRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/"+uuid.NewString()+"/price", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

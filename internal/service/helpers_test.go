package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Javier-GarciaP/sunbody/internal/apierror"
	"github.com/Javier-GarciaP/sunbody/internal/dto"
	"github.com/Javier-GarciaP/sunbody/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertKind(t *testing.T, err error, kind apierror.Kind) {
	t.Helper()
	var e *apierror.Error
	require.True(t, errors.As(err, &e), "se esperaba *apierror.Error, llegó %v", err)
	assert.Equal(t, kind, e.Kind)
}

func str(s string) *string { return &s }

func tasa(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// catalogo deja listo un producto con variante en stock y devuelve los IDs que
// piden los DTOs.
type catalogo struct {
	producto *model.Producto
	color    *model.Color
	variante *model.Variante
}

func seedCatalogo(f *fixture, nombre string, precio int64, stock int) catalogo {
	color := seedColor(f, "Negro "+nombre)
	producto := seedProducto(f, nombre, precio)
	variante := seedVariante(f, producto.ID, color.ID, stock)
	return catalogo{producto: producto, color: color, variante: variante}
}

func movimientosDeTipo(f *fixture, tipo string) []model.MovimientoStock {
	return f.movs.porTipo(tipo)
}

// seedVentaCredito crea una venta a crédito sin pago inicial a través del
// motor real, dejando el balance del cliente en total_cop.
func seedVentaCredito(t *testing.T, f *fixture, cliente *model.Cliente, nombre string, precio int64, cantidad int) *model.Venta {
	t.Helper()
	cat := seedCatalogo(f, nombre, precio, cantidad)
	clienteID := cliente.ID.String()
	venta, err := f.ventaSvc.Crear(context.Background(), dto.CrearVentaRequest{
		ClienteID: &clienteID,
		Items: []dto.ItemVentaRequest{
			{ProductoID: cat.producto.ID.String(), ColorID: cat.color.ID.String(), Cantidad: cantidad},
		},
		TasaCambio: tasa(160),
		EsCredito:  true,
	})
	require.NoError(t, err)
	return venta
}

func pagosDeVenta(f *fixture, ventaID uuid.UUID) []model.Pago {
	var out []model.Pago
	for _, id := range f.pagos.orden {
		p, ok := f.pagos.pagos[id]
		if !ok {
			continue
		}
		if p.VentaID != nil && *p.VentaID == ventaID {
			out = append(out, *p)
		}
	}
	return out
}

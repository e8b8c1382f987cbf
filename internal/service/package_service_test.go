package service_test

import (
	"context"
	"testing"

	"github.com/Javier-GarciaP/sunbody/internal/apierror"
	"github.com/Javier-GarciaP/sunbody/internal/dto"
	"github.com/Javier-GarciaP/sunbody/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearPaqueteEntregadoInyectaStock(t *testing.T) {
	f := newFixture()
	color := seedColor(f, "Negro")
	producto := seedProducto(f, "Top", 10000)

	// Sin variante previa: la recepción la crea con stock 0 y suma encima.
	paquete, err := f.paqueteSvc.Crear(context.Background(), dto.CrearPaqueteRequest{
		Nombre:   "Caja directa",
		Estado:   model.PaqueteEntregado,
		TotalVes: decimal.NewFromInt(800000),
		Items: []dto.ItemPaqueteRequest{
			{ProductoID: producto.ID.String(), ColorID: color.ID.String(), Cantidad: 4},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, model.PaqueteEntregado, paquete.Estado)
	assert.Equal(t, 4, stockDe(f, producto.ID, color.ID))

	movs := movimientosDeTipo(f, "recepcion_paquete")
	require.Len(t, movs, 1)
	assert.Equal(t, 4, movs[0].Cantidad)
	assert.Equal(t, 0, movs[0].StockAnterior)
	assert.Equal(t, 4, movs[0].StockNuevo)
}

func TestCrearPaqueteEstadoDesconocido(t *testing.T) {
	f := newFixture()
	_, err := f.paqueteSvc.Crear(context.Background(), dto.CrearPaqueteRequest{
		Nombre: "Caja",
		Estado: "Perdido",
	})
	assertKind(t, err, apierror.KindInvalidInput)
}

func TestActualizarPaqueteTransiciones(t *testing.T) {
	f := newFixture()
	color := seedColor(f, "Rosa")
	producto := seedProducto(f, "Legging", 12000)

	paquete, err := f.paqueteSvc.Crear(context.Background(), dto.CrearPaqueteRequest{
		Nombre: "Caja 7",
		Items: []dto.ItemPaqueteRequest{
			{ProductoID: producto.ID.String(), ColorID: color.ID.String(), Cantidad: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaqueteArmado, paquete.Estado)
	assert.Equal(t, -1, stockDe(f, producto.ID, color.ID)) // variante aún no existe

	// Armado → Enviado no mueve stock.
	_, err = f.paqueteSvc.Actualizar(context.Background(), paquete.ID, dto.ActualizarPaqueteRequest{
		Estado: str(model.PaqueteEnviado),
	})
	require.NoError(t, err)
	assert.Empty(t, f.movs.movimientos)

	// Enviado → Entregado suma.
	_, err = f.paqueteSvc.Actualizar(context.Background(), paquete.ID, dto.ActualizarPaqueteRequest{
		Estado: str(model.PaqueteEntregado),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, stockDe(f, producto.ID, color.ID))

	// Entregado → Enviado revierte exactamente.
	_, err = f.paqueteSvc.Actualizar(context.Background(), paquete.ID, dto.ActualizarPaqueteRequest{
		Estado: str(model.PaqueteEnviado),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, stockDe(f, producto.ID, color.ID))
	assert.Len(t, movimientosDeTipo(f, "reversa_paquete"), 1)
}

func TestActualizarPaqueteReversaUsaItemsViejos(t *testing.T) {
	f := newFixture()
	color := seedColor(f, "Lila")
	producto := seedProducto(f, "Short", 9000)

	paquete, err := f.paqueteSvc.Crear(context.Background(), dto.CrearPaqueteRequest{
		Nombre: "Caja 8",
		Estado: model.PaqueteEntregado,
		Items: []dto.ItemPaqueteRequest{
			{ProductoID: producto.ID.String(), ColorID: color.ID.String(), Cantidad: 5},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 5, stockDe(f, producto.ID, color.ID))

	// Reversa y reemplazo de items en la misma operación: la reversa descuenta
	// las cantidades VIEJAS, no las nuevas.
	itemsNuevos := []dto.ItemPaqueteRequest{
		{ProductoID: producto.ID.String(), ColorID: color.ID.String(), Cantidad: 2},
	}
	actualizado, err := f.paqueteSvc.Actualizar(context.Background(), paquete.ID, dto.ActualizarPaqueteRequest{
		Estado: str(model.PaqueteArmado),
		Items:  &itemsNuevos,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, stockDe(f, producto.ID, color.ID))
	require.Len(t, actualizado.Items, 1)
	assert.Equal(t, 2, actualizado.Items[0].Cantidad)
}

func TestEliminarPaqueteConVentas(t *testing.T) {
	f := newFixture()
	paquete, err := f.paqueteSvc.Crear(context.Background(), dto.CrearPaqueteRequest{Nombre: "Caja 9"})
	require.NoError(t, err)

	f.paquetes.refs = 1
	err = f.paqueteSvc.Eliminar(context.Background(), paquete.ID)
	assertKind(t, err, apierror.KindReferentialConflict)

	f.paquetes.refs = 0
	require.NoError(t, f.paqueteSvc.Eliminar(context.Background(), paquete.ID))
	_, err = f.paqueteSvc.Obtener(context.Background(), paquete.ID)
	assertKind(t, err, apierror.KindNotFound)
}

func TestReporteStockPaquetes(t *testing.T) {
	f := newFixture()
	cliente := seedCliente(f, "Maria")
	clienteID := cliente.ID.String()

	// Pipeline completo: 3 recibidos por paquete, los 3 entregados en venta.
	cat, pedido, _ := armarEntrega(t, f, &clienteID, 0, 3)
	require.Equal(t, 3, stockDe(f, cat.producto.ID, cat.color.ID))

	_, err := f.pedidoSvc.Entregar(context.Background(), dto.EntregarRequest{
		PedidoIDs:  []string{pedido.ID.String()},
		ItemIDs:    itemIDsDe(pedido),
		TasaCambio: tasa(160),
	})
	require.NoError(t, err)

	reporte, err := f.paqueteSvc.ReporteStock(context.Background())
	require.NoError(t, err)

	require.Len(t, reporte.Filas, 1)
	fila := reporte.Filas[0]
	assert.Equal(t, cat.producto.ID.String(), fila.ProductoID)
	assert.Equal(t, 3, fila.Recibido)
	assert.Equal(t, 3, fila.Entregado)
	assert.Equal(t, 0, fila.NetoPaquete)
	assert.Equal(t, 0, fila.StockActual)
	assert.True(t, decimal.NewFromInt(500000).Equal(reporte.GastoTotalVes))
}

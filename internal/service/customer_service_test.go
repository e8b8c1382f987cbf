package service_test

import (
	"context"
	"testing"

	"github.com/Javier-GarciaP/sunbody/internal/apierror"
	"github.com/Javier-GarciaP/sunbody/internal/dto"
	"github.com/Javier-GarciaP/sunbody/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEliminarClienteConHistorial(t *testing.T) {
	f := newFixture()
	svc := service.NewClienteService(f.clientes, f.ventas, f.pagos)
	cliente := seedCliente(f, "Maria")

	f.clientes.refs = 3
	err := svc.Eliminar(context.Background(), cliente.ID)
	assertKind(t, err, apierror.KindReferentialConflict)

	f.clientes.refs = 0
	require.NoError(t, svc.Eliminar(context.Background(), cliente.ID))
	_, err = svc.Obtener(context.Background(), cliente.ID)
	assertKind(t, err, apierror.KindNotFound)
}

func TestEstadoDeCuenta(t *testing.T) {
	f := newFixture()
	svc := service.NewClienteService(f.clientes, f.ventas, f.pagos)
	cliente := seedCliente(f, "Luisa")

	seedVentaCredito(t, f, cliente, "Top", 10000, 1)
	_, err := f.pagoSvc.Crear(context.Background(), dto.CrearPagoRequest{
		ClienteID:  cliente.ID.String(),
		AmountCop:  4000,
		TasaCambio: tasa(160),
	})
	require.NoError(t, err)

	estado, err := svc.Estado(context.Background(), cliente.ID)
	require.NoError(t, err)
	assert.Equal(t, cliente.ID, estado.Cliente.ID)
	assert.Equal(t, int64(6000), estado.Cliente.BalanceCop)
	assert.Len(t, estado.Ventas, 1)
	assert.Len(t, estado.Pagos, 1)
}

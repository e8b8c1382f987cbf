package service

import (
	"context"
	"fmt"

	"github.com/Javier-GarciaP/sunbody/internal/apierror"
	"github.com/Javier-GarciaP/sunbody/internal/dto"
	"github.com/Javier-GarciaP/sunbody/internal/model"
	"github.com/Javier-GarciaP/sunbody/internal/money"
	"github.com/Javier-GarciaP/sunbody/internal/repository"

	"github.com/google/uuid"
)

// AuditoriaService recomputes the denormalized money columns (balance_cop por
// cliente, paid_cop por venta) desde el journal de pagos y reporta cada desvío.
// Solo lectura: nunca corrige, solo diagnostica.
type AuditoriaService interface {
	Run(ctx context.Context) (*dto.ReporteConsistencia, error)
	RunCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.Inconsistencia, error)
}

type auditoriaService struct {
	clienteRepo repository.ClienteRepository
	ventaRepo   repository.VentaRepository
	pagoRepo    repository.PagoRepository
}

func NewAuditoriaService(
	clienteRepo repository.ClienteRepository,
	ventaRepo repository.VentaRepository,
	pagoRepo repository.PagoRepository,
) AuditoriaService {
	return &auditoriaService{clienteRepo: clienteRepo, ventaRepo: ventaRepo, pagoRepo: pagoRepo}
}

func (s *auditoriaService) Run(ctx context.Context) (*dto.ReporteConsistencia, error) {
	clientes, err := s.clienteRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	reporte := &dto.ReporteConsistencia{Status: "ok", Issues: []dto.Inconsistencia{}}
	for _, c := range clientes {
		issues, err := s.auditarCliente(ctx, &c)
		if err != nil {
			return nil, err
		}
		reporte.Issues = append(reporte.Issues, issues...)
	}
	reporte.IssuesCount = len(reporte.Issues)
	if reporte.IssuesCount > 0 {
		reporte.Status = "inconsistente"
	}
	return reporte, nil
}

func (s *auditoriaService) RunCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.Inconsistencia, error) {
	cliente, err := s.clienteRepo.FindByID(ctx, clienteID)
	if err != nil {
		return nil, apierror.NotFound("Cliente no encontrado")
	}
	return s.auditarCliente(ctx, cliente)
}

// auditarCliente cruza las tres fuentes de verdad de un cliente:
//
//	balance esperado = Σ total_cop de ventas a crédito − Σ pagos aplicados
//	pagado esperado por venta = pagos atados a la venta + reparto determinista
//	                            de los pagos sueltos, crédito más antiguo primero
//
// Los pagos atados a ventas de contado se excluyen del balance: una venta de
// contado nunca tocó balance_cop, y su pago inicial tampoco debe hacerlo.
func (s *auditoriaService) auditarCliente(ctx context.Context, cliente *model.Cliente) ([]dto.Inconsistencia, error) {
	ventas, err := s.ventaRepo.ListByCliente(ctx, cliente.ID)
	if err != nil {
		return nil, err
	}
	pagos, err := s.pagoRepo.ListByCliente(ctx, cliente.ID)
	if err != nil {
		return nil, err
	}

	esContado := make(map[uuid.UUID]bool)
	for _, v := range ventas {
		if !v.EsCredito {
			esContado[v.ID] = true
		}
	}

	var balanceEsperado int64
	atado := make(map[uuid.UUID]int64)
	var sueltos int64
	for _, p := range pagos {
		aplicado := money.TotalApplied(p.AmountCop, p.AmountVes, p.TasaCambio)
		if p.VentaID != nil {
			atado[*p.VentaID] += aplicado
			if !esContado[*p.VentaID] {
				balanceEsperado -= aplicado
			}
			continue
		}
		sueltos += aplicado
		balanceEsperado -= aplicado
	}
	for _, v := range ventas {
		if v.EsCredito {
			balanceEsperado += v.TotalCop
		}
	}

	// Reparto determinista de los pagos sueltos, replicando la distribución
	// original: ventas a crédito en orden de creación, llenando hasta el total.
	esperadoPorVenta := make(map[uuid.UUID]int64)
	for _, v := range ventas {
		esperadoPorVenta[v.ID] = atado[v.ID]
	}
	restante := sueltos
	for _, v := range ventas {
		if restante <= 0 {
			break
		}
		if !v.EsCredito {
			continue
		}
		capacidad := v.TotalCop - esperadoPorVenta[v.ID]
		if capacidad <= 0 {
			continue
		}
		aplicar := minInt64(capacidad, restante)
		esperadoPorVenta[v.ID] += aplicar
		restante -= aplicar
	}

	var issues []dto.Inconsistencia
	if cliente.BalanceCop != balanceEsperado {
		issues = append(issues, dto.Inconsistencia{
			Tipo:     "balance_cliente",
			EntityID: cliente.ID.String(),
			Actual:   cliente.BalanceCop,
			Esperado: balanceEsperado,
			Detalle:  fmt.Sprintf("Balance de %s no cuadra con el journal de pagos", cliente.Nombre),
		})
	}
	for _, v := range ventas {
		// En contado paid = total por construcción y no siempre hay fila en
		// el journal que lo respalde; auditar solo las de crédito.
		if !v.EsCredito {
			continue
		}
		aplicadoActual := v.PaidCop + money.VesToCop(v.PaidVes, v.TasaCambio)
		if aplicadoActual != esperadoPorVenta[v.ID] {
			issues = append(issues, dto.Inconsistencia{
				Tipo:     "pago_venta",
				EntityID: v.ID.String(),
				Actual:   aplicadoActual,
				Esperado: esperadoPorVenta[v.ID],
				Detalle:  fmt.Sprintf("Pagado de la venta no cuadra con los pagos de %s", cliente.Nombre),
			})
		}
	}
	return issues, nil
}

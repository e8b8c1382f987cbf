package service

import (
	"context"

	"github.com/Javier-GarciaP/sunbody/internal/apierror"
	"github.com/Javier-GarciaP/sunbody/internal/dto"
	"github.com/Javier-GarciaP/sunbody/internal/model"
	"github.com/Javier-GarciaP/sunbody/internal/money"
	"github.com/Javier-GarciaP/sunbody/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PagoService implements the payment journal: abonos, their distribution
// against open credit sales, and reversals.
type PagoService interface {
	Crear(ctx context.Context, req dto.CrearPagoRequest) (*model.Pago, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPagoRequest) (*model.Pago, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Listar(ctx context.Context) ([]model.Pago, error)
	ListarPorCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Pago, error)
}

type pagoService struct {
	repo        repository.PagoRepository
	ventaRepo   repository.VentaRepository
	clienteRepo repository.ClienteRepository
	dispatcher  Dispatcher
}

func NewPagoService(
	repo repository.PagoRepository,
	ventaRepo repository.VentaRepository,
	clienteRepo repository.ClienteRepository,
	dispatcher Dispatcher,
) PagoService {
	return &pagoService{repo: repo, ventaRepo: ventaRepo, clienteRepo: clienteRepo, dispatcher: dispatcher}
}

// ── Crear ─────────────────────────────────────────────────────────────────────
//  1. total_aplicado = amount_cop + round(amount_ves / tasa)
//  2. insertar pago
//  3. balance_cop -= total_aplicado
//  4. distribuir: atado a una venta → aplicar entero a esa venta;
//     general → venta a crédito abierta más antigua primero,
//     min(deuda restante, pago restante) hasta agotar.

func (s *pagoService) Crear(ctx context.Context, req dto.CrearPagoRequest) (*model.Pago, error) {
	clienteID, err := parseID(req.ClienteID, "cliente_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.clienteRepo.FindByID(ctx, clienteID); err != nil {
		return nil, apierror.NotFound("Cliente no encontrado")
	}
	if req.AmountCop <= 0 && req.AmountVes.Sign() <= 0 {
		return nil, apierror.InvalidInput("El pago debe tener monto en COP o VES")
	}

	var ventaID *uuid.UUID
	if req.VentaID != nil {
		id, err := parseID(*req.VentaID, "venta_id")
		if err != nil {
			return nil, err
		}
		venta, err := s.ventaRepo.FindByID(ctx, id)
		if err != nil {
			return nil, apierror.NotFound("Venta no encontrada")
		}
		if venta.ClienteID == nil || *venta.ClienteID != clienteID {
			return nil, apierror.InvalidInput("La venta no pertenece al cliente")
		}
		ventaID = &id
	}

	totalAplicado := money.TotalApplied(req.AmountCop, req.AmountVes, req.TasaCambio)

	pago := model.Pago{
		ClienteID:  clienteID,
		AmountCop:  req.AmountCop,
		AmountVes:  req.AmountVes,
		TasaCambio: req.TasaCambio,
		Nota:       req.Nota,
		VentaID:    ventaID,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &pago); err != nil {
			return err
		}
		if err := s.clienteRepo.AjustarBalanceTx(tx, clienteID, -totalAplicado); err != nil {
			return err
		}

		if ventaID != nil {
			// Aplicación directa, sin tope: un sobrepago queda visible en el
			// reporte de consistencia en vez de bloquearse aquí.
			return s.ventaRepo.AjustarPaidCopTx(tx, *ventaID, totalAplicado)
		}

		abiertas, err := s.ventaRepo.ListCreditoAbiertasTx(tx, clienteID)
		if err != nil {
			return err
		}
		restante := totalAplicado
		for _, v := range abiertas {
			if restante <= 0 {
				break
			}
			// Deuda real de la venta: el tramo pagado en VES cuenta, convertido
			// con la tasa almacenada — la misma medida que usa el auditor.
			deuda := balanceDelta(&v)
			if deuda <= 0 {
				continue
			}
			aplicar := minInt64(deuda, restante)
			if err := s.ventaRepo.AjustarPaidCopTx(tx, v.ID, aplicar); err != nil {
				return err
			}
			restante -= aplicar
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueAuditoria(ctx, clienteID)
	}
	return &pago, nil
}

// ── Actualizar ────────────────────────────────────────────────────────────────
// Corrige solo el balance agregado del cliente: revierte el total viejo y
// aplica el nuevo, con la tasa almacenada. La distribución por venta NO se
// recalcula — el paid_cop por venta queda sin reconciliar a propósito, y es
// el auditor quien lo reporta.

func (s *pagoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPagoRequest) (*model.Pago, error) {
	pago, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Pago no encontrado")
	}
	if req.AmountCop <= 0 && req.AmountVes.Sign() <= 0 {
		return nil, apierror.InvalidInput("El pago debe tener monto en COP o VES")
	}

	viejo := money.TotalApplied(pago.AmountCop, pago.AmountVes, pago.TasaCambio)
	nuevo := money.TotalApplied(req.AmountCop, req.AmountVes, pago.TasaCambio)

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.clienteRepo.AjustarBalanceTx(tx, pago.ClienteID, viejo-nuevo); err != nil {
			return err
		}
		return s.repo.UpdateMontosTx(tx, id, req.AmountCop, req.AmountVes, req.Nota)
	})
	if txErr != nil {
		return nil, txErr
	}

	pago.AmountCop = req.AmountCop
	pago.AmountVes = req.AmountVes
	pago.Nota = req.Nota

	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueAuditoria(ctx, pago.ClienteID)
	}
	return pago, nil
}

// ── Eliminar ──────────────────────────────────────────────────────────────────
// Reversa del balance y del paid_cop. Para pagos generales la reversa recorre
// las ventas con paid_cop > 0 de la más recientemente actualizada hacia atrás
// — una heurística que NO es la inversa exacta de la distribución original
// (más antigua primero). Se conserva tal cual: cambiarla alteraría la
// reconciliación histórica.

func (s *pagoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	pago, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Pago no encontrado")
	}

	totalAplicado := money.TotalApplied(pago.AmountCop, pago.AmountVes, pago.TasaCambio)

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.clienteRepo.AjustarBalanceTx(tx, pago.ClienteID, totalAplicado); err != nil {
			return err
		}

		if pago.VentaID != nil {
			if err := s.ventaRepo.AjustarPaidCopTx(tx, *pago.VentaID, -totalAplicado); err != nil {
				return err
			}
			return s.repo.DeleteTx(tx, id)
		}

		conPago, err := s.ventaRepo.ListConPagoTx(tx, pago.ClienteID)
		if err != nil {
			return err
		}
		restante := totalAplicado
		for _, v := range conPago {
			if restante <= 0 {
				break
			}
			revertir := minInt64(v.PaidCop, restante)
			if err := s.ventaRepo.AjustarPaidCopTx(tx, v.ID, -revertir); err != nil {
				return err
			}
			restante -= revertir
		}
		return s.repo.DeleteTx(tx, id)
	})
	if txErr != nil {
		return txErr
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueAuditoria(ctx, pago.ClienteID)
	}
	return nil
}

func (s *pagoService) Listar(ctx context.Context) ([]model.Pago, error) {
	return s.repo.List(ctx)
}

func (s *pagoService) ListarPorCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Pago, error) {
	return s.repo.ListByCliente(ctx, clienteID)
}

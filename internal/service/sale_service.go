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
	"gorm.io/gorm"
)

// VentaService implements the sale engine: creation, edit and deletion with
// atomic stock, ledger and journal effects.
type VentaService interface {
	Crear(ctx context.Context, req dto.CrearVentaRequest) (*model.Venta, error)
	Editar(ctx context.Context, id uuid.UUID, req dto.EditarVentaRequest) (*model.Venta, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Obtener(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	Listar(ctx context.Context) ([]model.Venta, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	pagoRepo     repository.PagoRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
	movRepo      repository.MovimientoStockRepository
	dispatcher   Dispatcher
}

func NewVentaService(
	repo repository.VentaRepository,
	pagoRepo repository.PagoRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	movRepo repository.MovimientoStockRepository,
	dispatcher Dispatcher,
) VentaService {
	return &ventaService{
		repo:         repo,
		pagoRepo:     pagoRepo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
		movRepo:      movRepo,
		dispatcher:   dispatcher,
	}
}

// balanceDelta is the credit a sale adds to the customer: total minus what
// was paid at the counter, VES converted with the sale's stored snapshot.
func balanceDelta(v *model.Venta) int64 {
	return v.TotalCop - v.PaidCop - money.VesToCop(v.PaidVes, v.TasaCambio)
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// Resolución de precios fuera de la transacción, efectos dentro:
//  1. precio fresco del catálogo por item (el cliente nunca manda precios)
//  2. insertar venta + items con snapshot de precio
//  3. pago inicial si paid_cop o paid_ves > 0
//  4. descontar stock por variante + movimiento
//  5. crédito: balance_cop += total − paid_cop − round(paid_ves / tasa)

func (s *ventaService) Crear(ctx context.Context, req dto.CrearVentaRequest) (*model.Venta, error) {
	var clienteID *uuid.UUID
	if req.ClienteID != nil {
		id, err := parseID(*req.ClienteID, "cliente_id")
		if err != nil {
			return nil, err
		}
		if _, err := s.clienteRepo.FindByID(ctx, id); err != nil {
			return nil, apierror.NotFound("Cliente no encontrado")
		}
		clienteID = &id
	}
	if req.EsCredito && clienteID == nil {
		return nil, apierror.InvalidInput("Una venta a crédito requiere cliente")
	}

	type resuelto struct {
		productoID uuid.UUID
		colorID    uuid.UUID
		nombre     string
		precio     int64
		cantidad   int
	}

	var resueltos []resuelto
	var total int64
	for _, item := range req.Items {
		pid, err := parseID(item.ProductoID, "producto_id")
		if err != nil {
			return nil, err
		}
		cid, err := parseID(item.ColorID, "color_id")
		if err != nil {
			return nil, err
		}
		p, err := s.productoRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, apierror.NotFound("Producto no encontrado")
		}
		total += p.PrecioCop * int64(item.Cantidad)
		resueltos = append(resueltos, resuelto{
			productoID: pid,
			colorID:    cid,
			nombre:     p.Nombre,
			precio:     p.PrecioCop,
			cantidad:   item.Cantidad,
		})
	}

	var venta model.Venta
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		venta = model.Venta{
			ClienteID:  clienteID,
			TotalCop:   total,
			PaidCop:    req.PaidCop,
			PaidVes:    req.PaidVes,
			TasaCambio: req.TasaCambio,
			EsCredito:  req.EsCredito,
		}
		for _, r := range resueltos {
			venta.Items = append(venta.Items, model.VentaItem{
				ProductoID: r.productoID,
				ColorID:    r.colorID,
				Cantidad:   r.cantidad,
				PrecioCop:  r.precio,
			})
		}
		if err := s.repo.CreateTx(tx, &venta); err != nil {
			return err
		}

		// Pago inicial — refleja lo cobrado en el mostrador. Ventas de
		// mostrador sin cliente no tocan el libro de pagos.
		if clienteID != nil && (req.PaidCop > 0 || req.PaidVes.Sign() > 0) {
			pago := model.Pago{
				ClienteID:  *clienteID,
				AmountCop:  req.PaidCop,
				AmountVes:  req.PaidVes,
				TasaCambio: req.TasaCambio,
				Nota:       "Pago inicial de venta",
				VentaID:    &venta.ID,
				EsInicial:  true,
			}
			if err := s.pagoRepo.CreateTx(tx, &pago); err != nil {
				return err
			}
		}

		// Descontar stock por variante
		for _, r := range resueltos {
			variante, err := s.productoRepo.FindVarianteTx(tx, r.productoID, r.colorID)
			if err != nil {
				return apierror.NotFound(fmt.Sprintf("Variante de %s no encontrada", r.nombre))
			}
			if variante.Stock < r.cantidad {
				return apierror.InsufficientStock(fmt.Sprintf("Stock insuficiente de %s", r.nombre))
			}
			if err := s.productoRepo.UpdateStockTx(tx, variante.ID, -r.cantidad); err != nil {
				return err
			}
			ventaRef := venta.ID
			mov := &model.MovimientoStock{
				VarianteID:    variante.ID,
				Tipo:          "venta",
				Cantidad:      -r.cantidad,
				StockAnterior: variante.Stock,
				StockNuevo:    variante.Stock - r.cantidad,
				Motivo:        fmt.Sprintf("Venta de %s", r.nombre),
				ReferenciaID:  &ventaRef,
			}
			if err := s.movRepo.CreateTx(tx, mov); err != nil {
				return err
			}
		}

		if req.EsCredito {
			return s.clienteRepo.AjustarBalanceTx(tx, *clienteID, balanceDelta(&venta))
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueRecibo(ctx, venta.ID)
		if clienteID != nil {
			_ = s.dispatcher.EnqueueAuditoria(ctx, *clienteID)
		}
	}
	return s.reload(ctx, venta.ID, &venta)
}

// ── Editar ────────────────────────────────────────────────────────────────────
// Solo montos pagados y bandera de crédito; los items son inmutables.
// Revierte la contribución vieja al balance y aplica la nueva, siempre con la
// tasa ALMACENADA en la venta — nunca se re-deriva del registro vivo.

func (s *ventaService) Editar(ctx context.Context, id uuid.UUID, req dto.EditarVentaRequest) (*model.Venta, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Venta no encontrada")
	}
	if req.EsCredito && venta.ClienteID == nil {
		return nil, apierror.InvalidInput("Una venta a crédito requiere cliente")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if venta.EsCredito && venta.ClienteID != nil {
			if err := s.clienteRepo.AjustarBalanceTx(tx, *venta.ClienteID, -balanceDelta(venta)); err != nil {
				return err
			}
		}

		if err := s.repo.UpdatePagoTx(tx, id, req.PaidCop, req.PaidVes, req.EsCredito); err != nil {
			return err
		}

		nueva := *venta
		nueva.PaidCop = req.PaidCop
		nueva.PaidVes = req.PaidVes
		nueva.EsCredito = req.EsCredito
		if nueva.EsCredito && nueva.ClienteID != nil {
			if err := s.clienteRepo.AjustarBalanceTx(tx, *nueva.ClienteID, balanceDelta(&nueva)); err != nil {
				return err
			}
		}

		// Mantener el pago inicial en sincronía: crear si ahora existe monto,
		// dejar en cero (no borrar) si el pago quedó en cero.
		inicial, err := s.pagoRepo.FindInicialByVentaTx(tx, id)
		switch {
		case err == nil:
			return s.pagoRepo.UpdateMontosTx(tx, inicial.ID, req.PaidCop, req.PaidVes, inicial.Nota)
		case venta.ClienteID != nil && (req.PaidCop > 0 || req.PaidVes.Sign() > 0):
			pago := model.Pago{
				ClienteID:  *venta.ClienteID,
				AmountCop:  req.PaidCop,
				AmountVes:  req.PaidVes,
				TasaCambio: venta.TasaCambio,
				Nota:       "Pago inicial de venta",
				VentaID:    &venta.ID,
				EsInicial:  true,
			}
			return s.pagoRepo.CreateTx(tx, &pago)
		default:
			return nil
		}
	})
	if txErr != nil {
		return nil, txErr
	}

	if s.dispatcher != nil && venta.ClienteID != nil {
		_ = s.dispatcher.EnqueueAuditoria(ctx, *venta.ClienteID)
	}
	return s.reload(ctx, id, venta)
}

// ── Eliminar ──────────────────────────────────────────────────────────────────
// Reversa exacta en orden inverso: stock, balance, pagos, items, venta.

func (s *ventaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Venta no encontrada")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, item := range venta.Items {
			variante, err := s.productoRepo.FindVarianteTx(tx, item.ProductoID, item.ColorID)
			if err != nil {
				// La variante fue borrada después de la venta — nada que restaurar.
				continue
			}
			if err := s.productoRepo.UpdateStockTx(tx, variante.ID, item.Cantidad); err != nil {
				return err
			}
			ventaRef := venta.ID
			mov := &model.MovimientoStock{
				VarianteID:    variante.ID,
				Tipo:          "anulacion_venta",
				Cantidad:      item.Cantidad,
				StockAnterior: variante.Stock,
				StockNuevo:    variante.Stock + item.Cantidad,
				Motivo:        "Anulación de venta",
				ReferenciaID:  &ventaRef,
			}
			if err := s.movRepo.CreateTx(tx, mov); err != nil {
				return err
			}
		}

		if venta.EsCredito && venta.ClienteID != nil {
			if err := s.clienteRepo.AjustarBalanceTx(tx, *venta.ClienteID, -balanceDelta(venta)); err != nil {
				return err
			}
		}

		if err := s.pagoRepo.DeleteByVentaTx(tx, venta.ID); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, venta.ID)
	})
	if txErr != nil {
		return txErr
	}

	if s.dispatcher != nil && venta.ClienteID != nil {
		_ = s.dispatcher.EnqueueAuditoria(ctx, *venta.ClienteID)
	}
	return nil
}

func (s *ventaService) Obtener(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Venta no encontrada")
	}
	return venta, nil
}

func (s *ventaService) Listar(ctx context.Context) ([]model.Venta, error) {
	return s.repo.List(ctx)
}

// reload returns the freshly loaded entity with nested children; if the
// reload fails (stub mode without FindByID support) the in-memory value is
// returned as-is.
func (s *ventaService) reload(ctx context.Context, id uuid.UUID, fallback *model.Venta) (*model.Venta, error) {
	if v, err := s.repo.FindByID(ctx, id); err == nil {
		return v, nil
	}
	return fallback, nil
}

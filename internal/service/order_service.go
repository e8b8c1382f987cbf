package service

import (
	"context"
	"fmt"

	"github.com/Javier-GarciaP/sunbody/internal/apierror"
	"github.com/Javier-GarciaP/sunbody/internal/dto"
	"github.com/Javier-GarciaP/sunbody/internal/model"
	"github.com/Javier-GarciaP/sunbody/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PedidoService implements the picking pipeline: orders, purchase marking,
// batching into packages, unlinking, and delivery into a sale.
type PedidoService interface {
	Crear(ctx context.Context, req dto.CrearPedidoRequest) (*model.Pedido, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPedidoRequest) (*model.Pedido, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Obtener(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	Listar(ctx context.Context) ([]model.Pedido, error)

	MarcarItemComprado(ctx context.Context, itemID uuid.UUID, comprado bool) (*model.PedidoItem, error)
	EliminarItem(ctx context.Context, itemID uuid.UUID) error
	DesvincularItem(ctx context.Context, itemID uuid.UUID) (*model.PedidoItem, error)

	BatchPaquete(ctx context.Context, req dto.BatchPaqueteRequest) (*model.Paquete, error)
	Entregar(ctx context.Context, req dto.EntregarRequest) (*model.Venta, error)
}

type pedidoService struct {
	repo         repository.PedidoRepository
	paqueteRepo  repository.PaqueteRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
	ventaRepo    repository.VentaRepository
	pagoRepo     repository.PagoRepository
	movRepo      repository.MovimientoStockRepository
	dispatcher   Dispatcher
}

func NewPedidoService(
	repo repository.PedidoRepository,
	paqueteRepo repository.PaqueteRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	ventaRepo repository.VentaRepository,
	pagoRepo repository.PagoRepository,
	movRepo repository.MovimientoStockRepository,
	dispatcher Dispatcher,
) PedidoService {
	return &pedidoService{
		repo:         repo,
		paqueteRepo:  paqueteRepo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
		ventaRepo:    ventaRepo,
		pagoRepo:     pagoRepo,
		movRepo:      movRepo,
		dispatcher:   dispatcher,
	}
}

// ── CRUD ──────────────────────────────────────────────────────────────────────

func (s *pedidoService) Crear(ctx context.Context, req dto.CrearPedidoRequest) (*model.Pedido, error) {
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

	pedido := model.Pedido{
		ClienteID:  clienteID,
		Nota:       req.Nota,
		PrepagoCop: req.PrepagoCop,
		Estado:     "pendiente",
	}
	for _, item := range req.Items {
		pid, err := parseID(item.ProductoID, "producto_id")
		if err != nil {
			return nil, err
		}
		cid, err := parseID(item.ColorID, "color_id")
		if err != nil {
			return nil, err
		}
		if _, err := s.productoRepo.FindByID(ctx, pid); err != nil {
			return nil, apierror.NotFound("Producto no encontrado")
		}
		pedido.Items = append(pedido.Items, model.PedidoItem{
			ProductoID: pid,
			ColorID:    cid,
			Cantidad:   item.Cantidad,
		})
	}

	if err := s.repo.Create(ctx, &pedido); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, pedido.ID)
}

func (s *pedidoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPedidoRequest) (*model.Pedido, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Pedido no encontrado")
	}
	pedido.Nota = req.Nota
	pedido.PrepagoCop = req.PrepagoCop
	if req.Estado != "" {
		pedido.Estado = req.Estado
	}
	if err := s.repo.Update(ctx, pedido); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *pedidoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Pedido no encontrado")
	}
	return s.repo.Delete(ctx, id)
}

func (s *pedidoService) Obtener(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Pedido no encontrado")
	}
	return pedido, nil
}

func (s *pedidoService) Listar(ctx context.Context) ([]model.Pedido, error) {
	return s.repo.List(ctx)
}

// ── Items ─────────────────────────────────────────────────────────────────────

func (s *pedidoService) MarcarItemComprado(ctx context.Context, itemID uuid.UUID, comprado bool) (*model.PedidoItem, error) {
	item, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, apierror.NotFound("Item de pedido no encontrado")
	}
	item.EsComprado = comprado
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *pedidoService) EliminarItem(ctx context.Context, itemID uuid.UUID) error {
	if _, err := s.repo.FindItemByID(ctx, itemID); err != nil {
		return apierror.NotFound("Item de pedido no encontrado")
	}
	return s.repo.DeleteItem(ctx, itemID)
}

// DesvincularItem saca un item de su paquete sin restaurar stock y SIN tocar
// el agregado del paquete: las cantidades registradas del paquete pueden
// quedar sobreestimadas; el reporte de stock de paquetes lo hace visible.
func (s *pedidoService) DesvincularItem(ctx context.Context, itemID uuid.UUID) (*model.PedidoItem, error) {
	item, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, apierror.NotFound("Item de pedido no encontrado")
	}
	if item.PaqueteID == nil {
		return nil, apierror.InvalidInput("El item no está en ningún paquete")
	}
	item.PaqueteID = nil
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ── Armar paquete ─────────────────────────────────────────────────────────────
// Agrupa items comprados y sin paquete en un paquete nuevo (estado Armado) o
// en uno existente que todavía no fue recibido, sumando cantidades por
// (producto, color) en el agregado.

func (s *pedidoService) BatchPaquete(ctx context.Context, req dto.BatchPaqueteRequest) (*model.Paquete, error) {
	if len(req.ItemIDs) == 0 {
		return nil, apierror.EmptySelection("No se seleccionaron items")
	}
	itemIDs := make([]uuid.UUID, 0, len(req.ItemIDs))
	for _, raw := range req.ItemIDs {
		id, err := parseID(raw, "itemIds")
		if err != nil {
			return nil, err
		}
		itemIDs = append(itemIDs, id)
	}

	items, err := s.repo.FindItemsByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	if len(items) != len(itemIDs) {
		return nil, apierror.NotFound("Uno o más items de pedido no existen")
	}
	for _, it := range items {
		if !it.EsComprado {
			return nil, apierror.InvalidInput("Todos los items deben estar marcados como comprados")
		}
		if it.PaqueteID != nil {
			return nil, apierror.InvalidInput("Uno o más items ya están en un paquete")
		}
	}

	var paqueteID uuid.UUID
	if req.PaqueteID != nil {
		id, err := parseID(*req.PaqueteID, "packageId")
		if err != nil {
			return nil, err
		}
		paquete, err := s.paqueteRepo.FindByID(ctx, id)
		if err != nil {
			return nil, apierror.NotFound("Paquete no encontrado")
		}
		if paquete.Estado == model.PaqueteEntregado {
			return nil, apierror.Conflict("El paquete ya fue recibido en stock")
		}
		paqueteID = id
	} else if req.Nombre == "" {
		return nil, apierror.InvalidInput("El paquete nuevo requiere nombre")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if req.PaqueteID == nil {
			paquete := model.Paquete{
				Nombre:   req.Nombre,
				Estado:   model.PaqueteArmado,
				TotalVes: req.TotalVes,
			}
			if err := s.paqueteRepo.CreateTx(tx, &paquete); err != nil {
				return err
			}
			paqueteID = paquete.ID
		}

		// Agregado por (producto, color)
		type clave struct{ producto, color uuid.UUID }
		agregado := make(map[clave]int)
		orden := make([]clave, 0, len(items))
		for _, it := range items {
			k := clave{it.ProductoID, it.ColorID}
			if _, visto := agregado[k]; !visto {
				orden = append(orden, k)
			}
			agregado[k] += it.Cantidad
		}
		for _, k := range orden {
			if err := s.paqueteRepo.UpsertItemTx(tx, paqueteID, k.producto, k.color, agregado[k]); err != nil {
				return err
			}
		}

		return s.repo.SetItemsPaqueteTx(tx, itemIDs, &paqueteID)
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.paqueteRepo.FindByID(ctx, paqueteID)
}

// ── Entregar ──────────────────────────────────────────────────────────────────
// Convierte items ya recibidos (paquete Entregado) en una venta:
//  1. total = Σ cantidad × precio actual del catálogo
//  2. prepago = Σ prepago_cop de los pedidos distintos tocados
//  3. contado ⇒ paid_cop = total (regla de negocio: una entrega de contado se
//     registra pagada en su totalidad); crédito ⇒ paid_cop = prepago + adicional
//  4. venta + items (con proveniencia de paquete) + descuento de stock
//  5. crédito: balance += total − pagado; pago inicial si pagado > 0
//  6. los pedidos fuente se eliminan por completo (no hay estado de archivo)

func (s *pedidoService) Entregar(ctx context.Context, req dto.EntregarRequest) (*model.Venta, error) {
	if len(req.PedidoIDs) == 0 || len(req.ItemIDs) == 0 {
		return nil, apierror.EmptySelection("No se seleccionaron pedidos o items")
	}

	pedidoIDs := make([]uuid.UUID, 0, len(req.PedidoIDs))
	for _, raw := range req.PedidoIDs {
		id, err := parseID(raw, "orderIds")
		if err != nil {
			return nil, err
		}
		pedidoIDs = append(pedidoIDs, id)
	}
	itemIDs := make([]uuid.UUID, 0, len(req.ItemIDs))
	for _, raw := range req.ItemIDs {
		id, err := parseID(raw, "itemIds")
		if err != nil {
			return nil, err
		}
		itemIDs = append(itemIDs, id)
	}

	items, err := s.repo.FindItemsByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	if len(items) != len(itemIDs) {
		return nil, apierror.NotFound("Uno o más items de pedido no existen")
	}

	pedidosSet := make(map[uuid.UUID]bool, len(pedidoIDs))
	for _, id := range pedidoIDs {
		pedidosSet[id] = true
	}
	for _, it := range items {
		if !pedidosSet[it.PedidoID] {
			return nil, apierror.InvalidInput("Item fuera de los pedidos seleccionados")
		}
		if it.PaqueteID == nil {
			return nil, apierror.InvalidInput("Solo se entregan items que están en un paquete")
		}
		paquete, err := s.paqueteRepo.FindByID(ctx, *it.PaqueteID)
		if err != nil {
			return nil, apierror.NotFound("Paquete no encontrado")
		}
		if paquete.Estado != model.PaqueteEntregado {
			return nil, apierror.InvalidInput("El paquete del item aún no fue recibido en stock")
		}
	}

	// Un solo cliente por entrega; nil en todos = venta de mostrador.
	var clienteID *uuid.UUID
	var totalPrepago int64
	primero := true
	for _, pid := range pedidoIDs {
		pedido, err := s.repo.FindByID(ctx, pid)
		if err != nil {
			return nil, apierror.NotFound("Pedido no encontrado")
		}
		totalPrepago += pedido.PrepagoCop
		if primero {
			clienteID = pedido.ClienteID
			primero = false
			continue
		}
		if !mismoCliente(clienteID, pedido.ClienteID) {
			return nil, apierror.InvalidInput("Los pedidos seleccionados pertenecen a clientes distintos")
		}
	}
	if req.EsCredito && clienteID == nil {
		return nil, apierror.InvalidInput("Una entrega a crédito requiere cliente")
	}

	// Total con precio fresco del catálogo
	var total int64
	precios := make(map[uuid.UUID]int64)
	nombres := make(map[uuid.UUID]string)
	for _, it := range items {
		if _, ok := precios[it.ProductoID]; !ok {
			p, err := s.productoRepo.FindByID(ctx, it.ProductoID)
			if err != nil {
				return nil, apierror.NotFound("Producto no encontrado")
			}
			precios[it.ProductoID] = p.PrecioCop
			nombres[it.ProductoID] = p.Nombre
		}
		total += precios[it.ProductoID] * int64(it.Cantidad)
	}

	pagadoAhora := totalPrepago + req.PagoAdicional
	paidCop := total
	if req.EsCredito {
		paidCop = pagadoAhora
	}

	var venta model.Venta
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		venta = model.Venta{
			ClienteID:  clienteID,
			TotalCop:   total,
			PaidCop:    paidCop,
			TasaCambio: req.TasaCambio,
			EsCredito:  req.EsCredito,
		}
		for _, it := range items {
			venta.Items = append(venta.Items, model.VentaItem{
				ProductoID: it.ProductoID,
				ColorID:    it.ColorID,
				Cantidad:   it.Cantidad,
				PrecioCop:  precios[it.ProductoID],
				PaqueteID:  it.PaqueteID,
			})
		}
		if err := s.ventaRepo.CreateTx(tx, &venta); err != nil {
			return err
		}

		for _, it := range items {
			variante, err := s.productoRepo.FindVarianteTx(tx, it.ProductoID, it.ColorID)
			if err != nil {
				return apierror.NotFound(fmt.Sprintf("Variante de %s no encontrada", nombres[it.ProductoID]))
			}
			if variante.Stock < it.Cantidad {
				return apierror.InsufficientStock(fmt.Sprintf("Stock insuficiente de %s", nombres[it.ProductoID]))
			}
			if err := s.productoRepo.UpdateStockTx(tx, variante.ID, -it.Cantidad); err != nil {
				return err
			}
			ventaRef := venta.ID
			mov := &model.MovimientoStock{
				VarianteID:    variante.ID,
				Tipo:          "entrega",
				Cantidad:      -it.Cantidad,
				StockAnterior: variante.Stock,
				StockNuevo:    variante.Stock - it.Cantidad,
				Motivo:        fmt.Sprintf("Entrega de %s", nombres[it.ProductoID]),
				ReferenciaID:  &ventaRef,
			}
			if err := s.movRepo.CreateTx(tx, mov); err != nil {
				return err
			}
		}

		if req.EsCredito {
			if err := s.clienteRepo.AjustarBalanceTx(tx, *clienteID, total-pagadoAhora); err != nil {
				return err
			}
			if pagadoAhora > 0 {
				pago := model.Pago{
					ClienteID:  *clienteID,
					AmountCop:  pagadoAhora,
					TasaCambio: req.TasaCambio,
					Nota:       "Pago inicial de entrega",
					VentaID:    &venta.ID,
					EsInicial:  true,
				}
				if err := s.pagoRepo.CreateTx(tx, &pago); err != nil {
					return err
				}
			}
		}

		return s.repo.DeletePedidosTx(tx, pedidoIDs)
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
	if v, err := s.ventaRepo.FindByID(ctx, venta.ID); err == nil {
		return v, nil
	}
	return &venta, nil
}

func mismoCliente(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
